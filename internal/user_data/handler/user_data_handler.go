/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"net/http"

	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/service"
)

type UserDataHandler struct {
	service service.UserDataServiceInterface
}

func NewUserDataHandler(userDataService service.UserDataServiceInterface) *UserDataHandler {
	return &UserDataHandler{service: userDataService}
}

// ListUsers handles GET /users
func (h *UserDataHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, h.service.ListUsers())
}

// GetUser handles GET /users/{user_id}
func (h *UserDataHandler) GetUser(w http.ResponseWriter, r *http.Request) {

	user, err := h.service.GetUser(r.PathValue("user_id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, user)
}
