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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/consent-ai-debug-service/internal/user_data/handler"
)

type UserDataService struct {
	handler *handler.UserDataHandler
}

func NewUserDataService(mux *http.ServeMux, apiBasePath string, userDataHandler *handler.UserDataHandler) *UserDataService {
	instance := &UserDataService{
		handler: userDataHandler,
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *UserDataService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/users", apiBasePath), s.handler.ListUsers)
	mux.HandleFunc(fmt.Sprintf("GET %s/users/{user_id}", apiBasePath), s.handler.GetUser)
}
