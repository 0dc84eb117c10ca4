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

	"github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	"github.com/wso2/consent-ai-debug-service/internal/system/pagination"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
)

type RequestLogHandler struct {
	service service.RequestLogServiceInterface
}

func NewRequestLogHandler(requestLogService service.RequestLogServiceInterface) *RequestLogHandler {
	return &RequestLogHandler{service: requestLogService}
}

// GetLogs handles GET /logs?limit=
func (h *RequestLogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {

	limit, err := pagination.ParseLimit(r, h.service.LimitBounds())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logs, err := h.service.GetAll(limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, logs)
}

// GetUserLogs handles GET /logs/user/{user_id}?limit=
func (h *RequestLogHandler) GetUserLogs(w http.ResponseWriter, r *http.Request) {

	limit, err := pagination.ParseLimit(r, h.service.LimitBounds())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logs, err := h.service.GetByUser(r.PathValue("user_id"), limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, logs)
}

// GetRequest handles GET /ai/request/{request_id}
func (h *RequestLogHandler) GetRequest(w http.ResponseWriter, r *http.Request) {

	entry, err := h.service.GetById(r.PathValue("request_id"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, entry)
}

// ClearLogs handles DELETE /logs
func (h *RequestLogHandler) ClearLogs(w http.ResponseWriter, r *http.Request) {

	h.service.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
