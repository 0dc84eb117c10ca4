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

	"github.com/wso2/consent-ai-debug-service/internal/request_log/handler"
)

type RequestLogService struct {
	handler *handler.RequestLogHandler
}

func NewRequestLogService(mux *http.ServeMux, apiBasePath string, requestLogHandler *handler.RequestLogHandler) *RequestLogService {
	instance := &RequestLogService{
		handler: requestLogHandler,
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *RequestLogService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/logs", apiBasePath), s.handler.GetLogs)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/logs", apiBasePath), s.handler.ClearLogs)
	mux.HandleFunc(fmt.Sprintf("GET %s/logs/user/{user_id}", apiBasePath), s.handler.GetUserLogs)
}
