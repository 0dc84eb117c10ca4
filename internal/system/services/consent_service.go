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

	"github.com/wso2/consent-ai-debug-service/internal/consent/handler"
)

type ConsentService struct {
	handler *handler.ConsentHandler
}

func NewConsentService(mux *http.ServeMux, apiBasePath string, consentHandler *handler.ConsentHandler) *ConsentService {
	instance := &ConsentService{
		handler: consentHandler,
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *ConsentService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("POST %s/consent/grant", apiBasePath), s.handler.GrantConsent)
	mux.HandleFunc(fmt.Sprintf("POST %s/consent/revoke", apiBasePath), s.handler.RevokeConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s/consent/state/{user_id}", apiBasePath), s.handler.GetConsentState)
	mux.HandleFunc(fmt.Sprintf("GET %s/consent/state/{user_id}/{category}", apiBasePath), s.handler.GetConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s/consent/timeline/{user_id}", apiBasePath), s.handler.GetConsentTimeline)
}
