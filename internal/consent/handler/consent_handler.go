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

	"github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/consent/service"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
)

type ConsentHandler struct {
	service service.ConsentServiceInterface
}

func NewConsentHandler(consentService service.ConsentServiceInterface) *ConsentHandler {
	return &ConsentHandler{service: consentService}
}

// GrantConsent handles POST /consent/grant
func (h *ConsentHandler) GrantConsent(w http.ResponseWriter, r *http.Request) {

	var request model.ConsentRequest
	if err := utils.DecodeJSONBody(r, &request, errors.CONSENT_BAD_REQUEST, "consent"); err != nil {
		utils.HandleError(w, err)
		return
	}

	consent, err := h.service.GrantConsent(r.Context(), request.UserId, request.Category)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, consent)
}

// RevokeConsent handles POST /consent/revoke
func (h *ConsentHandler) RevokeConsent(w http.ResponseWriter, r *http.Request) {

	var request model.ConsentRequest
	if err := utils.DecodeJSONBody(r, &request, errors.CONSENT_BAD_REQUEST, "consent"); err != nil {
		utils.HandleError(w, err)
		return
	}

	consent, err := h.service.RevokeConsent(r.Context(), request.UserId, request.Category)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, consent)
}

// GetConsentState handles GET /consent/state/{user_id}
func (h *ConsentHandler) GetConsentState(w http.ResponseWriter, r *http.Request) {

	userId := r.PathValue("user_id")
	utils.WriteJSONResponse(w, http.StatusOK, model.ConsentStateResponse{
		UserId: userId,
		State:  h.service.GetCurrentState(userId),
	})
}

// GetConsent handles GET /consent/state/{user_id}/{category}
func (h *ConsentHandler) GetConsent(w http.ResponseWriter, r *http.Request) {

	consent, err := h.service.GetConsent(r.PathValue("user_id"), r.PathValue("category"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, consent)
}

// GetConsentTimeline handles GET /consent/timeline/{user_id}
func (h *ConsentHandler) GetConsentTimeline(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSONResponse(w, http.StatusOK, h.service.GetTimeline(r.PathValue("user_id")))
}
