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

	"github.com/wso2/consent-ai-debug-service/internal/evaluation/model"
	"github.com/wso2/consent-ai-debug-service/internal/evaluation/service"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
)

type EvaluationHandler struct {
	service service.EvaluationServiceInterface
}

func NewEvaluationHandler(evaluationService service.EvaluationServiceInterface) *EvaluationHandler {
	return &EvaluationHandler{service: evaluationService}
}

// RunWhatIf handles POST /ai/what-if
func (h *EvaluationHandler) RunWhatIf(w http.ResponseWriter, r *http.Request) {

	var request model.WhatIfRequest
	if err := utils.DecodeJSONBody(r, &request, errors.WHAT_IF_BAD_REQUEST, "what-if"); err != nil {
		utils.HandleError(w, err)
		return
	}

	response, err := h.service.RunWhatIf(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// Compare handles POST /ai/compare
func (h *EvaluationHandler) Compare(w http.ResponseWriter, r *http.Request) {

	var request model.CompareRequest
	if err := utils.DecodeJSONBody(r, &request, errors.COMPARE_BAD_REQUEST, "compare"); err != nil {
		utils.HandleError(w, err)
		return
	}

	metrics, err := h.service.CompareLogged(r.Context(), request.RequestIdA, request.RequestIdB)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, metrics)
}
