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

	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
	"github.com/wso2/consent-ai-debug-service/internal/generation/service"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
)

type GenerationHandler struct {
	service service.GenerationServiceInterface
}

func NewGenerationHandler(generationService service.GenerationServiceInterface) *GenerationHandler {
	return &GenerationHandler{service: generationService}
}

// RunGeneration handles POST /ai/run
func (h *GenerationHandler) RunGeneration(w http.ResponseWriter, r *http.Request) {

	var request model.RunRequest
	if err := utils.DecodeJSONBody(r, &request, errors.AI_RUN_BAD_REQUEST, "ai run"); err != nil {
		utils.HandleError(w, err)
		return
	}

	response, err := h.service.RunAndLog(r.Context(), request.UserId, request.Prompt)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, response)
}
