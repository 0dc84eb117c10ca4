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

	evaluationHandler "github.com/wso2/consent-ai-debug-service/internal/evaluation/handler"
	generationHandler "github.com/wso2/consent-ai-debug-service/internal/generation/handler"
	requestLogHandler "github.com/wso2/consent-ai-debug-service/internal/request_log/handler"
)

// AIService exposes generation, what-if and comparison endpoints.
type AIService struct {
	generation *generationHandler.GenerationHandler
	evaluation *evaluationHandler.EvaluationHandler
	requestLog *requestLogHandler.RequestLogHandler
}

func NewAIService(mux *http.ServeMux, apiBasePath string,
	generation *generationHandler.GenerationHandler,
	evaluation *evaluationHandler.EvaluationHandler,
	requestLog *requestLogHandler.RequestLogHandler) *AIService {

	instance := &AIService{
		generation: generation,
		evaluation: evaluation,
		requestLog: requestLog,
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *AIService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("POST %s/ai/run", apiBasePath), s.generation.RunGeneration)
	mux.HandleFunc(fmt.Sprintf("POST %s/ai/what-if", apiBasePath), s.evaluation.RunWhatIf)
	mux.HandleFunc(fmt.Sprintf("POST %s/ai/compare", apiBasePath), s.evaluation.Compare)
	mux.HandleFunc(fmt.Sprintf("GET %s/ai/request/{request_id}", apiBasePath), s.requestLog.GetRequest)
}
