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

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	consentService "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
	requestLogService "github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/similarity"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
	userModel "github.com/wso2/consent-ai-debug-service/internal/user_data/model"
	userService "github.com/wso2/consent-ai-debug-service/internal/user_data/service"
)

// GenerationServiceInterface defines the service interface.
type GenerationServiceInterface interface {
	Run(userId, prompt string, state consentModel.ConsentState) (model.AIRequest, model.AIResponse)
	RunAndLog(ctx context.Context, userId, prompt string) (*model.AIResponse, error)
}

// GenerationService runs generations against consent filtered user data.
type GenerationService struct {
	users      userService.UserDataServiceInterface
	consent    consentService.ConsentServiceInterface
	requestLog requestLogService.RequestLogServiceInterface
}

func NewGenerationService(users userService.UserDataServiceInterface,
	consent consentService.ConsentServiceInterface,
	requestLog requestLogService.RequestLogServiceInterface) *GenerationService {

	return &GenerationService{
		users:      users,
		consent:    consent,
		requestLog: requestLog,
	}
}

// Run generates a response for prompt under state. It is the only place requests and responses
// are created. Nothing is logged or persisted.
func (s *GenerationService) Run(userId, prompt string,
	state consentModel.ConsentState) (model.AIRequest, model.AIResponse) {

	snapshot := state.Complete()
	accessible := s.users.GetAccessibleData(userId, snapshot)

	attribution := make([]model.AttributionInfo, 0, len(consentModel.AllCategories()))
	for _, category := range consentModel.AllCategories() {
		dataUsed := userModel.EmptyCategoryData(category)
		if snapshot.IsGranted(category) {
			dataUsed = accessible.Get(category)
		}
		attribution = append(attribution, model.AttributionInfo{
			Category:   category,
			DataUsed:   dataUsed,
			WasBlocked: !snapshot.IsGranted(category),
		})
	}

	start := time.Now()
	output, confidence := Generate(userId, prompt, accessible)
	latency := float64(time.Since(start).Microseconds()) / 1000.0

	requestId := uuid.New().String()
	tokens := len(similarity.Tokenize(output))

	request := model.AIRequest{
		RequestId: requestId,
		UserId:    userId,
		Prompt:    prompt,
		ConsentState: model.ConsentSnapshot{
			UserId: userId,
			State:  snapshot,
		},
		Timestamp: time.Now().UTC(),
	}
	response := model.AIResponse{
		RequestId:   requestId,
		Output:      output,
		Confidence:  confidence,
		Attribution: attribution,
		LatencyMs:   utils.RoundTo(latency, 2),
		TokensUsed:  &tokens,
	}
	return request, response
}

// RunAndLog generates under the user's current consent state and records the result in the
// request log. Any prompt is accepted, a blank one gets a generic answer. A failure to log is
// reported but the response is still returned.
func (s *GenerationService) RunAndLog(ctx context.Context, userId, prompt string) (*model.AIResponse, error) {

	if strings.TrimSpace(userId) == "" {
		return nil, errors.NewBadRequestError(errors.USER_ID_REQUIRED, "user_id is required.")
	}
	if _, err := s.users.GetUser(userId); err != nil {
		return nil, err
	}

	logger := log.GetLogger()
	traceId := tracectx.GetTraceID(ctx)

	state := s.consent.GetCurrentState(userId)
	request, response := s.Run(userId, prompt, state)

	if _, err := s.requestLog.Append(model.AIRequestLog{Request: request, Response: response}); err != nil {
		logger.Error(fmt.Sprintf("Failed to log request: %s for user: %s", request.RequestId, userId),
			log.Error(err), log.TraceID(traceId))
	}

	logger.Info(fmt.Sprintf("Generated response for request: %s", request.RequestId),
		log.String("userId", userId),
		log.Float64("confidence", response.Confidence),
		log.TraceID(traceId))

	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   userId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      request.RequestId,
		TargetType:    log.TargetTypeRequest,
		ActionID:      log.ActionRunGeneration,
		TraceID:       traceId,
		Data: map[string]interface{}{
			"confidence": response.Confidence,
		},
	})
	return &response, nil
}
