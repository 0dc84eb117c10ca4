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
	"math"
	"strings"
	"unicode/utf8"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	consentService "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	"github.com/wso2/consent-ai-debug-service/internal/evaluation/model"
	generationModel "github.com/wso2/consent-ai-debug-service/internal/generation/model"
	generationService "github.com/wso2/consent-ai-debug-service/internal/generation/service"
	requestLogService "github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/similarity"
	"github.com/wso2/consent-ai-debug-service/internal/system/utils"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
)

// EvaluationServiceInterface defines the service interface.
type EvaluationServiceInterface interface {
	CompareResponses(original, modified generationModel.AIResponse) model.EvaluationMetrics
	CompareLogged(ctx context.Context, requestIdA, requestIdB string) (*model.EvaluationMetrics, error)
	RunWhatIf(ctx context.Context, request model.WhatIfRequest) (*model.WhatIfResponse, error)
}

// EvaluationService compares generations and replays logged requests under hypothetical consent.
type EvaluationService struct {
	requestLog requestLogService.RequestLogServiceInterface
	generation generationService.GenerationServiceInterface
	consent    consentService.ConsentServiceInterface
}

func NewEvaluationService(requestLog requestLogService.RequestLogServiceInterface,
	generation generationService.GenerationServiceInterface,
	consent consentService.ConsentServiceInterface) *EvaluationService {

	return &EvaluationService{
		requestLog: requestLog,
		generation: generation,
		consent:    consent,
	}
}

// CompareResponses computes unsigned differences between two responses.
func (s *EvaluationService) CompareResponses(original, modified generationModel.AIResponse) model.EvaluationMetrics {

	return model.EvaluationMetrics{
		SimilarityScore:    utils.RoundTo(similarity.ComputeSimilarity(original.Output, modified.Output), 3),
		ConfidenceDelta:    utils.RoundTo(math.Abs(original.Confidence-modified.Confidence), 3),
		LatencyDiffMs:      utils.RoundTo(math.Abs(original.LatencyMs-modified.LatencyMs), 2),
		OutputLengthDiff:   abs(utf8.RuneCountInString(original.Output) - utf8.RuneCountInString(modified.Output)),
		AttributionChanges: len(changedCategories(original.Attribution, modified.Attribution)),
	}
}

// CompareLogged compares two logged responses by request id.
func (s *EvaluationService) CompareLogged(ctx context.Context, requestIdA, requestIdB string) (*model.EvaluationMetrics, error) {

	if strings.TrimSpace(requestIdA) == "" || strings.TrimSpace(requestIdB) == "" {
		return nil, errors.NewBadRequestError(errors.COMPARE_BAD_REQUEST, "request_id_a and request_id_b are required.")
	}
	first, err := s.requestLog.GetById(requestIdA)
	if err != nil {
		return nil, err
	}
	second, err := s.requestLog.GetById(requestIdB)
	if err != nil {
		return nil, err
	}

	metrics := s.CompareResponses(first.Response, second.Response)
	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   first.Request.UserId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      requestIdA,
		TargetType:    log.TargetTypeRequest,
		ActionID:      log.ActionCompare,
		TraceID:       tracectx.GetTraceID(ctx),
		Data: map[string]interface{}{
			"compared_with": requestIdB,
		},
	})
	return &metrics, nil
}

// RunWhatIf replays a logged request with the same user and prompt under a hypothetical consent
// state. Neither consent nor the request log is modified.
func (s *EvaluationService) RunWhatIf(ctx context.Context, request model.WhatIfRequest) (*model.WhatIfResponse, error) {

	if strings.TrimSpace(request.BaseRequestId) == "" {
		return nil, errors.NewBadRequestError(errors.WHAT_IF_BAD_REQUEST, "base_request_id is required.")
	}
	if request.ModifiedConsent == nil {
		return nil, errors.NewBadRequestError(errors.WHAT_IF_BAD_REQUEST, "modified_consent is required.")
	}

	base, err := s.requestLog.GetById(request.BaseRequestId)
	if err != nil {
		return nil, err
	}
	original := base.Response
	userId := base.Request.UserId

	state := request.ModifiedConsent.Complete()
	if request.MergeWithCurrent {
		state = s.consent.GetStateWithOverride(userId, request.ModifiedConsent)
	}

	_, replay := s.generation.Run(userId, base.Request.Prompt, state)

	changes := make([]generationModel.AttributionInfo, 0)
	changed := changedCategories(original.Attribution, replay.Attribution)
	for _, attribution := range replay.Attribution {
		if changed[attribution.Category] {
			changes = append(changes, attribution)
		}
	}

	response := &model.WhatIfResponse{
		OriginalOutput:     original.Output,
		ModifiedOutput:     replay.Output,
		OriginalConfidence: original.Confidence,
		ModifiedConfidence: replay.Confidence,
		SimilarityScore:    utils.RoundTo(similarity.ComputeSimilarity(original.Output, replay.Output), 3),
		ConfidenceDelta:    utils.RoundTo(replay.Confidence-original.Confidence, 3),
		LatencyDiffMs:      utils.RoundTo(replay.LatencyMs-original.LatencyMs, 2),
		AttributionChanges: changes,
	}

	traceId := tracectx.GetTraceID(ctx)
	log.GetLogger().Info(fmt.Sprintf("What-if replay of request: %s", request.BaseRequestId),
		log.String("userId", userId),
		log.Float64("confidenceDelta", response.ConfidenceDelta),
		log.Int("attributionChanges", len(changes)),
		log.TraceID(traceId))
	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   userId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      request.BaseRequestId,
		TargetType:    log.TargetTypeRequest,
		ActionID:      log.ActionRunWhatIf,
		TraceID:       traceId,
		Data: map[string]interface{}{
			"merge_with_current": request.MergeWithCurrent,
		},
	})
	return response, nil
}

// changedCategories returns the categories whose blocked flag differs between the two attributions.
// A category missing on one side counts as changed.
func changedCategories(original, modified []generationModel.AttributionInfo) map[consentModel.DataCategory]bool {

	originalBlocked := blockedByCategory(original)
	modifiedBlocked := blockedByCategory(modified)

	changed := make(map[consentModel.DataCategory]bool)
	for _, category := range consentModel.AllCategories() {
		before, inOriginal := originalBlocked[category]
		after, inModified := modifiedBlocked[category]
		if inOriginal != inModified || before != after {
			changed[category] = true
		}
	}
	return changed
}

func blockedByCategory(attribution []generationModel.AttributionInfo) map[consentModel.DataCategory]bool {
	blocked := make(map[consentModel.DataCategory]bool, len(attribution))
	for _, info := range attribution {
		blocked[info.Category] = info.WasBlocked
	}
	return blocked
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
