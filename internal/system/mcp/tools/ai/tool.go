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

package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	evaluationModel "github.com/wso2/consent-ai-debug-service/internal/evaluation/model"
	evaluationSvc "github.com/wso2/consent-ai-debug-service/internal/evaluation/service"
	generationModel "github.com/wso2/consent-ai-debug-service/internal/generation/model"
	generationSvc "github.com/wso2/consent-ai-debug-service/internal/generation/service"
	requestLogSvc "github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
)

type Tools struct {
	generation generationSvc.GenerationServiceInterface
	evaluation evaluationSvc.EvaluationServiceInterface
	requestLog requestLogSvc.RequestLogServiceInterface
}

func NewTools(generation generationSvc.GenerationServiceInterface,
	evaluation evaluationSvc.EvaluationServiceInterface,
	requestLog requestLogSvc.RequestLogServiceInterface) *Tools {

	return &Tools{
		generation: generation,
		evaluation: evaluation,
		requestLog: requestLog,
	}
}

func (t *Tools) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ai_run",
		Description: "Run a generation for a user under their current consent state. The request is logged.",
		InputSchema: runInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title: "Run Generation",
		},
	}, t.run)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ai_what_if",
		Description: "Replay a logged request under a hypothetical consent state and compare the outputs. Nothing is modified.",
		InputSchema: whatIfInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "What-If Analysis",
			ReadOnlyHint: true,
		},
	}, t.whatIf)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "logs_list",
		Description: "List logged generations, most recent first.",
		InputSchema: listLogsInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "List Request Logs",
			ReadOnlyHint: true,
		},
	}, t.listLogs)
}

func (t *Tools) run(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input RunInput,
) (*mcp.CallToolResult, RunOutput, error) {

	ctx = tracectx.WithTraceID(ctx, tracectx.GetOrGenerateTraceID(ctx))
	response, err := t.generation.RunAndLog(ctx, input.UserID, input.Prompt)
	if err != nil {
		return nil, RunOutput{}, fmt.Errorf("failed to run generation: %w", err)
	}

	out := RunOutput{
		RequestID:   response.RequestId,
		Output:      response.Output,
		Confidence:  response.Confidence,
		LatencyMs:   response.LatencyMs,
		Attribution: toAttributionOutputs(response.Attribution),
	}
	if response.TokensUsed != nil {
		out.TokensUsed = *response.TokensUsed
	}
	return nil, out, nil
}

func (t *Tools) whatIf(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input WhatIfInput,
) (*mcp.CallToolResult, WhatIfOutput, error) {

	if input.ModifiedConsent == nil {
		return nil, WhatIfOutput{}, fmt.Errorf("modified_consent is required")
	}
	state, err := parseConsentState(input.ModifiedConsent)
	if err != nil {
		return nil, WhatIfOutput{}, err
	}

	ctx = tracectx.WithTraceID(ctx, tracectx.GetOrGenerateTraceID(ctx))
	response, err := t.evaluation.RunWhatIf(ctx, evaluationModel.WhatIfRequest{
		BaseRequestId:    input.BaseRequestID,
		ModifiedConsent:  state,
		MergeWithCurrent: input.MergeWithCurrent,
	})
	if err != nil {
		return nil, WhatIfOutput{}, fmt.Errorf("failed to run what-if analysis: %w", err)
	}

	return nil, WhatIfOutput{
		OriginalOutput:     response.OriginalOutput,
		ModifiedOutput:     response.ModifiedOutput,
		OriginalConfidence: response.OriginalConfidence,
		ModifiedConfidence: response.ModifiedConfidence,
		SimilarityScore:    response.SimilarityScore,
		ConfidenceDelta:    response.ConfidenceDelta,
		LatencyDiffMs:      response.LatencyDiffMs,
		AttributionChanges: toAttributionOutputs(response.AttributionChanges),
	}, nil
}

func (t *Tools) listLogs(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ListLogsInput,
) (*mcp.CallToolResult, ListLogsOutput, error) {

	limit := input.Limit
	if limit == 0 {
		limit = t.requestLog.LimitBounds().Default
	}

	var (
		logs []generationModel.AIRequestLog
		err  error
	)
	if userID := strings.TrimSpace(input.UserID); userID != "" {
		logs, err = t.requestLog.GetByUser(userID, limit)
	} else {
		logs, err = t.requestLog.GetAll(limit)
	}
	if err != nil {
		return nil, ListLogsOutput{}, fmt.Errorf("failed to list request logs: %w", err)
	}

	out := ListLogsOutput{Logs: make([]LogEntryOutput, 0, len(logs))}
	for _, entry := range logs {
		out.Logs = append(out.Logs, LogEntryOutput{
			RequestID:  entry.Request.RequestId,
			UserID:     entry.Request.UserId,
			Prompt:     entry.Request.Prompt,
			Output:     entry.Response.Output,
			Confidence: entry.Response.Confidence,
			LoggedAt:   entry.Timestamp.UTC().Format(time.RFC3339Nano),
		})
	}
	return nil, out, nil
}

func parseConsentState(raw map[string]string) (consentModel.ConsentState, error) {
	state := make(consentModel.ConsentState, len(raw))
	for rawCategory, rawStatus := range raw {
		category, err := consentModel.ParseDataCategory(rawCategory)
		if err != nil {
			return nil, fmt.Errorf("invalid modified_consent: %w", err)
		}
		status, err := consentModel.ParseConsentStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("invalid modified_consent: %w", err)
		}
		state[category] = status
	}
	return state, nil
}

func toAttributionOutputs(attribution []generationModel.AttributionInfo) []AttributionOutput {
	out := make([]AttributionOutput, 0, len(attribution))
	for _, info := range attribution {
		out = append(out, AttributionOutput{
			Category:   string(info.Category),
			WasBlocked: info.WasBlocked,
			DataPoints: info.DataUsed.Len(),
		})
	}
	return out
}
