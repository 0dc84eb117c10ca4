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

package consent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	consentSvc "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
)

type Tools struct {
	consent consentSvc.ConsentServiceInterface
}

func NewTools(consent consentSvc.ConsentServiceInterface) *Tools {
	return &Tools{consent: consent}
}

func (t *Tools) RegisterTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "consent_grant",
		Description: "Grant a user's consent for one data category.",
		InputSchema: changeConsentInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:          "Grant Consent",
			IdempotentHint: true,
		},
	}, t.grantConsent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "consent_revoke",
		Description: "Revoke a user's consent for one data category.",
		InputSchema: changeConsentInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:          "Revoke Consent",
			IdempotentHint: true,
		},
	}, t.revokeConsent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "consent_state",
		Description: "Get the consent status of every data category for a user. Categories never granted are revoked.",
		InputSchema: userInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Consent State",
			ReadOnlyHint: true,
		},
	}, t.consentState)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "consent_timeline",
		Description: "List a user's consent grant and revoke events in chronological order.",
		InputSchema: userInputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:        "Consent Timeline",
			ReadOnlyHint: true,
		},
	}, t.consentTimeline)
}

func (t *Tools) grantConsent(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ChangeConsentInput,
) (*mcp.CallToolResult, ConsentOutput, error) {

	ctx = tracectx.WithTraceID(ctx, tracectx.GetOrGenerateTraceID(ctx))
	consent, err := t.consent.GrantConsent(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, ConsentOutput{}, fmt.Errorf("failed to grant consent: %w", err)
	}
	return nil, toConsentOutput(consent), nil
}

func (t *Tools) revokeConsent(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ChangeConsentInput,
) (*mcp.CallToolResult, ConsentOutput, error) {

	ctx = tracectx.WithTraceID(ctx, tracectx.GetOrGenerateTraceID(ctx))
	consent, err := t.consent.RevokeConsent(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, ConsentOutput{}, fmt.Errorf("failed to revoke consent: %w", err)
	}
	return nil, toConsentOutput(consent), nil
}

func (t *Tools) consentState(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input UserInput,
) (*mcp.CallToolResult, StateOutput, error) {

	if strings.TrimSpace(input.UserID) == "" {
		return nil, StateOutput{}, fmt.Errorf("user_id is required")
	}

	state := t.consent.GetCurrentState(input.UserID)
	out := StateOutput{UserID: input.UserID, State: make(map[string]string, len(state))}
	for category, status := range state {
		out.State[string(category)] = string(status)
	}
	return nil, out, nil
}

func (t *Tools) consentTimeline(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input UserInput,
) (*mcp.CallToolResult, TimelineOutput, error) {

	if strings.TrimSpace(input.UserID) == "" {
		return nil, TimelineOutput{}, fmt.Errorf("user_id is required")
	}

	events := t.consent.GetTimeline(input.UserID)
	out := TimelineOutput{UserID: input.UserID, Events: make([]EventOutput, 0, len(events))}
	for _, event := range events {
		out.Events = append(out.Events, EventOutput{
			EventID:   event.EventId,
			Category:  string(event.Category),
			Action:    string(event.Action),
			Timestamp: formatTime(&event.Timestamp),
		})
	}
	return nil, out, nil
}

func toConsentOutput(consent *consentModel.Consent) ConsentOutput {
	return ConsentOutput{
		UserID:    consent.UserId,
		Category:  string(consent.Category),
		Status:    string(consent.Status),
		Timestamp: formatTime(&consent.Timestamp),
		GrantedAt: formatTime(consent.GrantedAt),
		RevokedAt: formatTime(consent.RevokedAt),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
