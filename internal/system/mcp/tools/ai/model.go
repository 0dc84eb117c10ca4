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

// ai_run
type RunInput struct {
	UserID string `json:"user_id"`
	Prompt string `json:"prompt"`
}

type AttributionOutput struct {
	Category   string `json:"category"`
	WasBlocked bool   `json:"was_blocked"`
	DataPoints int    `json:"data_points"`
}

type RunOutput struct {
	RequestID   string              `json:"request_id"`
	Output      string              `json:"output"`
	Confidence  float64             `json:"confidence"`
	LatencyMs   float64             `json:"latency_ms"`
	TokensUsed  int                 `json:"tokens_used"`
	Attribution []AttributionOutput `json:"attribution"`
}

// ai_what_if
type WhatIfInput struct {
	BaseRequestID string `json:"base_request_id"`
	// Category to status, e.g. {"preferences": "revoked"}.
	ModifiedConsent  map[string]string `json:"modified_consent"`
	MergeWithCurrent bool              `json:"merge_with_current,omitempty"`
}

type WhatIfOutput struct {
	OriginalOutput     string              `json:"original_output"`
	ModifiedOutput     string              `json:"modified_output"`
	OriginalConfidence float64             `json:"original_confidence"`
	ModifiedConfidence float64             `json:"modified_confidence"`
	SimilarityScore    float64             `json:"similarity_score"`
	ConfidenceDelta    float64             `json:"confidence_delta"`
	LatencyDiffMs      float64             `json:"latency_diff_ms"`
	AttributionChanges []AttributionOutput `json:"attribution_changes"`
}

// logs_list
type ListLogsInput struct {
	// Optional. Lists every user's requests when empty.
	UserID string `json:"user_id,omitempty"`
	// Defaults to the configured request log limit if omitted.
	Limit int `json:"limit,omitempty"`
}

type LogEntryOutput struct {
	RequestID  string  `json:"request_id"`
	UserID     string  `json:"user_id"`
	Prompt     string  `json:"prompt"`
	Output     string  `json:"output"`
	Confidence float64 `json:"confidence"`
	LoggedAt   string  `json:"logged_at"`
}

type ListLogsOutput struct {
	Logs []LogEntryOutput `json:"logs"`
}
