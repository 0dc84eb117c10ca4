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

package model

import (
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
)

// EvaluationMetrics is the unsigned comparison of two responses.
type EvaluationMetrics struct {
	SimilarityScore    float64 `json:"similarity_score"`
	ConfidenceDelta    float64 `json:"confidence_delta"`
	LatencyDiffMs      float64 `json:"latency_diff_ms"`
	OutputLengthDiff   int     `json:"output_length_diff"`
	AttributionChanges int     `json:"attribution_changes"`
}

// WhatIfRequest replays a logged request under ModifiedConsent. Categories missing from
// ModifiedConsent are revoked, unless MergeWithCurrent is set, in which case they keep the
// user's current status.
type WhatIfRequest struct {
	BaseRequestId    string                    `json:"base_request_id"`
	ModifiedConsent  consentModel.ConsentState `json:"modified_consent"`
	MergeWithCurrent bool                      `json:"merge_with_current,omitempty"`
}

// WhatIfResponse holds signed deltas (modified minus original) and the attribution entries of the
// replay whose blocked flag changed.
type WhatIfResponse struct {
	OriginalOutput     string                  `json:"original_output"`
	ModifiedOutput     string                  `json:"modified_output"`
	OriginalConfidence float64                 `json:"original_confidence"`
	ModifiedConfidence float64                 `json:"modified_confidence"`
	SimilarityScore    float64                 `json:"similarity_score"`
	ConfidenceDelta    float64                 `json:"confidence_delta"`
	LatencyDiffMs      float64                 `json:"latency_diff_ms"`
	AttributionChanges []model.AttributionInfo `json:"attribution_changes"`
}

type CompareRequest struct {
	RequestIdA string `json:"request_id_a"`
	RequestIdB string `json:"request_id_b"`
}
