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
	"encoding/json"
	"time"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	userModel "github.com/wso2/consent-ai-debug-service/internal/user_data/model"
)

// AttributionInfo records whether a category fed a generation and which data it contributed.
type AttributionInfo struct {
	Category   consentModel.DataCategory `json:"category"`
	DataUsed   userModel.CategoryData    `json:"data_used"`
	WasBlocked bool                      `json:"was_blocked"`
}

func (a *AttributionInfo) UnmarshalJSON(data []byte) error {
	type alias AttributionInfo
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	decoded.DataUsed.Category = decoded.Category
	*a = AttributionInfo(decoded)
	return nil
}

// ConsentSnapshot is the consent state a request was generated under.
type ConsentSnapshot struct {
	UserId string                    `json:"user_id"`
	State  consentModel.ConsentState `json:"state"`
}

type AIRequest struct {
	RequestId    string          `json:"request_id"`
	UserId       string          `json:"user_id"`
	Prompt       string          `json:"prompt"`
	ConsentState ConsentSnapshot `json:"consent_state"`
	Timestamp    time.Time       `json:"timestamp"`
}

type AIResponse struct {
	RequestId   string            `json:"request_id"`
	Output      string            `json:"output"`
	Confidence  float64           `json:"confidence"`
	Attribution []AttributionInfo `json:"attribution"`
	LatencyMs   float64           `json:"latency_ms"`
	// TokensUsed is the number of word tokens in Output.
	TokensUsed *int `json:"tokens_used"`
}

// AIRequestLog pairs a request with its response. Timestamp and Sequence are assigned by the request log.
type AIRequestLog struct {
	Request   AIRequest  `json:"request"`
	Response  AIResponse `json:"response"`
	Timestamp time.Time  `json:"timestamp"`
	Sequence  uint64     `json:"sequence"`
}

// Clone returns a deep copy so a stored log entry never shares storage with its callers.
func (l AIRequestLog) Clone() AIRequestLog {
	if l.Request.ConsentState.State != nil {
		l.Request.ConsentState.State = l.Request.ConsentState.State.Clone()
	}
	if l.Response.Attribution != nil {
		attribution := make([]AttributionInfo, len(l.Response.Attribution))
		for i, info := range l.Response.Attribution {
			info.DataUsed = info.DataUsed.Clone()
			attribution[i] = info
		}
		l.Response.Attribution = attribution
	}
	if l.Response.TokensUsed != nil {
		tokens := *l.Response.TokensUsed
		l.Response.TokensUsed = &tokens
	}
	return l
}

// RunRequest is the body of POST /ai/run.
type RunRequest struct {
	UserId string `json:"user_id"`
	Prompt string `json:"prompt"`
}
