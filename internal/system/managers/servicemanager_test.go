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

package managers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	evaluationModel "github.com/wso2/consent-ai-debug-service/internal/evaluation/model"
	generationModel "github.com/wso2/consent-ai-debug-service/internal/generation/model"
	"github.com/wso2/consent-ai-debug-service/internal/system/config"
	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
	userModel "github.com/wso2/consent-ai-debug-service/internal/user_data/model"
)

func TestMain(m *testing.M) {
	config.OverrideRuntime(config.DefaultConfig())
	_ = log.Init("ERROR")

	workers.StartAuditWorker()
	code := m.Run()
	workers.StopAuditWorker()

	os.Exit(code)
}

func newServer(t *testing.T) (http.Handler, *Components) {
	t.Helper()
	components := NewComponents(config.DefaultConfig())
	mux := http.NewServeMux()
	require.NoError(t, NewServiceManager(mux, components).RegisterServices(constants.ApiBasePath))
	return tracectx.TraceMiddleware(mux), components
}

func call(t *testing.T, handler http.Handler, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, constants.ApiBasePath+path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func Test_ConsentAwareGeneration(t *testing.T) {
	server, components := newServer(t)
	var baseRequestId string

	t.Run("Seeded_users", func(t *testing.T) {
		var users []userModel.User
		rec := call(t, server, http.MethodGet, "/users", "", &users)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, users, 2)
		assert.Equal(t, constants.SampleUserOne, users[0].UserId)
	})

	t.Run("Default_deny_generation", func(t *testing.T) {
		var response generationModel.AIResponse
		rec := call(t, server, http.MethodPost, "/ai/run",
			`{"user_id":"user_1","prompt":"recommend something"}`, &response)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.3, response.Confidence)
		assert.Contains(t, response.Output, "I'd be happy to recommend products")
		for _, attribution := range response.Attribution {
			assert.True(t, attribution.WasBlocked)
		}
	})

	t.Run("Grant_all_and_generate", func(t *testing.T) {
		for _, category := range consentModel.AllCategories() {
			rec := call(t, server, http.MethodPost, "/consent/grant",
				fmt.Sprintf(`{"user_id":"user_1","category":"%s"}`, category), nil)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		var response generationModel.AIResponse
		rec := call(t, server, http.MethodPost, "/ai/run",
			`{"user_id":"user_1","prompt":"recommend something"}`, &response)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.95, response.Confidence)
		assert.Contains(t, response.Output, "laptop, wireless mouse")
		baseRequestId = response.RequestId
	})

	t.Run("Fetch_logged_request", func(t *testing.T) {
		var entry generationModel.AIRequestLog
		rec := call(t, server, http.MethodGet, "/ai/request/"+baseRequestId, "", &entry)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, baseRequestId, entry.Request.RequestId)
		assert.Equal(t, consentModel.Granted, entry.Request.ConsentState.State[consentModel.Activity])
		require.Len(t, entry.Response.Attribution, 3)
		assert.Equal(t, consentModel.Preferences, entry.Response.Attribution[1].DataUsed.Category)
	})

	t.Run("What_if_revoking_preferences", func(t *testing.T) {
		var response evaluationModel.WhatIfResponse
		rec := call(t, server, http.MethodPost, "/ai/what-if", fmt.Sprintf(`{
			"base_request_id": "%s",
			"modified_consent": {"purchase_history": "granted", "preferences": "revoked", "activity": "granted"}
		}`, baseRequestId), &response)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.95, response.OriginalConfidence)
		assert.Equal(t, 0.94, response.ModifiedConfidence)
		assert.Equal(t, -0.01, response.ConfidenceDelta)
		assert.Contains(t, response.ModifiedOutput, "Access to your preferences")
		require.Len(t, response.AttributionChanges, 1)
		assert.Equal(t, consentModel.Preferences, response.AttributionChanges[0].Category)
		assert.Equal(t, 2, components.RequestLog.Count())
	})

	t.Run("Compare_logged_requests", func(t *testing.T) {
		var logs []generationModel.AIRequestLog
		rec := call(t, server, http.MethodGet, "/logs/user/user_1?limit=2", "", &logs)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, logs, 2)
		assert.Equal(t, baseRequestId, logs[0].Request.RequestId)

		var metrics evaluationModel.EvaluationMetrics
		rec = call(t, server, http.MethodPost, "/ai/compare", fmt.Sprintf(
			`{"request_id_a":"%s","request_id_b":"%s"}`, logs[1].Request.RequestId, logs[0].Request.RequestId), &metrics)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.65, metrics.ConfidenceDelta)
		assert.Equal(t, 3, metrics.AttributionChanges)
	})

	t.Run("Clear_logs", func(t *testing.T) {
		rec := call(t, server, http.MethodDelete, "/logs", "", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		var logs []generationModel.AIRequestLog
		rec = call(t, server, http.MethodGet, "/logs", "", &logs)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, logs)
	})

	t.Run("Stats", func(t *testing.T) {
		stats := components.Stats()
		assert.Equal(t, 2, stats.Users)
		assert.Equal(t, 3, stats.ConsentEvents)
		assert.Equal(t, 0, stats.LoggedRequests)
	})
}

func Test_ErrorResponses(t *testing.T) {
	server, _ := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"Unknown_user_run", http.MethodPost, "/ai/run", `{"user_id":"ghost","prompt":"hi"}`, http.StatusNotFound},
		{"Unknown_base_request", http.MethodPost, "/ai/what-if",
			`{"base_request_id":"missing","modified_consent":{}}`, http.StatusNotFound},
		{"Unknown_category", http.MethodPost, "/consent/grant",
			`{"user_id":"user_1","category":"location"}`, http.StatusBadRequest},
		{"Unknown_status", http.MethodPost, "/ai/what-if",
			`{"base_request_id":"x","modified_consent":{"activity":"pending"}}`, http.StatusBadRequest},
		{"Malformed_body", http.MethodPost, "/ai/run", `{"user_id":`, http.StatusBadRequest},
		{"Limit_too_large", http.MethodGet, "/logs?limit=1001", "", http.StatusBadRequest},
		{"Limit_not_integer", http.MethodGet, "/logs?limit=ten", "", http.StatusBadRequest},
		{"Unknown_request", http.MethodGet, "/ai/request/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(t, server, tt.method, tt.path, tt.body, nil)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var body errors.ErrorMessage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Code)
			assert.NotEmpty(t, body.TraceID)
			assert.Equal(t, rec.Header().Get(constants.TraceIDHeader), body.TraceID)
		})
	}
}

func Test_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := call(t, server, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, server, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	cfg := config.DefaultConfig()
	cfg.Seed.Enabled = false
	components := NewComponents(cfg)
	assert.Equal(t, 0, components.Users.CountUsers())
}
