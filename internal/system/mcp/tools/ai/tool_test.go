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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/consent-ai-debug-service/internal/system/config"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/managers"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func newTools() (*Tools, *managers.Components) {
	c := managers.NewComponents(config.DefaultConfig())
	return NewTools(c.Generation, c.Evaluation, c.RequestLog), c
}

func TestRunWhatIfAndListLogs(t *testing.T) {
	tools, c := newTools()
	ctx := context.Background()
	for _, category := range []string{"purchase_history", "preferences", "activity"} {
		_, err := c.Consent.GrantConsent(ctx, "user_1", category)
		require.NoError(t, err)
	}

	_, run, err := tools.run(ctx, nil, RunInput{UserID: "user_1", Prompt: "recommend something"})
	require.NoError(t, err)
	assert.NotEmpty(t, run.RequestID)
	assert.Equal(t, 0.95, run.Confidence)
	assert.Greater(t, run.TokensUsed, 0)
	require.Len(t, run.Attribution, 3)
	for _, attribution := range run.Attribution {
		assert.False(t, attribution.WasBlocked)
		assert.Greater(t, attribution.DataPoints, 0)
	}

	_, whatIf, err := tools.whatIf(ctx, nil, WhatIfInput{
		BaseRequestID:    run.RequestID,
		ModifiedConsent:  map[string]string{"activity": "revoked"},
		MergeWithCurrent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, run.Output, whatIf.OriginalOutput)
	require.Len(t, whatIf.AttributionChanges, 1)
	assert.Equal(t, "activity", whatIf.AttributionChanges[0].Category)
	assert.True(t, whatIf.AttributionChanges[0].WasBlocked)
	assert.Equal(t, 0, whatIf.AttributionChanges[0].DataPoints)

	_, logs, err := tools.listLogs(ctx, nil, ListLogsInput{})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, run.RequestID, logs.Logs[0].RequestID)

	_, logs, err = tools.listLogs(ctx, nil, ListLogsInput{UserID: "user_2"})
	require.NoError(t, err)
	assert.Empty(t, logs.Logs)
}

func TestInvalidInput(t *testing.T) {
	tools, _ := newTools()
	ctx := context.Background()

	_, _, err := tools.run(ctx, nil, RunInput{UserID: "ghost", Prompt: "hi"})
	assert.Error(t, err)

	_, _, err = tools.whatIf(ctx, nil, WhatIfInput{BaseRequestID: "x"})
	assert.Error(t, err)

	_, _, err = tools.whatIf(ctx, nil, WhatIfInput{
		BaseRequestID:   "x",
		ModifiedConsent: map[string]string{"activity": "pending"},
	})
	assert.Error(t, err)

	_, _, err = tools.listLogs(ctx, nil, ListLogsInput{Limit: 5000})
	assert.Error(t, err)
}
