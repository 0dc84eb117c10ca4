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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	consentService "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	consentStore "github.com/wso2/consent-ai-debug-service/internal/consent/store"
	requestLogService "github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	requestLogStore "github.com/wso2/consent-ai-debug-service/internal/request_log/store"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/pagination"
	userService "github.com/wso2/consent-ai-debug-service/internal/user_data/service"
	userStore "github.com/wso2/consent-ai-debug-service/internal/user_data/store"
)

type fixture struct {
	users      *userService.UserDataService
	consent    *consentService.ConsentService
	requestLog *requestLogService.RequestLogService
	generation *GenerationService
}

func newFixture() *fixture {
	f := &fixture{
		users:   userService.NewUserDataService(userStore.NewUserStore()),
		consent: consentService.NewConsentService(consentStore.NewConsentStore()),
		requestLog: requestLogService.NewRequestLogService(requestLogStore.NewRequestLogStore(),
			pagination.LimitBounds{Default: 100, Max: 1000}),
	}
	f.generation = NewGenerationService(f.users, f.consent, f.requestLog)
	f.users.CreateUser("u1", []string{"laptop", "mouse"}, map[string]string{"theme": "dark"}, []string{"search:x"})
	return f
}

func grantAll() consentModel.ConsentState {
	return consentModel.ConsentState{
		consentModel.PurchaseHistory: consentModel.Granted,
		consentModel.Preferences:     consentModel.Granted,
		consentModel.Activity:        consentModel.Granted,
	}
}

// ---------------------------------------------------------------------------
// Run
// ---------------------------------------------------------------------------

func TestRun_FullAccess(t *testing.T) {
	f := newFixture()

	request, response := f.generation.Run("u1", "recommend something", grantAll())

	assert.NotEmpty(t, request.RequestId)
	assert.Equal(t, request.RequestId, response.RequestId)
	assert.Equal(t, "u1", request.UserId)
	assert.Equal(t, "recommend something", request.Prompt)
	assert.Equal(t, grantAll(), request.ConsentState.State)
	assert.Equal(t, 0.62, response.Confidence)
	assert.GreaterOrEqual(t, response.LatencyMs, 0.0)
	require.NotNil(t, response.TokensUsed)
	assert.Greater(t, *response.TokensUsed, 0)

	require.Len(t, response.Attribution, 3)
	for _, attribution := range response.Attribution {
		assert.False(t, attribution.WasBlocked)
		assert.False(t, attribution.DataUsed.IsEmpty())
	}
}

func TestRun_PartialStateIsCompletedAsRevoked(t *testing.T) {
	f := newFixture()

	request, response := f.generation.Run("u1", "recommend something", consentModel.ConsentState{
		consentModel.PurchaseHistory: consentModel.Granted,
	})

	assert.Equal(t, consentModel.Revoked, request.ConsentState.State[consentModel.Preferences])
	assert.Equal(t, consentModel.Revoked, request.ConsentState.State[consentModel.Activity])
	assert.Equal(t, 0.46, response.Confidence)

	blocked := map[consentModel.DataCategory]bool{}
	for _, attribution := range response.Attribution {
		blocked[attribution.Category] = attribution.WasBlocked
		if attribution.WasBlocked {
			assert.True(t, attribution.DataUsed.IsEmpty())
		}
	}
	assert.False(t, blocked[consentModel.PurchaseHistory])
	assert.True(t, blocked[consentModel.Preferences])
	assert.True(t, blocked[consentModel.Activity])
}

func TestRun_GrantedWithoutDataIsNotBlocked(t *testing.T) {
	f := newFixture()
	f.users.CreateUser("empty", nil, nil, nil)

	_, response := f.generation.Run("empty", "hello", grantAll())

	for _, attribution := range response.Attribution {
		assert.False(t, attribution.WasBlocked)
		assert.True(t, attribution.DataUsed.IsEmpty())
	}
	assert.Equal(t, 0.3, response.Confidence)
}

func TestRun_FreshRequestIds(t *testing.T) {
	f := newFixture()

	first, _ := f.generation.Run("u1", "hello", grantAll())
	second, _ := f.generation.Run("u1", "hello", grantAll())

	assert.NotEqual(t, first.RequestId, second.RequestId)
	assert.Equal(t, 0, f.requestLog.Count())
}

// ---------------------------------------------------------------------------
// RunAndLog
// ---------------------------------------------------------------------------

func TestRunAndLog_UsesCurrentConsentAndLogs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	response, err := f.generation.RunAndLog(ctx, "u1", "recommend something")
	require.NoError(t, err)
	assert.Equal(t, 0.3, response.Confidence)

	for _, category := range []string{"purchase_history", "preferences", "activity"} {
		_, err := f.consent.GrantConsent(ctx, "u1", category)
		require.NoError(t, err)
	}

	response, err = f.generation.RunAndLog(ctx, "u1", "recommend something")
	require.NoError(t, err)
	assert.Equal(t, 0.62, response.Confidence)

	logged, err := f.requestLog.GetById(response.RequestId)
	require.NoError(t, err)
	assert.Equal(t, response.Output, logged.Response.Output)
	assert.Equal(t, 2, f.requestLog.Count())
}

func TestRunAndLog_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.generation.RunAndLog(context.Background(), "ghost", "hello")

	require.Error(t, err)
	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	assert.Equal(t, 0, f.requestLog.Count())
}

func TestRunAndLog_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.generation.RunAndLog(context.Background(), "", "hello")

	require.Error(t, err)
	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, 0, f.requestLog.Count())
}

func TestRunAndLog_BlankPromptGetsGenericAnswer(t *testing.T) {
	f := newFixture()

	for _, prompt := range []string{"", "   "} {
		response, err := f.generation.RunAndLog(context.Background(), "u1", prompt)

		require.NoError(t, err)
		assert.Contains(t, response.Output, "I have no access to your data")
		assert.Equal(t, 0.3, response.Confidence)
	}
	assert.Equal(t, 2, f.requestLog.Count())
}
