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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consentSvc "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	"github.com/wso2/consent-ai-debug-service/internal/consent/store"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func newTools() *Tools {
	return NewTools(consentSvc.NewConsentService(store.NewConsentStore()))
}

func TestGrantRevokeAndState(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	_, granted, err := tools.grantConsent(ctx, nil, ChangeConsentInput{UserID: "user_1", Category: "preferences"})
	require.NoError(t, err)
	assert.Equal(t, "granted", granted.Status)
	assert.NotEmpty(t, granted.GrantedAt)
	assert.Empty(t, granted.RevokedAt)

	_, state, err := tools.consentState(ctx, nil, UserInput{UserID: "user_1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"purchase_history": "revoked",
		"preferences":      "granted",
		"activity":         "revoked",
	}, state.State)

	_, revoked, err := tools.revokeConsent(ctx, nil, ChangeConsentInput{UserID: "user_1", Category: "preferences"})
	require.NoError(t, err)
	assert.Equal(t, "revoked", revoked.Status)
	assert.Equal(t, granted.GrantedAt, revoked.GrantedAt)
	assert.NotEmpty(t, revoked.RevokedAt)

	_, timeline, err := tools.consentTimeline(ctx, nil, UserInput{UserID: "user_1"})
	require.NoError(t, err)
	require.Len(t, timeline.Events, 2)
	assert.Equal(t, "granted", timeline.Events[0].Action)
	assert.Equal(t, "revoked", timeline.Events[1].Action)
}

func TestInvalidInput(t *testing.T) {
	tools := newTools()
	ctx := context.Background()

	_, _, err := tools.grantConsent(ctx, nil, ChangeConsentInput{UserID: "user_1", Category: "location"})
	assert.Error(t, err)

	_, _, err = tools.consentState(ctx, nil, UserInput{})
	assert.Error(t, err)

	_, _, err = tools.consentTimeline(ctx, nil, UserInput{UserID: " "})
	assert.Error(t, err)
}
