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

package store

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	userModel "github.com/wso2/consent-ai-debug-service/internal/user_data/model"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

var base = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func entry(requestId, userId string) model.AIRequestLog {
	return model.AIRequestLog{
		Request:  model.AIRequest{RequestId: requestId, UserId: userId, Prompt: "hello"},
		Response: model.AIResponse{RequestId: requestId, Output: "out", Confidence: 0.3},
	}
}

func ids(entries []model.AIRequestLog) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Request.RequestId)
	}
	return out
}

// ---------------------------------------------------------------------------
// Append
// ---------------------------------------------------------------------------

func TestAppend_StampsTimestampAndSequence(t *testing.T) {
	s := NewRequestLogStoreWithClock(steppingClock(base))

	first := s.Append(entry("r1", "A"))
	second := s.Append(entry("r2", "A"))

	assert.Equal(t, base, first.Timestamp)
	assert.Equal(t, base.Add(time.Second), second.Timestamp)
	assert.Equal(t, uint64(1), first.Sequence)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.Equal(t, 2, s.Count())
}

func TestAppend_KeepsProvidedTimestamp(t *testing.T) {
	s := NewRequestLogStoreWithClock(steppingClock(base))
	e := entry("r1", "A")
	e.Timestamp = base.Add(-time.Hour)

	stored := s.Append(e)

	assert.Equal(t, base.Add(-time.Hour), stored.Timestamp)
}

func TestAppend_RelogReplacesEntryWithoutDuplicatingIndex(t *testing.T) {
	s := NewRequestLogStore()

	s.Append(entry("r1", "A"))
	relogged := entry("r1", "A")
	relogged.Response.Output = "second"
	s.Append(relogged)

	got, ok := s.GetById("r1")
	require.True(t, ok)
	assert.Equal(t, "second", got.Response.Output)
	assert.Equal(t, []string{"r1"}, ids(s.GetByUser("A", 10)))
	assert.Equal(t, 1, s.Count())
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestGetById_Missing(t *testing.T) {
	s := NewRequestLogStore()

	got, ok := s.GetById("nope")

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetAllAndGetByUser_MostRecentFirst(t *testing.T) {
	s := NewRequestLogStoreWithClock(steppingClock(base))

	s.Append(entry("a1", "A"))
	s.Append(entry("a2", "A"))
	s.Append(entry("b1", "B"))
	s.Append(entry("a3", "A"))

	assert.Equal(t, []string{"a3", "b1"}, ids(s.GetAll(2)))
	assert.Equal(t, []string{"a3", "a2"}, ids(s.GetByUser("A", 2)))
	assert.Equal(t, []string{"b1"}, ids(s.GetByUser("B", 2)))
	assert.Empty(t, s.GetByUser("C", 2))
}

func TestGetAll_TiesBrokenBySequence(t *testing.T) {
	fixed := func() time.Time { return base }
	s := NewRequestLogStoreWithClock(fixed)

	for i := 1; i <= 5; i++ {
		s.Append(entry(fmt.Sprintf("r%d", i), "A"))
	}

	assert.Equal(t, []string{"r5", "r4", "r3", "r2", "r1"}, ids(s.GetAll(10)))
}

func detailedEntry(requestId, userId string) model.AIRequestLog {
	e := entry(requestId, userId)
	e.Request.ConsentState = model.ConsentSnapshot{
		UserId: userId,
		State:  consentModel.ConsentState{consentModel.PurchaseHistory: consentModel.Granted},
	}
	e.Response.Attribution = []model.AttributionInfo{{
		Category: consentModel.PurchaseHistory,
		DataUsed: userModel.NewSequenceData(consentModel.PurchaseHistory, []string{"laptop"}),
	}}
	return e
}

func TestQueries_DoNotShareStorage(t *testing.T) {
	s := NewRequestLogStore()
	appended := detailedEntry("r1", "A")
	s.Append(appended)

	appended.Response.Attribution[0].WasBlocked = true
	appended.Request.ConsentState.State[consentModel.PurchaseHistory] = consentModel.Revoked

	got, ok := s.GetById("r1")
	require.True(t, ok)
	got.Response.Attribution[0].WasBlocked = true
	got.Response.Attribution[0].DataUsed.Items[0] = "mutated"
	got.Request.ConsentState.State[consentModel.PurchaseHistory] = consentModel.Revoked

	s.GetAll(10)[0].Response.Attribution[0].WasBlocked = true
	s.GetByUser("A", 10)[0].Request.ConsentState.State[consentModel.PurchaseHistory] = consentModel.Revoked

	stored, ok := s.GetById("r1")
	require.True(t, ok)
	assert.False(t, stored.Response.Attribution[0].WasBlocked)
	assert.Equal(t, []string{"laptop"}, stored.Response.Attribution[0].DataUsed.Items)
	assert.Equal(t, consentModel.Granted, stored.Request.ConsentState.State[consentModel.PurchaseHistory])
}

func TestClear(t *testing.T) {
	s := NewRequestLogStore()
	s.Append(entry("r1", "A"))

	s.Clear()

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.GetAll(10))
	assert.Empty(t, s.GetByUser("A", 10))
}

func TestAppend_Concurrent(t *testing.T) {
	s := NewRequestLogStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(entry(fmt.Sprintf("r%d", i), fmt.Sprintf("u%d", i%3)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Count())
	assert.Len(t, s.GetAll(100), 50)
}
