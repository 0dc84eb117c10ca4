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
	"sort"
	"sync"
	"time"

	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
)

// RequestLogStoreInterface keeps logged generations by request id and by user.
type RequestLogStoreInterface interface {
	// Append stores entry, stamping it with a log timestamp (when unset) and the next sequence number.
	// Re-logging a request id replaces the stored entry.
	Append(entry model.AIRequestLog) model.AIRequestLog
	GetById(requestId string) (*model.AIRequestLog, bool)
	GetByUser(userId string, limit int) []model.AIRequestLog
	GetAll(limit int) []model.AIRequestLog
	Clear()
	Count() int
}

// RequestLogStore is the in-memory RequestLogStoreInterface implementation. Entries are deep copied
// on the way in and out, so a logged entry cannot be changed by its callers.
type RequestLogStore struct {
	mu        sync.RWMutex
	logs      map[string]model.AIRequestLog
	userIndex map[string][]string
	sequence  uint64
	now       func() time.Time
}

func NewRequestLogStore() *RequestLogStore {
	return NewRequestLogStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewRequestLogStoreWithClock creates an empty store that stamps entries using clock.
func NewRequestLogStoreWithClock(clock func() time.Time) *RequestLogStore {
	return &RequestLogStore{
		logs:      make(map[string]model.AIRequestLog),
		userIndex: make(map[string][]string),
		now:       clock,
	}
}

func (s *RequestLogStore) Append(entry model.AIRequestLog) model.AIRequestLog {

	s.mu.Lock()
	defer s.mu.Unlock()

	requestId := entry.Request.RequestId
	_, relogged := s.logs[requestId]
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	s.sequence++
	entry.Sequence = s.sequence

	s.logs[requestId] = entry.Clone()
	if !relogged {
		userId := entry.Request.UserId
		s.userIndex[userId] = append(s.userIndex[userId], requestId)
	}
	return entry
}

func (s *RequestLogStore) GetById(requestId string) (*model.AIRequestLog, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.logs[requestId]
	if !ok {
		return nil, false
	}
	clone := entry.Clone()
	return &clone, true
}

// GetByUser returns the user's last limit logged requests, most recent first.
func (s *RequestLogStore) GetByUser(userId string, limit int) []model.AIRequestLog {

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userIndex[userId]
	if len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}

	entries := make([]model.AIRequestLog, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if entry, ok := s.logs[ids[i]]; ok {
			entries = append(entries, entry.Clone())
		}
	}
	return entries
}

// GetAll returns up to limit entries ordered by log timestamp, newest first. Entries sharing a
// timestamp are ordered by sequence, newest first.
func (s *RequestLogStore) GetAll(limit int) []model.AIRequestLog {

	s.mu.RLock()
	entries := make([]model.AIRequestLog, 0, len(s.logs))
	for _, entry := range s.logs {
		entries = append(entries, entry.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].Sequence > entries[j].Sequence
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *RequestLogStore) Clear() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = make(map[string]model.AIRequestLog)
	s.userIndex = make(map[string][]string)
}

func (s *RequestLogStore) Count() int {

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}
