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
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

// ConsentStoreInterface holds the current consent records and the append-only consent history.
type ConsentStoreInterface interface {
	Grant(userId string, category model.DataCategory) model.Consent
	Revoke(userId string, category model.DataCategory) model.Consent
	GetConsent(userId string, category model.DataCategory) (*model.Consent, bool)
	GetCurrentState(userId string) model.ConsentState
	GetTimeline(userId string) []model.ConsentEvent
	CountEvents() int
}

type consentKey struct {
	userId   string
	category model.DataCategory
}

// ConsentStore is the in-memory ConsentStoreInterface implementation.
type ConsentStore struct {
	mu       sync.RWMutex
	consents map[consentKey]model.Consent
	events   map[string][]model.ConsentEvent
	now      func() time.Time
}

// NewConsentStore creates an empty store stamping records with the current UTC time.
func NewConsentStore() *ConsentStore {
	return NewConsentStoreWithClock(func() time.Time { return time.Now().UTC() })
}

// NewConsentStoreWithClock creates an empty store that reads timestamps from clock.
func NewConsentStoreWithClock(clock func() time.Time) *ConsentStore {
	return &ConsentStore{
		consents: make(map[consentKey]model.Consent),
		events:   make(map[string][]model.ConsentEvent),
		now:      clock,
	}
}

// Grant marks the pair granted. The first grant time survives later grants and revokes.
func (s *ConsentStore) Grant(userId string, category model.DataCategory) model.Consent {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := consentKey{userId: userId, category: category}
	grantedAt := now
	if prior, ok := s.consents[key]; ok && prior.GrantedAt != nil {
		grantedAt = *prior.GrantedAt
	}

	consent := model.Consent{
		UserId:    userId,
		Category:  category,
		Status:    model.Granted,
		Timestamp: now,
		GrantedAt: &grantedAt,
	}
	s.consents[key] = consent
	s.appendEvent(userId, category, model.Granted, now)

	log.GetLogger().Debug(fmt.Sprintf("Consent granted for user: %s, category: %s", userId, category))
	return consent
}

// Revoke marks the pair revoked. Revoking a pair that was never granted is allowed.
func (s *ConsentStore) Revoke(userId string, category model.DataCategory) model.Consent {

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := consentKey{userId: userId, category: category}
	var grantedAt *time.Time
	if prior, ok := s.consents[key]; ok && prior.GrantedAt != nil {
		carried := *prior.GrantedAt
		grantedAt = &carried
	}
	revokedAt := now

	consent := model.Consent{
		UserId:    userId,
		Category:  category,
		Status:    model.Revoked,
		Timestamp: now,
		GrantedAt: grantedAt,
		RevokedAt: &revokedAt,
	}
	s.consents[key] = consent
	s.appendEvent(userId, category, model.Revoked, now)

	log.GetLogger().Debug(fmt.Sprintf("Consent revoked for user: %s, category: %s", userId, category))
	return consent
}

func (s *ConsentStore) appendEvent(userId string, category model.DataCategory, action model.ConsentStatus,
	timestamp time.Time) {

	s.events[userId] = append(s.events[userId], model.ConsentEvent{
		EventId:   uuid.New().String(),
		UserId:    userId,
		Category:  category,
		Action:    action,
		Timestamp: timestamp,
	})
}

func (s *ConsentStore) GetConsent(userId string, category model.DataCategory) (*model.Consent, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	consent, ok := s.consents[consentKey{userId: userId, category: category}]
	if !ok {
		return nil, false
	}
	return &consent, true
}

// GetCurrentState returns an entry for every category. Pairs without a record are revoked.
func (s *ConsentStore) GetCurrentState(userId string) model.ConsentState {

	s.mu.RLock()
	defer s.mu.RUnlock()

	state := make(model.ConsentState, len(model.AllCategories()))
	for _, category := range model.AllCategories() {
		state[category] = model.Revoked
		if consent, ok := s.consents[consentKey{userId: userId, category: category}]; ok {
			state[category] = consent.Status
		}
	}
	return state
}

// GetTimeline returns the user's consent events ordered by timestamp. Events sharing a timestamp
// keep the order they were recorded in.
func (s *ConsentStore) GetTimeline(userId string) []model.ConsentEvent {

	s.mu.RLock()
	timeline := make([]model.ConsentEvent, len(s.events[userId]))
	copy(timeline, s.events[userId])
	s.mu.RUnlock()

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Timestamp.Before(timeline[j].Timestamp)
	})
	return timeline
}

func (s *ConsentStore) CountEvents() int {

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, events := range s.events {
		count += len(events)
	}
	return count
}
