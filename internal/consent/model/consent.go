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
	"fmt"
	"time"

	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
)

// DataCategory is one of the closed set of user data categories gated by consent.
type DataCategory string

const (
	PurchaseHistory DataCategory = "purchase_history"
	Preferences     DataCategory = "preferences"
	Activity        DataCategory = "activity"
)

// AllCategories returns every category in the fixed order used for attribution.
func AllCategories() []DataCategory {
	return []DataCategory{PurchaseHistory, Preferences, Activity}
}

// ParseDataCategory validates a category name.
func ParseDataCategory(value string) (DataCategory, error) {
	switch c := DataCategory(value); c {
	case PurchaseHistory, Preferences, Activity:
		return c, nil
	}
	return "", errors.NewBadRequestError(errors.INVALID_DATA_CATEGORY,
		fmt.Sprintf("'%s' is not a data category. Allowed values are purchase_history, preferences, activity.", value))
}

func (c *DataCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(raw))
}

// UnmarshalText lets DataCategory be used as a validated JSON object key.
func (c *DataCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseDataCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ConsentStatus is the state of one (user, category) pair.
type ConsentStatus string

const (
	Granted ConsentStatus = "granted"
	Revoked ConsentStatus = "revoked"
)

// ParseConsentStatus validates a consent status.
func ParseConsentStatus(value string) (ConsentStatus, error) {
	switch s := ConsentStatus(value); s {
	case Granted, Revoked:
		return s, nil
	}
	return "", errors.NewBadRequestError(errors.INVALID_CONSENT_STATUS,
		fmt.Sprintf("'%s' is not a consent status. Allowed values are granted, revoked.", value))
}

func (s *ConsentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseConsentStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConsentState maps each category to its consent status.
type ConsentState map[DataCategory]ConsentStatus

// Status returns the status of category, treating an absent entry as revoked.
func (s ConsentState) Status(category DataCategory) ConsentStatus {
	if status, ok := s[category]; ok {
		return status
	}
	return Revoked
}

// IsGranted reports whether category is granted in this state.
func (s ConsentState) IsGranted(category DataCategory) bool {
	return s.Status(category) == Granted
}

// Complete returns a copy holding an entry for every category, absent ones revoked.
func (s ConsentState) Complete() ConsentState {
	complete := make(ConsentState, len(AllCategories()))
	for _, category := range AllCategories() {
		complete[category] = s.Status(category)
	}
	return complete
}

// Clone returns a copy that shares no storage with s.
func (s ConsentState) Clone() ConsentState {
	clone := make(ConsentState, len(s))
	for category, status := range s {
		clone[category] = status
	}
	return clone
}

// Consent is the current consent record of one (user, category) pair.
type Consent struct {
	UserId    string        `json:"user_id"`
	Category  DataCategory  `json:"category"`
	Status    ConsentStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	GrantedAt *time.Time    `json:"granted_at"`
	RevokedAt *time.Time    `json:"revoked_at"`
}

// ConsentEvent is an immutable entry of the consent history.
type ConsentEvent struct {
	EventId   string        `json:"event_id"`
	UserId    string        `json:"user_id"`
	Category  DataCategory  `json:"category"`
	Action    ConsentStatus `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// ConsentRequest is the body of the grant and revoke endpoints.
type ConsentRequest struct {
	UserId   string `json:"user_id"`
	Category string `json:"category"`
}

type ConsentStateResponse struct {
	UserId string       `json:"user_id"`
	State  ConsentState `json:"state"`
}
