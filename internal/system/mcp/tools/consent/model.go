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

// consent_grant, consent_revoke
type ChangeConsentInput struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
}

type ConsentOutput struct {
	UserID    string `json:"user_id"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	GrantedAt string `json:"granted_at,omitempty"`
	RevokedAt string `json:"revoked_at,omitempty"`
}

// consent_state, consent_timeline
type UserInput struct {
	UserID string `json:"user_id"`
}

type StateOutput struct {
	UserID string            `json:"user_id"`
	State  map[string]string `json:"state"`
}

type EventOutput struct {
	EventID   string `json:"event_id"`
	Category  string `json:"category"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

type TimelineOutput struct {
	UserID string        `json:"user_id"`
	Events []EventOutput `json:"events"`
}
