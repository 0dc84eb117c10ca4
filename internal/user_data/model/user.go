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
	"maps"
	"slices"
	"time"
)

// UserProfile holds the raw data of a user in every category.
type UserProfile struct {
	UserId          string            `json:"user_id"`
	PurchaseHistory []string          `json:"purchase_history"`
	Preferences     map[string]string `json:"preferences"`
	Activity        []string          `json:"activity"`
}

type User struct {
	UserId    string      `json:"user_id"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"created_at"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.Profile.PurchaseHistory = cloneItems(u.Profile.PurchaseHistory)
	u.Profile.Preferences = cloneEntries(u.Profile.Preferences)
	u.Profile.Activity = cloneItems(u.Profile.Activity)
	return u
}

func cloneItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}

func cloneEntries(entries map[string]string) map[string]string {
	if entries == nil {
		return map[string]string{}
	}
	return maps.Clone(entries)
}
