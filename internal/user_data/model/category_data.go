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
	"bytes"
	"encoding/json"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
)

// CategoryData is the data of a single category. Purchase history and activity are ordered
// sequences (Items), preferences are key/value settings (Entries). Which field is meaningful is
// decided by Category.
type CategoryData struct {
	Category consentModel.DataCategory
	Items    []string
	Entries  map[string]string
}

// IsMapping reports whether the category holds key/value entries rather than a sequence.
func IsMapping(category consentModel.DataCategory) bool {
	return category == consentModel.Preferences
}

// NewSequenceData wraps the items of a sequence category.
func NewSequenceData(category consentModel.DataCategory, items []string) CategoryData {
	return CategoryData{Category: category, Items: cloneItems(items)}
}

// NewPreferenceData wraps preference entries.
func NewPreferenceData(entries map[string]string) CategoryData {
	return CategoryData{Category: consentModel.Preferences, Entries: cloneEntries(entries)}
}

// EmptyCategoryData returns the empty value of the shape category uses.
func EmptyCategoryData(category consentModel.DataCategory) CategoryData {
	if IsMapping(category) {
		return CategoryData{Category: category, Entries: map[string]string{}}
	}
	return CategoryData{Category: category, Items: []string{}}
}

// Len is the number of data points: items for sequences, entries for preferences.
func (d CategoryData) Len() int {
	if IsMapping(d.Category) {
		return len(d.Entries)
	}
	return len(d.Items)
}

// Clone returns a copy that shares no storage with d.
func (d CategoryData) Clone() CategoryData {
	if d.Items != nil {
		d.Items = cloneItems(d.Items)
	}
	if d.Entries != nil {
		d.Entries = cloneEntries(d.Entries)
	}
	return d
}

func (d CategoryData) IsEmpty() bool {
	return d.Len() == 0
}

// MarshalJSON writes a JSON object for preferences and a JSON array otherwise.
func (d CategoryData) MarshalJSON() ([]byte, error) {
	if IsMapping(d.Category) {
		if d.Entries == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(d.Entries)
	}
	if d.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Items)
}

// UnmarshalJSON accepts either shape. The owner of the value sets Category afterwards.
func (d *CategoryData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		d.Items = nil
		return json.Unmarshal(trimmed, &d.Entries)
	}
	d.Entries = nil
	return json.Unmarshal(trimmed, &d.Items)
}

// AccessibleData is the consent filtered view of a user, keyed by category.
type AccessibleData map[consentModel.DataCategory]CategoryData

// Get returns the data of category, or its empty value when absent.
func (a AccessibleData) Get(category consentModel.DataCategory) CategoryData {
	if data, ok := a[category]; ok {
		return data
	}
	return EmptyCategoryData(category)
}

func (a AccessibleData) PurchaseHistory() []string {
	return a.Get(consentModel.PurchaseHistory).Items
}

func (a AccessibleData) Preferences() map[string]string {
	return a.Get(consentModel.Preferences).Entries
}

func (a AccessibleData) Activity() []string {
	return a.Get(consentModel.Activity).Items
}
