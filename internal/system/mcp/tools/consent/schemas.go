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
	"github.com/google/jsonschema-go/jsonschema"
)

var categorySchema = &jsonschema.Schema{
	Type:        "string",
	Description: "Data category.",
	Enum:        []any{"purchase_history", "preferences", "activity"},
}

var changeConsentInputSchema = &jsonschema.Schema{
	Type: "object",
	Required: []string{
		"user_id",
		"category",
	},
	Properties: map[string]*jsonschema.Schema{
		"user_id": {
			Type:        "string",
			Description: "User identifier, e.g. user_1.",
		},
		"category": categorySchema,
	},
}

var userInputSchema = &jsonschema.Schema{
	Type: "object",
	Required: []string{
		"user_id",
	},
	Properties: map[string]*jsonschema.Schema{
		"user_id": {
			Type:        "string",
			Description: "User identifier, e.g. user_1.",
		},
	},
}
