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

package ai

import (
	"github.com/google/jsonschema-go/jsonschema"
)

var statusSchema = &jsonschema.Schema{
	Type: "string",
	Enum: []any{"granted", "revoked"},
}

var runInputSchema = &jsonschema.Schema{
	Type: "object",
	Required: []string{
		"user_id",
		"prompt",
	},
	Properties: map[string]*jsonschema.Schema{
		"user_id": {
			Type:        "string",
			Description: "User identifier, e.g. user_1.",
		},
		"prompt": {
			Type:        "string",
			Description: "Prompt text. Prompts mentioning recommend, suggest or based on get recommendation style answers.",
		},
	},
}

var whatIfInputSchema = &jsonschema.Schema{
	Type: "object",
	Required: []string{
		"base_request_id",
		"modified_consent",
	},
	Properties: map[string]*jsonschema.Schema{
		"base_request_id": {
			Type:        "string",
			Description: "Request id of a logged ai_run call.",
		},
		"modified_consent": {
			Type:        "object",
			Description: "Hypothetical consent state. Example: {\"purchase_history\": \"granted\", \"preferences\": \"revoked\"}",
			Properties: map[string]*jsonschema.Schema{
				"purchase_history": statusSchema,
				"preferences":      statusSchema,
				"activity":         statusSchema,
			},
		},
		"merge_with_current": {
			Type:        "boolean",
			Description: "Keep the current status of categories missing from modified_consent instead of revoking them.",
		},
	},
}

var listLogsInputSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"user_id": {
			Type:        "string",
			Description: "Only list requests of this user.",
		},
		"limit": {
			Type:        "integer",
			Description: "Max entries to return, most recent first.",
		},
	},
}
