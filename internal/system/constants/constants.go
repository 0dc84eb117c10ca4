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

package constants

const ApiBasePath = "/api/v1"

// DefaultConfigFile is the deployment file location relative to the service home.
const DefaultConfigFile = "config/repository/conf/deployment.yaml"

const MCPEndpointPath = "/mcp"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"

// TraceIDHeader is read from incoming requests and echoed on responses.
const TraceIDHeader = "X-Trace-Id"

// Demo users provisioned on start up.
const (
	SampleUserOne = "user_1"
	SampleUserTwo = "user_2"
)

// Prompt fragments that switch the generator into recommendation mode.
var RecommendationKeywords = []string{"recommend", "suggest", "based on"}

const (
	BaseConfidence        = 0.3
	ConfidencePerPoint    = 0.08
	MaxConfidence         = 0.95
	DefaultTheme          = "default"
	DefaultLanguage       = "en"
	ThemePreferenceKey    = "theme"
	LanguagePreferenceKey = "language"
)

// Request log query limits.
const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

const DefaultStatsSchedule = "@every 5m"

// AuditQueueSize is the buffer of the audit worker queue.
const AuditQueueSize = 1000
