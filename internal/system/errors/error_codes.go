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

package errors

const errorPrefix = "CAD-"

var (
	// Server error codes

	INTERNAL_SERVER_ERROR = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Internal server error.",
	}

	// Client error codes

	INVALID_DATA_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Invalid data category.",
	}

	INVALID_CONSENT_STATUS = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Invalid consent status.",
	}

	CONSENT_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Invalid consent request.",
	}

	USER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "User not found.",
	}

	USER_ID_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "User id is required.",
	}

	REQUEST_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Request not found.",
	}

	AI_RUN_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Invalid generation request.",
	}

	WHAT_IF_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Invalid what-if request.",
	}

	COMPARE_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11010",
		Message: "Invalid compare request.",
	}

	INVALID_LIMIT = ErrorMessage{
		Code:    errorPrefix + "11011",
		Message: "Invalid limit.",
	}

	INVALID_CONFIDENCE = ErrorMessage{
		Code:    errorPrefix + "11012",
		Message: "Invalid confidence value.",
	}

	INVALID_REQUEST_LOG = ErrorMessage{
		Code:    errorPrefix + "11013",
		Message: "Invalid request log.",
	}

	CONSENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11014",
		Message: "Consent not found.",
	}
)
