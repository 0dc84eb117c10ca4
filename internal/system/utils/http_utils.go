/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

package utils

import (
	"encoding/json"
	"errors" // Standard Go errors package
	"net/http"

	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	customerrors "github.com/wso2/consent-ai-debug-service/internal/system/errors" // Alias for the custom errors
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, err error) {
	traceID := w.Header().Get(constants.TraceIDHeader)

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		body := clientError.ErrorMessage
		body.TraceID = traceID
		WriteJSONResponse(w, clientError.StatusCode, body)
		return
	}

	logger := log.GetLogger()
	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		logger.Error(serverError.Error(), log.TraceID(traceID))
	} else {
		logger.Error("Unexpected error while serving the request.", log.TraceID(traceID), log.Error(err))
	}
	WriteJSONResponse(w, http.StatusInternalServerError, customerrors.ErrorMessage{
		Code:        customerrors.INTERNAL_SERVER_ERROR.Code,
		Message:     customerrors.INTERNAL_SERVER_ERROR.Message,
		Description: "An unexpected error occurred while processing the request.",
		TraceID:     traceID,
	})
}

// WriteJSONResponse is a common helper for JSON encoding.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.GetLogger().Error("Failed to encode the response body.", log.Error(err))
	}
}
