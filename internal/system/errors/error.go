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

import (
	"fmt"
	"net/http"
)

// ErrorMessage is the body of every error returned by the API.
type ErrorMessage struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
	TraceID     string `json:"trace_id,omitempty"`
}

// ClientError is caused by the caller (bad input, unknown resource) and carries the HTTP status to answer with.
type ClientError struct {
	ErrorMessage
	StatusCode int
}

// ServerError wraps an internal failure. Its details are logged, never returned to the caller.
type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// NewBadRequestError builds a 400 ClientError from a catalogued message and a request specific description.
func NewBadRequestError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return NewClientError(msg, http.StatusBadRequest)
}

// NewNotFoundError builds a 404 ClientError from a catalogued message and a request specific description.
func NewNotFoundError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return NewClientError(msg, http.StatusNotFound)
}
