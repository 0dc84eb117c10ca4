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

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wso2/consent-ai-debug-service/internal/generation/model"
	"github.com/wso2/consent-ai-debug-service/internal/request_log/store"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/pagination"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
)

// RequestLogServiceInterface defines the service interface.
type RequestLogServiceInterface interface {
	Append(entry model.AIRequestLog) (*model.AIRequestLog, error)
	GetById(requestId string) (*model.AIRequestLog, error)
	GetByUser(userId string, limit int) ([]model.AIRequestLog, error)
	GetAll(limit int) ([]model.AIRequestLog, error)
	Clear(ctx context.Context)
	Count() int
	LimitBounds() pagination.LimitBounds
}

// RequestLogService is the default implementation.
type RequestLogService struct {
	store  store.RequestLogStoreInterface
	bounds pagination.LimitBounds
}

func NewRequestLogService(requestLogStore store.RequestLogStoreInterface, bounds pagination.LimitBounds) *RequestLogService {
	return &RequestLogService{store: requestLogStore, bounds: bounds}
}

// Append validates and stores a generation. Nothing is stored when validation fails.
func (s *RequestLogService) Append(entry model.AIRequestLog) (*model.AIRequestLog, error) {

	if strings.TrimSpace(entry.Request.RequestId) == "" {
		return nil, errors.NewBadRequestError(errors.INVALID_REQUEST_LOG, "request_id is required.")
	}
	if confidence := entry.Response.Confidence; confidence < 0 || confidence > 1 {
		return nil, errors.NewBadRequestError(errors.INVALID_CONFIDENCE,
			fmt.Sprintf("confidence must be within [0, 1], got %v.", confidence))
	}

	stored := s.store.Append(entry)
	log.GetLogger().Debug(fmt.Sprintf("Logged request: %s for user: %s", stored.Request.RequestId,
		stored.Request.UserId))
	return &stored, nil
}

func (s *RequestLogService) GetById(requestId string) (*model.AIRequestLog, error) {

	entry, ok := s.store.GetById(requestId)
	if !ok {
		return nil, errors.NewNotFoundError(errors.REQUEST_NOT_FOUND, fmt.Sprintf("Request %s not found.", requestId))
	}
	return entry, nil
}

func (s *RequestLogService) GetByUser(userId string, limit int) ([]model.AIRequestLog, error) {

	if err := pagination.ValidateLimit(limit, s.bounds); err != nil {
		return nil, err
	}
	return s.store.GetByUser(userId, limit), nil
}

func (s *RequestLogService) GetAll(limit int) ([]model.AIRequestLog, error) {

	if err := pagination.ValidateLimit(limit, s.bounds); err != nil {
		return nil, err
	}
	return s.store.GetAll(limit), nil
}

// Clear drops every logged request.
func (s *RequestLogService) Clear(ctx context.Context) {

	s.store.Clear()
	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   "system",
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      "request-log",
		TargetType:    log.TargetTypeRequest,
		ActionID:      log.ActionClearRequestLog,
		TraceID:       tracectx.GetTraceID(ctx),
	})
}

func (s *RequestLogService) Count() int {
	return s.store.Count()
}

func (s *RequestLogService) LimitBounds() pagination.LimitBounds {
	return s.bounds
}
