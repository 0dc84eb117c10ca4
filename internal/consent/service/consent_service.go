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

	"github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/consent/store"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
)

// ConsentServiceInterface defines the service interface.
type ConsentServiceInterface interface {
	GrantConsent(ctx context.Context, userId, category string) (*model.Consent, error)
	RevokeConsent(ctx context.Context, userId, category string) (*model.Consent, error)
	GetConsent(userId, category string) (*model.Consent, error)
	CanAccess(userId string, category model.DataCategory) bool
	GetCurrentState(userId string) model.ConsentState
	GetStateWithOverride(userId string, override model.ConsentState) model.ConsentState
	GetTimeline(userId string) []model.ConsentEvent
	CountEvents() int
}

// ConsentService is the default implementation.
type ConsentService struct {
	store store.ConsentStoreInterface
}

// NewConsentService returns a service backed by consentStore.
func NewConsentService(consentStore store.ConsentStoreInterface) *ConsentService {
	return &ConsentService{store: consentStore}
}

// GrantConsent grants the user access to the category.
func (cs *ConsentService) GrantConsent(ctx context.Context, userId, category string) (*model.Consent, error) {

	dataCategory, err := validateConsentRequest(userId, category)
	if err != nil {
		return nil, err
	}

	consent := cs.store.Grant(userId, dataCategory)
	cs.audit(ctx, log.ActionGrantConsent, consent)
	return &consent, nil
}

// RevokeConsent revokes the user's consent for the category.
func (cs *ConsentService) RevokeConsent(ctx context.Context, userId, category string) (*model.Consent, error) {

	dataCategory, err := validateConsentRequest(userId, category)
	if err != nil {
		return nil, err
	}

	consent := cs.store.Revoke(userId, dataCategory)
	cs.audit(ctx, log.ActionRevokeConsent, consent)
	return &consent, nil
}

// GetConsent returns the current record of the pair. A pair without a record is reported as not found.
func (cs *ConsentService) GetConsent(userId, category string) (*model.Consent, error) {

	dataCategory, err := validateConsentRequest(userId, category)
	if err != nil {
		return nil, err
	}

	consent, ok := cs.store.GetConsent(userId, dataCategory)
	if !ok {
		return nil, errors.NewNotFoundError(errors.CONSENT_NOT_FOUND,
			fmt.Sprintf("No consent recorded for user: %s, category: %s.", userId, category))
	}
	return consent, nil
}

// CanAccess reports whether the pair is currently granted.
func (cs *ConsentService) CanAccess(userId string, category model.DataCategory) bool {
	consent, ok := cs.store.GetConsent(userId, category)
	return ok && consent.Status == model.Granted
}

func (cs *ConsentService) GetCurrentState(userId string) model.ConsentState {
	return cs.store.GetCurrentState(userId)
}

// GetStateWithOverride returns the current state with the override entries applied. Nothing is persisted.
func (cs *ConsentService) GetStateWithOverride(userId string, override model.ConsentState) model.ConsentState {

	state := cs.store.GetCurrentState(userId)
	for category, status := range override {
		state[category] = status
	}
	return state
}

func (cs *ConsentService) GetTimeline(userId string) []model.ConsentEvent {
	return cs.store.GetTimeline(userId)
}

func (cs *ConsentService) CountEvents() int {
	return cs.store.CountEvents()
}

func (cs *ConsentService) audit(ctx context.Context, action string, consent model.Consent) {
	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   consent.UserId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      fmt.Sprintf("%s/%s", consent.UserId, consent.Category),
		TargetType:    log.TargetTypeConsent,
		ActionID:      action,
		TraceID:       tracectx.GetTraceID(ctx),
		Data: map[string]interface{}{
			"category": consent.Category,
			"status":   consent.Status,
		},
	})
}

func validateConsentRequest(userId, category string) (model.DataCategory, error) {

	if strings.TrimSpace(userId) == "" {
		return "", errors.NewBadRequestError(errors.USER_ID_REQUIRED, "user_id is required.")
	}
	return model.ParseDataCategory(category)
}
