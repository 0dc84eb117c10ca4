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
	"fmt"
	"time"

	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/model"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/store"
)

// UserDataServiceInterface defines the service interface.
type UserDataServiceInterface interface {
	CreateUser(userId string, purchaseHistory []string, preferences map[string]string, activity []string) model.User
	GetUser(userId string) (*model.User, error)
	ListUsers() []model.User
	GetAccessibleData(userId string, state consentModel.ConsentState) model.AccessibleData
	SeedSampleData()
	CountUsers() int
}

// UserDataService is the default implementation.
type UserDataService struct {
	store store.UserStoreInterface
}

func NewUserDataService(userStore store.UserStoreInterface) *UserDataService {
	return &UserDataService{store: userStore}
}

// CreateUser stores a user profile. Nil collections become empty ones and an existing user with the
// same id is replaced.
func (s *UserDataService) CreateUser(userId string, purchaseHistory []string, preferences map[string]string,
	activity []string) model.User {

	user := model.User{
		UserId: userId,
		Profile: model.UserProfile{
			UserId:          userId,
			PurchaseHistory: purchaseHistory,
			Preferences:     preferences,
			Activity:        activity,
		},
		CreatedAt: time.Now().UTC(),
	}.Clone()

	if replaced := s.store.PutUser(user); replaced {
		log.GetLogger().Warn(fmt.Sprintf("User: %s already existed and was replaced.", userId))
	}
	workers.EnqueueAuditEvent(log.AuditEvent{
		InitiatorID:   "system",
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      userId,
		TargetType:    log.TargetTypeUser,
		ActionID:      log.ActionAddUser,
	})
	return user
}

func (s *UserDataService) GetUser(userId string) (*model.User, error) {

	user, ok := s.store.GetUser(userId)
	if !ok {
		return nil, errors.NewNotFoundError(errors.USER_NOT_FOUND, fmt.Sprintf("User %s not found.", userId))
	}
	return user, nil
}

func (s *UserDataService) ListUsers() []model.User {
	return s.store.ListUsers()
}

// GetAccessibleData returns the user's data in every category granted by state and the empty value
// of the right shape in every other category. An unknown user yields an all empty view.
func (s *UserDataService) GetAccessibleData(userId string, state consentModel.ConsentState) model.AccessibleData {

	accessible := make(model.AccessibleData, len(consentModel.AllCategories()))
	for _, category := range consentModel.AllCategories() {
		accessible[category] = model.EmptyCategoryData(category)
	}

	user, ok := s.store.GetUser(userId)
	if !ok {
		return accessible
	}

	if state.IsGranted(consentModel.PurchaseHistory) {
		accessible[consentModel.PurchaseHistory] = model.NewSequenceData(consentModel.PurchaseHistory,
			user.Profile.PurchaseHistory)
	}
	if state.IsGranted(consentModel.Preferences) {
		accessible[consentModel.Preferences] = model.NewPreferenceData(user.Profile.Preferences)
	}
	if state.IsGranted(consentModel.Activity) {
		accessible[consentModel.Activity] = model.NewSequenceData(consentModel.Activity, user.Profile.Activity)
	}
	return accessible
}

// SeedSampleData provisions the demo users unless they already exist.
func (s *UserDataService) SeedSampleData() {

	logger := log.GetLogger()
	if _, ok := s.store.GetUser(constants.SampleUserOne); !ok {
		s.CreateUser(constants.SampleUserOne,
			[]string{"laptop", "wireless mouse", "mechanical keyboard", "monitor"},
			map[string]string{"theme": "dark", "language": "en", "notifications": "enabled"},
			[]string{"page_view:home", "search:python", "view_product:laptop", "add_to_cart:mouse"},
		)
		logger.Info(fmt.Sprintf("Seeded sample user: %s", constants.SampleUserOne))
	}
	if _, ok := s.store.GetUser(constants.SampleUserTwo); !ok {
		s.CreateUser(constants.SampleUserTwo,
			[]string{"headphones", "webcam", "microphone"},
			map[string]string{"theme": "light", "language": "es"},
			[]string{"page_view:products", "search:audio", "view_product:headphones"},
		)
		logger.Info(fmt.Sprintf("Seeded sample user: %s", constants.SampleUserTwo))
	}
}

func (s *UserDataService) CountUsers() int {
	return s.store.CountUsers()
}
