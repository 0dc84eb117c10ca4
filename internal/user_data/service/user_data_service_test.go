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
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	consentModel "github.com/wso2/consent-ai-debug-service/internal/consent/model"
	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/model"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/store"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// MockUserStore implements store.UserStoreInterface for testing
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) PutUser(user model.User) bool {
	args := m.Called(user)
	return args.Bool(0)
}

func (m *MockUserStore) GetUser(userId string) (*model.User, bool) {
	args := m.Called(userId)
	return args.Get(0).(*model.User), args.Bool(1)
}

func (m *MockUserStore) ListUsers() []model.User {
	args := m.Called()
	return args.Get(0).([]model.User)
}

func (m *MockUserStore) CountUsers() int {
	args := m.Called()
	return args.Int(0)
}

func state(purchases, preferences, activity consentModel.ConsentStatus) consentModel.ConsentState {
	return consentModel.ConsentState{
		consentModel.PurchaseHistory: purchases,
		consentModel.Preferences:     preferences,
		consentModel.Activity:        activity,
	}
}

// ---------------------------------------------------------------------------
// CreateUser / GetUser
// ---------------------------------------------------------------------------

func TestCreateUser_NilCollectionsBecomeEmpty(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())

	user := svc.CreateUser("u1", nil, nil, nil)

	assert.Equal(t, "u1", user.Profile.UserId)
	assert.NotNil(t, user.Profile.PurchaseHistory)
	assert.NotNil(t, user.Profile.Preferences)
	assert.NotNil(t, user.Profile.Activity)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateOverwrites(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())

	svc.CreateUser("u1", []string{"old"}, nil, nil)
	svc.CreateUser("u1", []string{"new"}, nil, nil)

	user, err := svc.GetUser("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, user.Profile.PurchaseHistory)
	assert.Equal(t, 1, svc.CountUsers())
}

func TestCreateUser_ReportsReplacementToStore(t *testing.T) {
	mockStore := new(MockUserStore)
	svc := NewUserDataService(mockStore)
	mockStore.On("PutUser", mock.MatchedBy(func(u model.User) bool { return u.UserId == "u1" })).Return(true)

	svc.CreateUser("u1", nil, nil, nil)

	mockStore.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	mockStore := new(MockUserStore)
	svc := NewUserDataService(mockStore)
	mockStore.On("GetUser", "ghost").Return((*model.User)(nil), false)

	user, err := svc.GetUser("ghost")

	assert.Nil(t, user)
	var clientErr *errors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	assert.Equal(t, errors.USER_NOT_FOUND.Code, clientErr.Code)
}

// ---------------------------------------------------------------------------
// GetAccessibleData
// ---------------------------------------------------------------------------

func TestGetAccessibleData_AllGranted(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())
	svc.SeedSampleData()

	data := svc.GetAccessibleData("user_1", state(consentModel.Granted, consentModel.Granted, consentModel.Granted))

	assert.Equal(t, []string{"laptop", "wireless mouse", "mechanical keyboard", "monitor"}, data.PurchaseHistory())
	assert.Equal(t, "dark", data.Preferences()["theme"])
	assert.Len(t, data.Activity(), 4)
}

func TestGetAccessibleData_RevokedCategoriesAreEmptyWithRightShape(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())
	svc.SeedSampleData()

	data := svc.GetAccessibleData("user_1", state(consentModel.Granted, consentModel.Revoked, consentModel.Revoked))

	require.Len(t, data, 3)
	assert.Len(t, data.PurchaseHistory(), 4)
	assert.True(t, data[consentModel.Preferences].IsEmpty())
	assert.NotNil(t, data[consentModel.Preferences].Entries)
	assert.True(t, data[consentModel.Activity].IsEmpty())
	assert.NotNil(t, data[consentModel.Activity].Items)
}

func TestGetAccessibleData_MissingStateEntryIsRevoked(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())
	svc.SeedSampleData()

	data := svc.GetAccessibleData("user_2", consentModel.ConsentState{consentModel.Preferences: consentModel.Granted})

	assert.Empty(t, data.PurchaseHistory())
	assert.Equal(t, map[string]string{"theme": "light", "language": "es"}, data.Preferences())
	assert.Empty(t, data.Activity())
}

func TestGetAccessibleData_UnknownUserIsAllEmpty(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())

	data := svc.GetAccessibleData("ghost", state(consentModel.Granted, consentModel.Granted, consentModel.Granted))

	require.Len(t, data, 3)
	for _, category := range consentModel.AllCategories() {
		assert.True(t, data[category].IsEmpty())
	}
}

func TestGetAccessibleData_DoesNotAliasStoredProfile(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())
	svc.SeedSampleData()

	data := svc.GetAccessibleData("user_1", state(consentModel.Granted, consentModel.Granted, consentModel.Granted))
	data.PurchaseHistory()[0] = "changed"
	data.Preferences()["theme"] = "changed"

	user, err := svc.GetUser("user_1")
	require.NoError(t, err)
	assert.Equal(t, "laptop", user.Profile.PurchaseHistory[0])
	assert.Equal(t, "dark", user.Profile.Preferences["theme"])
}

// ---------------------------------------------------------------------------
// SeedSampleData / ListUsers
// ---------------------------------------------------------------------------

func TestSeedSampleData_Idempotent(t *testing.T) {
	svc := NewUserDataService(store.NewUserStore())
	svc.CreateUser("user_1", []string{"custom"}, nil, nil)

	svc.SeedSampleData()
	svc.SeedSampleData()

	users := svc.ListUsers()
	require.Len(t, users, 2)
	assert.Equal(t, "user_1", users[0].UserId)
	assert.Equal(t, []string{"custom"}, users[0].Profile.PurchaseHistory)
	assert.Equal(t, "user_2", users[1].UserId)
	assert.Equal(t, []string{"headphones", "webcam", "microphone"}, users[1].Profile.PurchaseHistory)
}
