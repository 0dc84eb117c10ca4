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

package store

import (
	"sort"
	"sync"

	"github.com/wso2/consent-ai-debug-service/internal/user_data/model"
)

// UserStoreInterface keeps user profiles by id.
type UserStoreInterface interface {
	// PutUser stores the user and reports whether an existing user was replaced.
	PutUser(user model.User) bool
	GetUser(userId string) (*model.User, bool)
	ListUsers() []model.User
	CountUsers() int
}

// UserStore is the in-memory UserStoreInterface implementation. Users are copied on the way in
// and out so callers never share storage with the store.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

func (s *UserStore) PutUser(user model.User) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[user.UserId]
	s.users[user.UserId] = user.Clone()
	return exists
}

func (s *UserStore) GetUser(userId string) (*model.User, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userId]
	if !ok {
		return nil, false
	}
	clone := user.Clone()
	return &clone, true
}

// ListUsers returns every user ordered by id.
func (s *UserStore) ListUsers() []model.User {

	s.mu.RLock()
	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		return users[i].UserId < users[j].UserId
	})
	return users
}

func (s *UserStore) CountUsers() int {

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
