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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/consent-ai-debug-service/internal/user_data/model"
)

func newUser(id string) model.User {
	return model.User{
		UserId: id,
		Profile: model.UserProfile{
			UserId:          id,
			PurchaseHistory: []string{"laptop"},
			Preferences:     map[string]string{"theme": "dark"},
			Activity:        []string{"viewed:monitor"},
		},
	}
}

func TestPutUser_ReportsReplacement(t *testing.T) {
	s := NewUserStore()

	assert.False(t, s.PutUser(newUser("u1")))
	assert.True(t, s.PutUser(newUser("u1")))
	assert.Equal(t, 1, s.CountUsers())
}

func TestGetUser_Unknown(t *testing.T) {
	_, ok := NewUserStore().GetUser("missing")
	assert.False(t, ok)
}

func TestGetUser_DoesNotShareStorage(t *testing.T) {
	s := NewUserStore()
	user := newUser("u1")
	s.PutUser(user)

	user.Profile.PurchaseHistory[0] = "mutated"
	user.Profile.Preferences["theme"] = "mutated"

	got, ok := s.GetUser("u1")
	require.True(t, ok)
	assert.Equal(t, "laptop", got.Profile.PurchaseHistory[0])
	assert.Equal(t, "dark", got.Profile.Preferences["theme"])

	got.Profile.Activity[0] = "mutated"
	again, _ := s.GetUser("u1")
	assert.Equal(t, "viewed:monitor", again.Profile.Activity[0])
}

func TestListUsers_OrderedById(t *testing.T) {
	s := NewUserStore()
	s.PutUser(newUser("user_2"))
	s.PutUser(newUser("user_1"))
	s.PutUser(newUser("user_3"))

	users := s.ListUsers()

	require.Len(t, users, 3)
	assert.Equal(t, "user_1", users[0].UserId)
	assert.Equal(t, "user_2", users[1].UserId)
	assert.Equal(t, "user_3", users[2].UserId)
}

func TestPutUser_Concurrent(t *testing.T) {
	s := NewUserStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.PutUser(newUser(fmt.Sprintf("u%d", i)))
			s.ListUsers()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.CountUsers())
}
