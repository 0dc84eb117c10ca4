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
	"errors"
	"fmt"

	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

// ReadinessCheck is a named probe run on every readiness request.
type ReadinessCheck struct {
	Name  string
	Check func() error
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	checks []ReadinessCheck
}

func NewHealthCheckService(checks ...ReadinessCheck) *HealthCheckService {
	return &HealthCheckService{checks: checks}
}

func (h *HealthCheckService) CheckReadiness() error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	for _, check := range h.checks {
		if err := check.Check(); err != nil {
			return fmt.Errorf("%s check failed: %w", check.Name, err)
		}
	}
	return nil
}
