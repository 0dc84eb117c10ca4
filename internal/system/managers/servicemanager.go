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

package managers

import (
	"errors"
	"net/http"

	consentHandler "github.com/wso2/consent-ai-debug-service/internal/consent/handler"
	evaluationHandler "github.com/wso2/consent-ai-debug-service/internal/evaluation/handler"
	generationHandler "github.com/wso2/consent-ai-debug-service/internal/generation/handler"
	healthHandler "github.com/wso2/consent-ai-debug-service/internal/health_check/handler"
	healthService "github.com/wso2/consent-ai-debug-service/internal/health_check/service"
	requestLogHandler "github.com/wso2/consent-ai-debug-service/internal/request_log/handler"
	"github.com/wso2/consent-ai-debug-service/internal/system/services"
	userHandler "github.com/wso2/consent-ai-debug-service/internal/user_data/handler"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux        *http.ServeMux
	components *Components
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, components *Components) ServiceManagerInterface {

	return &ServiceManager{
		mux:        mux,
		components: components,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	c := sm.components
	if c == nil {
		return errors.New("service components are not initialized")
	}

	services.NewConsentService(sm.mux, apiBasePath, consentHandler.NewConsentHandler(c.Consent))
	services.NewUserDataService(sm.mux, apiBasePath, userHandler.NewUserDataHandler(c.Users))
	services.NewAIService(sm.mux, apiBasePath,
		generationHandler.NewGenerationHandler(c.Generation),
		evaluationHandler.NewEvaluationHandler(c.Evaluation),
		requestLogHandler.NewRequestLogHandler(c.RequestLog))
	services.NewRequestLogService(sm.mux, apiBasePath, requestLogHandler.NewRequestLogHandler(c.RequestLog))

	readiness := healthService.NewHealthCheckService(healthService.ReadinessCheck{
		Name: "user data",
		Check: func() error {
			if c.Config.Seed.Enabled && c.Users.CountUsers() == 0 {
				return errors.New("sample users are not provisioned")
			}
			return nil
		},
	})
	services.NewHealthService(sm.mux, apiBasePath, healthHandler.NewHealthHandler(readiness))
	return nil
}
