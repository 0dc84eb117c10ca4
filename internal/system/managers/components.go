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
	consentService "github.com/wso2/consent-ai-debug-service/internal/consent/service"
	consentStore "github.com/wso2/consent-ai-debug-service/internal/consent/store"
	evaluationService "github.com/wso2/consent-ai-debug-service/internal/evaluation/service"
	generationService "github.com/wso2/consent-ai-debug-service/internal/generation/service"
	requestLogService "github.com/wso2/consent-ai-debug-service/internal/request_log/service"
	requestLogStore "github.com/wso2/consent-ai-debug-service/internal/request_log/store"
	"github.com/wso2/consent-ai-debug-service/internal/system/config"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/pagination"
	"github.com/wso2/consent-ai-debug-service/internal/system/schedulers"
	userService "github.com/wso2/consent-ai-debug-service/internal/user_data/service"
	userStore "github.com/wso2/consent-ai-debug-service/internal/user_data/store"
)

// Components holds the services of one process. Every store is created here and shared only
// through the services built on top of it.
type Components struct {
	Config     config.Config
	Users      userService.UserDataServiceInterface
	Consent    consentService.ConsentServiceInterface
	RequestLog requestLogService.RequestLogServiceInterface
	Generation generationService.GenerationServiceInterface
	Evaluation evaluationService.EvaluationServiceInterface
}

// NewComponents wires fresh in-memory stores into the services and seeds the demo users when enabled.
func NewComponents(cfg config.Config) *Components {

	users := userService.NewUserDataService(userStore.NewUserStore())
	consent := consentService.NewConsentService(consentStore.NewConsentStore())
	requestLog := requestLogService.NewRequestLogService(requestLogStore.NewRequestLogStore(),
		pagination.LimitBounds{
			Default: cfg.RequestLog.DefaultLimit,
			Max:     cfg.RequestLog.MaxLimit,
		})
	generation := generationService.NewGenerationService(users, consent, requestLog)
	evaluation := evaluationService.NewEvaluationService(requestLog, generation, consent)

	if cfg.Seed.Enabled {
		users.SeedSampleData()
	} else {
		log.GetLogger().Info("Sample data seeding is disabled.")
	}

	return &Components{
		Config:     cfg,
		Users:      users,
		Consent:    consent,
		RequestLog: requestLog,
		Generation: generation,
		Evaluation: evaluation,
	}
}

// Stats reports the current sizes of the stores.
func (c *Components) Stats() schedulers.Stats {
	return schedulers.Stats{
		Users:          c.Users.CountUsers(),
		ConsentEvents:  c.Consent.CountEvents(),
		LoggedRequests: c.RequestLog.Count(),
	}
}
