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

package schedulers

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

// Stats is a point in time view of the in-memory stores.
type Stats struct {
	Users          int
	ConsentEvents  int
	LoggedRequests int
}

// StatsReporter periodically logs store sizes.
type StatsReporter struct {
	cron    *cron.Cron
	collect func() Stats
}

func NewStatsReporter(collect func() Stats) *StatsReporter {
	return &StatsReporter{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		collect: collect,
	}
}

// Start schedules the report with a cron spec such as "@every 5m" and starts the scheduler.
func (r *StatsReporter) Start(schedule string) error {

	if _, err := r.cron.AddFunc(schedule, func() { r.Report() }); err != nil {
		return fmt.Errorf("invalid stats schedule '%s': %w", schedule, err)
	}
	r.cron.Start()
	log.GetLogger().Info(fmt.Sprintf("Stats reporter scheduled with: %s", schedule))
	return nil
}

// Stop waits for a running report to finish.
func (r *StatsReporter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.GetLogger().Info("Stats reporter stopped")
}

func (r *StatsReporter) IsRunning() bool {
	return len(r.cron.Entries()) > 0
}

// Report collects and logs the current stats.
func (r *StatsReporter) Report() Stats {
	stats := r.collect()
	log.GetLogger().Info("Store statistics",
		log.Int("users", stats.Users),
		log.Int("consentEvents", stats.ConsentEvents),
		log.Int("loggedRequests", stats.LoggedRequests))
	return stats
}
