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
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestReport_LogsCollectedStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, log.InitWithWriter("INFO", &buf))
	defer func() { _ = log.Init("ERROR") }()

	reporter := NewStatsReporter(func() Stats {
		return Stats{Users: 2, ConsentEvents: 5, LoggedRequests: 7}
	})

	stats := reporter.Report()

	assert.Equal(t, Stats{Users: 2, ConsentEvents: 5, LoggedRequests: 7}, stats)
	assert.Contains(t, buf.String(), "Store statistics")
	assert.Contains(t, buf.String(), "loggedRequests=7")
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	reporter := NewStatsReporter(func() Stats { return Stats{} })

	err := reporter.Start("not a schedule")

	assert.Error(t, err)
	assert.False(t, reporter.IsRunning())
}

func TestStartStop(t *testing.T) {
	reporter := NewStatsReporter(func() Stats { return Stats{} })

	require.NoError(t, reporter.Start("@every 1h"))
	assert.True(t, reporter.IsRunning())

	reporter.Stop()
}
