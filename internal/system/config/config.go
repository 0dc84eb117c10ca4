/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
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

package config

import (
	"fmt"

	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
)

type AddrConfig struct {
	Port int    `yaml:"port" env:"PORT"`
	Host string `yaml:"host" env:"HOST"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" env:"CAD_LOG_LEVEL"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CAD_CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type RequestLogConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"CAD_REQUEST_LOG_DEFAULT_LIMIT"`
	MaxLimit     int `yaml:"max_limit" env:"CAD_REQUEST_LOG_MAX_LIMIT"`
}

type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"CAD_SEED_ENABLED"`
}

type StatsConfig struct {
	Schedule string `yaml:"schedule" env:"CAD_STATS_SCHEDULE"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr" envPrefix:"CAD_"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RequestLog RequestLogConfig `yaml:"request_log"`
	Seed       SeedConfig       `yaml:"seed"`
	Stats      StatsConfig      `yaml:"stats"`
}

// DefaultConfig returns the values used for every key the deployment file leaves out.
func DefaultConfig() Config {
	return Config{
		Addr: AddrConfig{Host: "0.0.0.0", Port: 8900},
		Log:  LogConfig{LogLevel: "INFO"},
		CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"}},
		RequestLog: RequestLogConfig{
			DefaultLimit: constants.DefaultLogLimit,
			MaxLimit:     constants.MaxLogLimit,
		},
		Seed:  SeedConfig{Enabled: true},
		Stats: StatsConfig{Schedule: constants.DefaultStatsSchedule},
	}
}

// Validate rejects values the service cannot run with.
func (c Config) Validate() error {
	limits := c.RequestLog
	if limits.MaxLimit < 1 || limits.MaxLimit > constants.MaxLogLimit {
		return fmt.Errorf("request_log.max_limit must be between 1 and %d, got %d",
			constants.MaxLogLimit, limits.MaxLimit)
	}
	if limits.DefaultLimit < 1 || limits.DefaultLimit > limits.MaxLimit {
		return fmt.Errorf("request_log.default_limit must be between 1 and request_log.max_limit (%d), got %d",
			limits.MaxLimit, limits.DefaultLimit)
	}
	return nil
}
