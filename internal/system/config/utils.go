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
	"os"
	"path"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment file under home, expands environment references in it and
// finally applies CAD_* environment overrides on top of it. The result is validated.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnvFiles loads every config/*.env file under home into the process environment.
// Variables that are already set are left untouched. It returns the files it loaded.
func LoadEnvFiles(home string) ([]string, error) {
	envFiles, err := filepath.Glob(filepath.Join(home, "config", "*.env"))
	if err != nil || len(envFiles) == 0 {
		return nil, err
	}
	return envFiles, godotenv.Load(envFiles...)
}

// ResolveHome returns homeFlag when set, then CAD_HOME, then the working directory.
func ResolveHome(homeFlag string) (string, error) {
	if homeFlag != "" {
		return homeFlag, nil
	}
	if envHome := os.Getenv("CAD_HOME"); envHome != "" {
		return envHome, nil
	}
	return os.Getwd()
}

// Bootstrap loads the env files and the deployment file under home and initializes the runtime.
func Bootstrap(home, configFile string) (*Config, error) {
	if _, err := LoadEnvFiles(home); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	cfg, err := LoadConfig(home, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := InitializeRuntime(home, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize runtime: %w", err)
	}
	return cfg, nil
}

// OverrideRuntime replaces the runtime configuration. Used by tests.
func OverrideRuntime(conf Config) {
	runtimeConfig = &Runtime{
		Config: conf,
	}
}
