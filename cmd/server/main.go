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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wso2/consent-ai-debug-service/internal/system/config"
	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	tracectx "github.com/wso2/consent-ai-debug-service/internal/system/context"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
	"github.com/wso2/consent-ai-debug-service/internal/system/managers"
	"github.com/wso2/consent-ai-debug-service/internal/system/mcp"
	"github.com/wso2/consent-ai-debug-service/internal/system/schedulers"
	"github.com/wso2/consent-ai-debug-service/internal/system/security"
	"github.com/wso2/consent-ai-debug-service/internal/system/workers"
)

const shutdownTimeout = 10 * time.Second

var (
	homeFlag   string
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "consent-ai-debug-service",
		Short:         "Consent aware AI debugging and evaluation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVar(&homeFlag, "home", "", "Path to the service home directory")
	rootCmd.Flags().StringVar(&configFile, "config", constants.DefaultConfigFile,
		"Deployment config file, relative to the home directory")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	home, err := config.ResolveHome(homeFlag)
	if err != nil {
		return fmt.Errorf("failed to resolve service home: %w", err)
	}
	cfg, err := config.Bootstrap(home, configFile)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Log.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := log.GetLogger()

	workers.StartAuditWorker()
	defer workers.StopAuditWorker()

	components := managers.NewComponents(*cfg)

	statsReporter := schedulers.NewStatsReporter(components.Stats)
	if err := statsReporter.Start(cfg.Stats.Schedule); err != nil {
		return err
	}
	defer statsReporter.Stop()

	mux := http.NewServeMux()
	if err := managers.NewServiceManager(mux, components).RegisterServices(constants.ApiBasePath); err != nil {
		return fmt.Errorf("failed to register the services: %w", err)
	}
	// MCP tools share the stores of the REST API.
	mcp.Initialize(mux, components)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", serverAddr, err)
	}

	server := &http.Server{
		Handler:           security.EnableCORS(cfg.CORS.AllowedOrigins, tracectx.TraceMiddleware(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	logger.Info(fmt.Sprintf("Consent AI debug service started in: %s", serverAddr))

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve requests: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down consent AI debug service.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed.", log.Error(err))
		}
	}
	return nil
}
