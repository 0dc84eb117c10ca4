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

package mcp

import (
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	aiTools "github.com/wso2/consent-ai-debug-service/internal/system/mcp/tools/ai"
	consentTools "github.com/wso2/consent-ai-debug-service/internal/system/mcp/tools/consent"
	"github.com/wso2/consent-ai-debug-service/internal/system/managers"
)

const (
	serverName    = "consent-ai-debug-mcp"
	serverVersion = "1.0.0"
)

// server holds dependencies for MCP tool registration.
type server struct {
	components *managers.Components

	once sync.Once
	// cached MCP server instance
	mcp *mcpsdk.Server
}

func newServer(components *managers.Components) *server {
	return &server{
		components: components,
	}
}

// getMCPServer builds (once) and returns the MCP server with the consent and AI tools registered.
func (s *server) getMCPServer() *mcpsdk.Server {
	s.once.Do(func() {
		mcpServer := mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil)

		// consent_grant, consent_revoke, consent_state, consent_timeline
		consentTools.NewTools(s.components.Consent).RegisterTools(mcpServer)
		// ai_run, ai_what_if, logs_list
		aiTools.NewTools(s.components.Generation, s.components.Evaluation, s.components.RequestLog).
			RegisterTools(mcpServer)

		s.mcp = mcpServer
	})
	return s.mcp
}
