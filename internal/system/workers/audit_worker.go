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

package workers

import (
	"sync"

	"github.com/wso2/consent-ai-debug-service/internal/system/constants"
	"github.com/wso2/consent-ai-debug-service/internal/system/log"
)

var (
	auditQueue chan log.AuditEvent
	auditDone  chan struct{}
	auditMu    sync.RWMutex
)

// StartAuditWorker initializes the audit queue and starts the goroutine draining it.
// Calling it while a worker is running is a no-op.
func StartAuditWorker() {

	auditMu.Lock()
	defer auditMu.Unlock()
	if auditQueue != nil {
		return
	}

	queue := make(chan log.AuditEvent, constants.AuditQueueSize)
	done := make(chan struct{})
	auditQueue = queue
	auditDone = done

	go func() {
		defer close(done)
		for event := range queue {
			log.GetLogger().Audit(event)
		}
	}()
}

// StopAuditWorker closes the queue and waits until every queued event is written.
func StopAuditWorker() {

	auditMu.Lock()
	queue, done := auditQueue, auditDone
	auditQueue, auditDone = nil, nil
	auditMu.Unlock()

	if queue == nil {
		return
	}
	close(queue)
	<-done
}

// EnqueueAuditEvent hands an audit event to the worker without blocking.
// Without a running worker the event is written synchronously. Returns false if the queue is full.
func EnqueueAuditEvent(event log.AuditEvent) bool {

	auditMu.RLock()
	defer auditMu.RUnlock()

	if auditQueue == nil {
		log.GetLogger().Audit(event)
		return true
	}

	select {
	case auditQueue <- event:
		return true
	default:
		log.GetLogger().Error("Audit queue is full. Dropping audit event.",
			log.String("action", event.ActionID), log.String("target", event.TargetID))
		return false
	}
}
