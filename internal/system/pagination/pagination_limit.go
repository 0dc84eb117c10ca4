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

package pagination

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wso2/consent-ai-debug-service/internal/system/errors"
)

// LimitBounds holds the default and the inclusive upper bound of a limit query parameter.
type LimitBounds struct {
	Default int
	Max     int
}

// ParseLimit reads the "limit" query parameter. A missing value yields the default,
// anything that is not an integer in [1, Max] is rejected.
func ParseLimit(r *http.Request, bounds LimitBounds) (int, error) {

	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return bounds.Default, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewBadRequestError(errors.INVALID_LIMIT,
			fmt.Sprintf("limit must be an integer, got '%s'.", raw))
	}
	if err := ValidateLimit(v, bounds); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateLimit checks that limit lies in [1, Max].
func ValidateLimit(limit int, bounds LimitBounds) error {
	if limit < 1 || limit > bounds.Max {
		return errors.NewBadRequestError(errors.INVALID_LIMIT,
			fmt.Sprintf("limit must be between 1 and %d, got %d.", bounds.Max, limit))
	}
	return nil
}
