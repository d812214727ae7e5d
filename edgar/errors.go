// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package edgar

import (
	"errors"
	"fmt"
)

var (
	// ErrTickerNotFound indicates the ticker is absent from the SEC company table
	ErrTickerNotFound = errors.New("ticker not found in company table")

	// ErrNoAnnualFiling indicates an entity has neither a 10-K nor a 10-K/A on record
	ErrNoAnnualFiling = errors.New("no 10-K or 10-K/A filing found")

	// ErrBlocked indicates the registry served its automated-tool interstitial
	// instead of the requested document
	ErrBlocked = errors.New("registry returned the automated tool block page")

	// ErrUserAgent indicates the required contact user-agent is not configured
	ErrUserAgent = errors.New("sec.user_agent must be set to a contact-style user-agent string")
)

// FetchError reports a failed HTTP retrieval with enough context to retry by hand
type FetchError struct {
	URL        string
	StatusCode int
}

func (err *FetchError) Error() string {
	return fmt.Sprintf("fetch %s returned status %d", err.URL, err.StatusCode)
}
