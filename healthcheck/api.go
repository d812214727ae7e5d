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
package healthcheck

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// PingStart signals healthchecks.io that a batch run began
func PingStart() {
	ping("/start")
}

// PingSuccess signals a completed batch run
func PingSuccess() {
	ping("")
}

// PingFailure signals a batch run that produced no filings at all
func PingFailure() {
	ping("/fail")
}

// ping hits the configured healthchecks.io ping url with the given suffix.
// Monitoring is optional: an unset url is a no-op, and a failed ping is
// logged but never affects the run.
func ping(suffix string) {
	pingURL := viper.GetString("healthcheck.ping_url")
	if pingURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().Get(pingURL + suffix)

	if err != nil {
		log.Error().Err(err).Str("Url", pingURL+suffix).Msg("healthcheck ping failed")
		return
	}

	if resp.StatusCode() != 200 {
		err := fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
		log.Error().Err(err).Str("Url", pingURL+suffix).Msg("healthcheck ping failed")
	}
}
