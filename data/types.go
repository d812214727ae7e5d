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
package data

import (
	"time"

	"github.com/filing-vault/fvdata/edgar"
	"github.com/google/uuid"
)

type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunPartial RunStatus = "partial"
	RunFailed  RunStatus = "failed"
)

// Company is one entry of the operator's watch list
type Company struct {
	Ticker string `csv:"ticker" toml:"ticker" json:"ticker"`
	Name   string `csv:"name" toml:"name" json:"name"`
}

// CompanyResult records the outcome of processing a single company. A result
// either carries the selected filing and artifact paths or the error that
// stopped the pipeline for that company; failures never touch other
// companies.
type CompanyResult struct {
	Company     Company
	CIK         int64
	CompanyName string
	Filing      edgar.Filing
	HTMLPath    string
	PDFPath     string
	Err         error
}

func (result *CompanyResult) Failed() bool {
	return result.Err != nil
}

// RunSummary aggregates the outcome of one batch run
type RunSummary struct {
	RunID     uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Results   []*CompanyResult
}

func (summary *RunSummary) NumSucceeded() int {
	count := 0
	for _, result := range summary.Results {
		if !result.Failed() {
			count++
		}
	}
	return count
}

func (summary *RunSummary) NumFailed() int {
	return len(summary.Results) - summary.NumSucceeded()
}

// Status reduces the per-company outcomes to a single run status
func (summary *RunSummary) Status() RunStatus {
	switch {
	case len(summary.Results) == 0 || summary.NumFailed() == 0:
		return RunSuccess
	case summary.NumSucceeded() == 0:
		return RunFailed
	default:
		return RunPartial
	}
}
