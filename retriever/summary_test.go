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
package retriever_test

import (
	"errors"
	"time"

	"github.com/filing-vault/fvdata/data"
	"github.com/filing-vault/fvdata/edgar"
	"github.com/filing-vault/fvdata/retriever"
	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Markdown", func() {
	It("describes a mixed run", func() {
		start := time.Now().Add(-90 * time.Second)
		summary := &data.RunSummary{
			RunID:     uuid.New(),
			StartTime: start,
			EndTime:   start.Add(85 * time.Second),
			Results: []*data.CompanyResult{
				{
					Company:     data.Company{Ticker: "AAPL", Name: "Apple"},
					CompanyName: "Apple Inc.",
					Filing: edgar.Filing{
						Form:       "10-K",
						FilingDate: "2025-10-31",
					},
					PDFPath: "AAPL_10-K_2025-10-31_000032019325000079.pdf",
				},
				{
					Company: data.Company{Ticker: "ZZZT"},
					Err:     errors.New("ticker not found in company table: ZZZT"),
				},
			},
		}

		report := retriever.Markdown(summary)

		Expect(report).To(ContainSubstring("# Annual Filing Run"))
		Expect(report).To(ContainSubstring("Companies Processed: 2"))
		Expect(report).To(ContainSubstring("Filings Retrieved: 1"))
		Expect(report).To(ContainSubstring("Failures: 1"))
		Expect(report).To(ContainSubstring("Status: partial"))
		Expect(report).To(ContainSubstring("AAPL 10-K filed 2025-10-31"))
		Expect(report).To(ContainSubstring("ZZZT: ticker not found"))
	})

	It("omits the failure section for a clean run", func() {
		summary := &data.RunSummary{
			RunID: uuid.New(),
			Results: []*data.CompanyResult{
				{
					Company: data.Company{Ticker: "AAPL"},
					Filing:  edgar.Filing{Form: "10-K", FilingDate: "2025-10-31"},
					PDFPath: "AAPL.pdf",
				},
			},
		}

		report := retriever.Markdown(summary)
		Expect(report).ToNot(ContainSubstring("## Failures"))
	})
})
