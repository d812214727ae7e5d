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
package retriever

import (
	"fmt"
	"strings"
	"time"

	"github.com/filing-vault/fvdata/data"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Markdown returns a description of the run in markdown
func Markdown(summary *data.RunSummary) string {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString(fmt.Sprintf("# Annual Filing Run [%s]\n\n", summary.RunID.String()[:6]))
	builder.WriteString("## Details\n\n")

	builder.WriteString(p.Sprintf("  * Companies Processed: %d\n", len(summary.Results)))
	builder.WriteString(p.Sprintf("  * Filings Retrieved: %d\n", summary.NumSucceeded()))
	builder.WriteString(p.Sprintf("  * Failures: %d\n", summary.NumFailed()))
	builder.WriteString(fmt.Sprintf("  * Status: %s\n", summary.Status()))
	builder.WriteString(fmt.Sprintf("  * Run Time: %s\n\n", summary.EndTime.Sub(summary.StartTime).Round(time.Millisecond)))

	if summary.NumSucceeded() > 0 {
		builder.WriteString("## Retrieved Filings\n\n")

		for _, result := range summary.Results {
			if result.Failed() {
				continue
			}

			age := ""
			if filed, err := time.Parse("2006-01-02", result.Filing.FilingDate); err == nil {
				age = fmt.Sprintf(", %s", timeago.English.Format(filed))
			}

			builder.WriteString(fmt.Sprintf("  * %s %s filed %s%s -> %s\n",
				result.Company.Ticker, result.Filing.Form, result.Filing.FilingDate,
				age, result.PDFPath))
		}

		builder.WriteString("\n")
	}

	if summary.NumFailed() > 0 {
		builder.WriteString("## Failures\n\n")

		for _, result := range summary.Results {
			if !result.Failed() {
				continue
			}

			builder.WriteString(fmt.Sprintf("  * %s: %s\n", result.Company.Ticker, result.Err))
		}
	}

	return builder.String()
}
