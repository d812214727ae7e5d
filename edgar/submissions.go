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
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	Form10K        = "10-K"
	Form10KAmended = "10-K/A"
)

// Filing is one submission in an entity's filing history. All four attributes
// originate from the same position in the registry's parallel arrays; the
// struct is assembled once at the ingestion boundary so downstream code can
// never pair a document path from one filing with the date of another.
type Filing struct {
	Form            string
	FilingDate      string
	AccessionNumber string
	PrimaryDocument string
}

// Submissions holds an entity's filing history, most recent first, in the
// order delivered by the registry.
type Submissions struct {
	CIK     int64
	Name    string
	Filings []Filing
}

type submissionsPayload struct {
	Name    string `json:"name"`
	Filings struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

// recentFilings mirrors the registry's column-oriented layout: one array per
// attribute, same index = same filing.
type recentFilings struct {
	Form            []string `json:"form"`
	FilingDate      []string `json:"filingDate"`
	AccessionNumber []string `json:"accessionNumber"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// records converts the parallel arrays to row-oriented Filing records. The
// arrays should always align but a ragged payload yields empty strings rather
// than a panic.
func (recent *recentFilings) records() []Filing {
	at := func(column []string, idx int) string {
		if idx < len(column) {
			return column[idx]
		}
		return ""
	}

	filings := make([]Filing, 0, len(recent.Form))
	for i := range recent.Form {
		filings = append(filings, Filing{
			Form:            recent.Form[i],
			FilingDate:      at(recent.FilingDate, i),
			AccessionNumber: at(recent.AccessionNumber, i),
			PrimaryDocument: at(recent.PrimaryDocument, i),
		})
	}

	return filings
}

// FetchSubmissions retrieves the filing history for an entity
func (client *Client) FetchSubmissions(ctx context.Context, cik int64) (*Submissions, error) {
	url := fmt.Sprintf(client.SubmissionsURL, PaddedCIK(cik))

	var payload submissionsPayload
	if err := client.GetJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	submissions := &Submissions{
		CIK:     cik,
		Name:    payload.Name,
		Filings: payload.Filings.Recent.records(),
	}

	log.Debug().Int64("CIK", cik).Str("Name", submissions.Name).
		Int("NumFilings", len(submissions.Filings)).Msg("fetched filing history")

	return submissions, nil
}

// LatestAnnual selects the entity's most recent annual filing: the first
// 10-K scanning from the top of the history, or the first 10-K/A when no
// 10-K exists. The registry returns the history most-recent-first, so the
// first exact match is the latest filing of that form.
func LatestAnnual(filings []Filing) (Filing, error) {
	for _, form := range []string{Form10K, Form10KAmended} {
		for _, filing := range filings {
			if filing.Form == form {
				return filing, nil
			}
		}
	}

	return Filing{}, ErrNoAnnualFiling
}
