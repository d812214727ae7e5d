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
	"errors"
	"fmt"
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// CompanyRecord is one row of the SEC company table
type CompanyRecord struct {
	CIK    int64
	Ticker string
	Title  string
}

// TickerMap resolves ticker symbols to SEC company records. It is loaded once
// per run from the company table snapshot and read-only afterwards; callers
// receive it as an explicit value rather than a package-level cache.
type TickerMap struct {
	companies *haxmap.Map[string, CompanyRecord]
}

// FetchTickerMap downloads the SEC company table and indexes it by ticker.
// The table is a JSON object keyed by row number, each row carrying cik_str,
// ticker and title.
func (client *Client) FetchTickerMap(ctx context.Context) (*TickerMap, error) {
	resp, err := client.http.R().SetContext(ctx).Get(client.TickerTableURL)
	if err != nil {
		log.Error().Err(err).Str("Url", client.TickerTableURL).Msg("fetching company table failed")
		return nil, err
	}

	if resp.StatusCode() >= 400 {
		log.Error().Int("StatusCode", resp.StatusCode()).Str("Url", client.TickerTableURL).Msg("fetching company table returned error status code")
		return nil, &FetchError{URL: client.TickerTableURL, StatusCode: resp.StatusCode()}
	}

	tickerMap := &TickerMap{
		companies: haxmap.New[string, CompanyRecord](),
	}

	gjson.ParseBytes(resp.Body()).ForEach(func(_, row gjson.Result) bool {
		ticker := strings.ToUpper(row.Get("ticker").String())
		if ticker == "" {
			return true
		}

		tickerMap.companies.Set(ticker, CompanyRecord{
			CIK:    row.Get("cik_str").Int(),
			Ticker: ticker,
			Title:  row.Get("title").String(),
		})

		return true
	})

	if tickerMap.Len() == 0 {
		log.Error().Str("Url", TICKER_TABLE_URL).Msg("company table is empty")
		return nil, errors.New("company table is empty")
	}

	log.Info().Int("NumCompanies", tickerMap.Len()).Msg("loaded SEC company table")
	return tickerMap, nil
}

// Resolve looks up the company record for a ticker symbol (case-insensitive)
func (tickerMap *TickerMap) Resolve(ticker string) (CompanyRecord, error) {
	record, ok := tickerMap.companies.Get(strings.ToUpper(strings.TrimSpace(ticker)))
	if !ok {
		return CompanyRecord{}, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}

	return record, nil
}

func (tickerMap *TickerMap) Len() int {
	return int(tickerMap.companies.Len())
}
