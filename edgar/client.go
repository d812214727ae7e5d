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
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	TICKER_TABLE_URL  string = "https://www.sec.gov/files/company_tickers.json"
	SUBMISSIONS_URL   string = "https://data.sec.gov/submissions/CIK%s.json"
	ARCHIVES_BASE_URL string = "https://www.sec.gov/Archives/edgar/data"

	// SEC fair-access policy allows at most 10 requests per second, see
	// https://www.sec.gov/os/webmaster-faq#developers
	REQUESTS_PER_SECOND = 10
)

// page served in place of the real document when the SEC decides the client
// is an undeclared automated tool
const blockPageMarker = "Your Request Originates from an Undeclared Automated Tool"

// Client retrieves JSON metadata and filing documents from EDGAR. All requests
// carry the operator's contact user-agent and pass through a shared rate
// limiter so a batch never exceeds the SEC access rate.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter

	// endpoints default to the public SEC hosts; they are fields so a client
	// can be pointed at a mirror
	TickerTableURL  string
	SubmissionsURL  string
	ArchivesBaseURL string
}

// NewClient builds an EDGAR client. userAgent must identify the operator with
// contact information (e.g. "fvdata/1.0 (jane@example.com)"); the SEC rejects
// anonymous automated traffic.
func NewClient(userAgent string) (*Client, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, ErrUserAgent
	}

	if !strings.Contains(userAgent, "@") {
		log.Warn().Str("UserAgent", userAgent).Msg("user-agent does not appear to contain a contact address")
	}

	limiter := rate.NewLimiter(rate.Limit(REQUESTS_PER_SECOND), REQUESTS_PER_SECOND)

	httpClient := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(4).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(30 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= 500
		})

	httpClient.JSONMarshal = json.Marshal
	httpClient.JSONUnmarshal = json.Unmarshal

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	return &Client{
		http:    httpClient,
		limiter: limiter,

		TickerTableURL:  TICKER_TABLE_URL,
		SubmissionsURL:  SUBMISSIONS_URL,
		ArchivesBaseURL: ARCHIVES_BASE_URL,
	}, nil
}

// GetJSON retrieves url and unmarshals the response body into value
func (client *Client) GetJSON(ctx context.Context, url string, value any) error {
	resp, err := client.http.R().
		SetContext(ctx).
		SetResult(value).
		Get(url)

	if err != nil {
		log.Error().Err(err).Str("Url", url).Msg("get json failed")
		return err
	}

	if resp.StatusCode() >= 400 {
		log.Error().Int("StatusCode", resp.StatusCode()).Str("Url", url).Msg("get json returned error status code")
		return &FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	return nil
}

// DownloadDocument retrieves a filing document and writes it to outPath. The
// body is checked for the SEC's automated-tool interstitial so a block page is
// never mistaken for a filing.
func (client *Client) DownloadDocument(ctx context.Context, url, outPath string) error {
	resp, err := client.http.R().SetContext(ctx).Get(url)
	if err != nil {
		log.Error().Err(err).Str("Url", url).Msg("download document failed")
		return err
	}

	if resp.StatusCode() >= 400 {
		log.Error().Int("StatusCode", resp.StatusCode()).Str("Url", url).Msg("download document returned error status code")
		return &FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	if bytes.Contains(resp.Body(), []byte(blockPageMarker)) {
		log.Error().Str("Url", url).Msg("SEC served the automated tool block page")
		return ErrBlocked
	}

	if err := os.WriteFile(outPath, resp.Body(), 0644); err != nil {
		log.Error().Err(err).Str("FileName", outPath).Msg("could not save document")
		return err
	}

	log.Debug().Str("Url", url).Str("FileName", outPath).
		Str("ContentType", resp.Header().Get("Content-Type")).
		Int("Size", len(resp.Body())).Msg("saved document")

	return nil
}
