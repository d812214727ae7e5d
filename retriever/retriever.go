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
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/filing-vault/fvdata/data"
	"github.com/filing-vault/fvdata/edgar"
	"github.com/filing-vault/fvdata/render"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Renderer converts a local HTML document into a paginated PDF
type Renderer interface {
	RenderPDF(htmlPath, pdfPath string, opts render.Options) error
}

// Retriever drives the per-company pipeline: resolve the ticker, fetch the
// filing history, select the latest annual filing, and download its primary
// document. The ticker map is provided by the caller and only read here.
type Retriever struct {
	Client    *edgar.Client
	TickerMap *edgar.TickerMap
	OutputDir string
}

// FetchFiling processes a single company up to (and including) the HTML
// download. Any stage failure is recorded on the result and processing of
// that company stops; the caller decides what to do with the rest of the
// batch.
func (retriever *Retriever) FetchFiling(ctx context.Context, company data.Company) *data.CompanyResult {
	result := &data.CompanyResult{Company: company}

	record, err := retriever.TickerMap.Resolve(company.Ticker)
	if err != nil {
		result.Err = err
		return result
	}
	result.CIK = record.CIK

	submissions, err := retriever.Client.FetchSubmissions(ctx, record.CIK)
	if err != nil {
		result.Err = err
		return result
	}
	result.CompanyName = submissions.Name

	filing, err := edgar.LatestAnnual(submissions.Filings)
	if err != nil {
		result.Err = fmt.Errorf("%w: CIK%s", err, edgar.PaddedCIK(record.CIK))
		return result
	}
	result.Filing = filing

	stem := edgar.FilenameStem(company.Ticker, filing)
	htmlPath := filepath.Join(retriever.OutputDir, stem+".html")

	url := retriever.Client.ArchiveURL(record.CIK, filing)
	if err := retriever.Client.DownloadDocument(ctx, url, htmlPath); err != nil {
		result.Err = err
		return result
	}
	result.HTMLPath = htmlPath

	log.Info().Str("Ticker", company.Ticker).Str("Form", filing.Form).
		Str("FilingDate", filing.FilingDate).Str("AccessionNumber", filing.AccessionNumber).
		Str("FileName", htmlPath).Msg("downloaded annual filing")

	return result
}

// Run processes the whole watch list sequentially: phase one downloads every
// company's latest annual filing, phase two renders PDFs for the successful
// downloads. A failure in either phase is logged against its company and the
// batch always continues.
func Run(ctx context.Context, retriever *Retriever, renderer Renderer, companies []data.Company) *data.RunSummary {
	summary := &data.RunSummary{
		RunID:     uuid.New(),
		StartTime: time.Now(),
	}

	runLogger := log.With().Str("RunID", summary.RunID.String()[:6]).Logger()

	for _, company := range companies {
		result := retriever.FetchFiling(ctx, company)
		if result.Failed() {
			runLogger.Error().Err(result.Err).Str("Ticker", company.Ticker).Msg("fetching annual filing failed")
		}
		summary.Results = append(summary.Results, result)
	}

	for _, result := range summary.Results {
		if result.Failed() {
			continue
		}

		pdfPath := strings.TrimSuffix(result.HTMLPath, ".html") + ".pdf"
		if err := renderer.RenderPDF(result.HTMLPath, pdfPath, render.Options{Offline: true}); err != nil {
			runLogger.Error().Err(err).Str("Ticker", result.Company.Ticker).
				Str("FileName", result.HTMLPath).Msg("rendering annual filing failed")
			result.Err = err
			continue
		}
		result.PDFPath = pdfPath
	}

	summary.EndTime = time.Now()

	runLogger.Info().Int("NumSucceeded", summary.NumSucceeded()).
		Int("NumFailed", summary.NumFailed()).
		Str("Status", string(summary.Status())).Msg("run finished")

	return summary
}
