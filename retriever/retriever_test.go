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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/filing-vault/fvdata/data"
	"github.com/filing-vault/fvdata/edgar"
	"github.com/filing-vault/fvdata/render"
	"github.com/filing-vault/fvdata/retriever"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeRenderer stands in for the headless browser; it records every render
// request and can be told to fail for specific documents
type fakeRenderer struct {
	calls   []renderCall
	failFor map[string]error
}

type renderCall struct {
	htmlPath string
	pdfPath  string
	opts     render.Options
}

func (renderer *fakeRenderer) RenderPDF(htmlPath, pdfPath string, opts render.Options) error {
	renderer.calls = append(renderer.calls, renderCall{htmlPath: htmlPath, pdfPath: pdfPath, opts: opts})
	if err, ok := renderer.failFor[htmlPath]; ok {
		return err
	}
	return nil
}

func newEdgarTestServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
			"1": {"cik_str": 1111, "ticker": "SHEL", "title": "Shell Corp"}
		}`))
	})

	mux.HandleFunc("/submissions/CIK0000320193.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Apple Inc.",
			"filings": {
				"recent": {
					"form": ["8-K", "10-K"],
					"filingDate": ["2025-11-03", "2025-10-31"],
					"accessionNumber": ["0000320193-25-000100", "0000320193-25-000079"],
					"primaryDocument": ["pr.htm", "aapl-20250927.htm"]
				}
			}
		}`))
	})

	// an entity that has never filed an annual report
	mux.HandleFunc("/submissions/CIK0000001111.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Shell Corp",
			"filings": {
				"recent": {
					"form": ["8-K"],
					"filingDate": ["2025-01-15"],
					"accessionNumber": ["0000001111-25-000001"],
					"primaryDocument": ["pr.htm"]
				}
			}
		}`))
	})

	mux.HandleFunc("/Archives/edgar/data/320193/000032019325000079/aapl-20250927.htm", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Apple 10-K</body></html>"))
	})

	return httptest.NewServer(mux)
}

var _ = Describe("Run", func() {
	var (
		server      *httptest.Server
		myRetriever *retriever.Retriever
		renderer    *fakeRenderer
		outDir      string
	)

	BeforeEach(func() {
		server = newEdgarTestServer()
		outDir = GinkgoT().TempDir()

		client, err := edgar.NewClient("fvdata test (test@example.com)")
		Expect(err).ToNot(HaveOccurred())
		client.TickerTableURL = server.URL + "/files/company_tickers.json"
		client.SubmissionsURL = server.URL + "/submissions/CIK%s.json"
		client.ArchivesBaseURL = server.URL + "/Archives/edgar/data"

		tickerMap, err := client.FetchTickerMap(context.Background())
		Expect(err).ToNot(HaveOccurred())

		myRetriever = &retriever.Retriever{
			Client:    client,
			TickerMap: tickerMap,
			OutputDir: outDir,
		}

		renderer = &fakeRenderer{failFor: map[string]error{}}
	})

	AfterEach(func() {
		server.Close()
	})

	It("downloads and renders the latest annual filing", func() {
		companies := []data.Company{{Ticker: "AAPL", Name: "Apple"}}

		summary := retriever.Run(context.Background(), myRetriever, renderer, companies)
		Expect(summary.Results).To(HaveLen(1))
		Expect(summary.Status()).To(Equal(data.RunSuccess))

		result := summary.Results[0]
		Expect(result.Failed()).To(BeFalse())
		Expect(result.CIK).To(Equal(int64(320193)))
		Expect(result.CompanyName).To(Equal("Apple Inc."))
		Expect(result.Filing.Form).To(Equal("10-K"))
		Expect(result.HTMLPath).To(HaveSuffix("AAPL_10-K_2025-10-31_000032019325000079.html"))
		Expect(result.PDFPath).To(HaveSuffix("AAPL_10-K_2025-10-31_000032019325000079.pdf"))

		saved, err := os.ReadFile(result.HTMLPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(saved)).To(ContainSubstring("Apple 10-K"))
	})

	It("renders with network access disabled", func() {
		companies := []data.Company{{Ticker: "AAPL"}}

		retriever.Run(context.Background(), myRetriever, renderer, companies)
		Expect(renderer.calls).To(HaveLen(1))
		Expect(renderer.calls[0].opts.Offline).To(BeTrue())
	})

	It("isolates a failing company from the rest of the batch", func() {
		companies := []data.Company{
			{Ticker: "ZZZT"},
			{Ticker: "AAPL"},
		}

		summary := retriever.Run(context.Background(), myRetriever, renderer, companies)
		Expect(summary.Results).To(HaveLen(2))
		Expect(summary.Status()).To(Equal(data.RunPartial))

		Expect(summary.Results[0].Failed()).To(BeTrue())
		Expect(summary.Results[0].Err).To(MatchError(edgar.ErrTickerNotFound))
		Expect(summary.Results[0].HTMLPath).To(BeEmpty())

		Expect(summary.Results[1].Failed()).To(BeFalse())
		Expect(summary.Results[1].PDFPath).ToNot(BeEmpty())

		// nothing is rendered for the failed company
		Expect(renderer.calls).To(HaveLen(1))
	})

	It("records a missing annual filing as that company's failure", func() {
		companies := []data.Company{{Ticker: "SHEL"}}

		summary := retriever.Run(context.Background(), myRetriever, renderer, companies)
		Expect(summary.Status()).To(Equal(data.RunFailed))
		Expect(summary.Results[0].Err).To(MatchError(edgar.ErrNoAnnualFiling))
		Expect(renderer.calls).To(BeEmpty())
	})

	It("marks the result failed when rendering fails", func() {
		companies := []data.Company{{Ticker: "AAPL"}}

		// first pass to learn the html path, second pass with the failure armed
		summary := retriever.Run(context.Background(), myRetriever, renderer, companies)
		htmlPath := summary.Results[0].HTMLPath
		Expect(htmlPath).ToNot(BeEmpty())

		renderer.failFor[htmlPath] = errors.New("browser crashed")
		summary = retriever.Run(context.Background(), myRetriever, renderer, companies)

		Expect(summary.Results[0].Failed()).To(BeTrue())
		Expect(summary.Results[0].PDFPath).To(BeEmpty())
		Expect(summary.Status()).To(Equal(data.RunFailed))
	})
})
