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
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/filing-vault/fvdata/backblaze"
	"github.com/filing-vault/fvdata/data"
	"github.com/filing-vault/fvdata/edgar"
	"github.com/filing-vault/fvdata/healthcheck"
	"github.com/filing-vault/fvdata/render"
	"github.com/filing-vault/fvdata/retriever"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [ticker...]",
	Short: "Download and render the latest annual filing for each watched company",
	Long: `The fetch sub-command runs the batch. For every company on the watch list
it resolves the ticker to a CIK, selects the most recent 10-K (or 10-K/A) from
the EDGAR filing history, downloads the primary filing document, and renders
it to a paginated PDF.

If ticker arguments are provided only those companies are processed. Failures
are isolated per company: a ticker that cannot be resolved or a document that
fails to render is logged and the batch moves on. The exit status is always 0;
inspect the run report for per-company outcomes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		client, err := edgar.NewClient(viper.GetString("sec.user_agent"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create EDGAR client")
		}

		companies, err := data.LoadCompanies(viper.GetString("companies.file"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not load watch list")
		}

		if len(args) > 0 {
			companies = filterCompanies(companies, args)
		}

		healthcheck.PingStart()

		tickerMap, err := client.FetchTickerMap(ctx)
		if err != nil {
			healthcheck.PingFailure()
			log.Fatal().Err(err).Msg("could not load SEC company table")
		}

		browser, err := render.Start(viper.GetBool("playwright.headless"))
		if err != nil {
			healthcheck.PingFailure()
			log.Fatal().Err(err).Msg("could not start render browser")
		}

		myRetriever := &retriever.Retriever{
			Client:    client,
			TickerMap: tickerMap,
			OutputDir: viper.GetString("output.dir"),
		}

		summary := retriever.Run(ctx, myRetriever, browser, companies)
		browser.Stop()

		if manifestFN := viper.GetString("manifest.file"); manifestFN != "" {
			if err := data.SaveManifest(summary.ManifestRows(), manifestFN); err != nil {
				log.Error().Err(err).Str("FileName", manifestFN).Msg("failed writing run manifest")
			}
		}

		if viper.GetString("backblaze.application_id") != "" {
			bucketName := viper.GetString("backblaze.bucket")
			for _, result := range summary.Results {
				if result.Failed() {
					continue
				}
				if err := backblaze.UploadResult(result, bucketName); err != nil {
					log.Error().Err(err).Str("Ticker", result.Company.Ticker).Msg("failed uploading artifacts to Backblaze")
				}
			}
		} else {
			log.Debug().Msg("skipping upload to backblaze because backblaze credentials are missing")
		}

		if summary.Status() == data.RunFailed {
			healthcheck.PingFailure()
		} else {
			healthcheck.PingSuccess()
		}

		report := retriever.Markdown(summary)

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		if out, err := r.Render(report); err != nil {
			fmt.Print(report)
		} else {
			fmt.Print(out)
		}
	},
}

// filterCompanies restricts the watch list to the requested tickers; a
// requested ticker missing from the list is still processed, it just has no
// display name
func filterCompanies(companies []data.Company, tickers []string) []data.Company {
	byTicker := make(map[string]data.Company, len(companies))
	for _, company := range companies {
		byTicker[company.Ticker] = company
	}

	selected := make([]data.Company, 0, len(tickers))
	for _, ticker := range tickers {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		if company, ok := byTicker[ticker]; ok {
			selected = append(selected, company)
		} else {
			selected = append(selected, data.Company{Ticker: ticker})
		}
	}

	return selected
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("companies", "", "companies file (.toml or .csv) listing tickers to process")
	if err := viper.BindPFlag("companies.file", fetchCmd.Flags().Lookup("companies")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for companies failed")
	}

	fetchCmd.Flags().String("manifest", "", "write a parquet manifest of retrieved filings to this file")
	if err := viper.BindPFlag("manifest.file", fetchCmd.Flags().Lookup("manifest")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for manifest failed")
	}

	fetchCmd.Flags().String("output-dir", "", "directory for HTML and PDF artifacts (default is the working directory)")
	if err := viper.BindPFlag("output.dir", fetchCmd.Flags().Lookup("output-dir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for output-dir failed")
	}
}
