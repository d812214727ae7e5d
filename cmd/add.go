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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/filing-vault/fvdata/data"
	"github.com/filing-vault/fvdata/edgar"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var summaryBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(1, 2)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a company to the watch list",
	Long: `The add sub-command walks through a short wizard to add a company to the
watch list file. The ticker is verified against the SEC company table before
it is saved, so typos are caught immediately rather than at fetch time.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		companiesFN := viper.GetString("companies.file")
		if companiesFN == "" {
			log.Fatal().Msg("companies.file must be set to add companies; the built-in default list is read-only")
		}

		var (
			ticker  string
			name    string
			confirm bool
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Ticker symbol").
					Description("Exchange ticker as listed on EDGAR, e.g. AAPL").
					Value(&ticker).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return errors.New("ticker is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Display name").
					Description("Shown in reports; leave blank to use the EDGAR company name").
					Value(&name),
				huh.NewConfirm().
					Title("Save to watch list?").
					Value(&confirm),
			),
		)

		if err := form.Run(); err != nil {
			log.Fatal().Err(err).Msg("wizard aborted")
		}

		if !confirm {
			fmt.Println("not saved")
			return
		}

		ticker = strings.ToUpper(strings.TrimSpace(ticker))

		client, err := edgar.NewClient(viper.GetString("sec.user_agent"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create EDGAR client")
		}

		tickerMap, err := client.FetchTickerMap(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load SEC company table")
		}

		record, err := tickerMap.Resolve(ticker)
		if err != nil {
			log.Fatal().Err(err).Str("Ticker", ticker).Msg("ticker is not listed on EDGAR")
		}

		if name == "" {
			name = record.Title
		}

		var companies []data.Company
		if _, statErr := os.Stat(companiesFN); statErr == nil {
			companies, err = data.LoadCompanies(companiesFN)
			if err != nil {
				log.Fatal().Err(err).Msg("could not load watch list")
			}
		}

		for _, company := range companies {
			if company.Ticker == ticker {
				log.Fatal().Str("Ticker", ticker).Msg("company is already on the watch list")
			}
		}

		companies = append(companies, data.Company{Ticker: ticker, Name: name})
		if err := data.SaveCompanies(companiesFN, companies); err != nil {
			log.Fatal().Err(err).Str("FileName", companiesFN).Msg("could not save watch list")
		}

		summary := fmt.Sprintf("Added %s\n\nTicker: %s\nCIK:    %d\nFile:   %s",
			name, ticker, record.CIK, companiesFN)
		fmt.Println(summaryBoxStyle.Render(summary))
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("companies", "", "companies file (.toml) to append to")
	if err := viper.BindPFlag("companies.file", addCmd.Flags().Lookup("companies")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for companies failed")
	}
}
