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
	"os"

	"github.com/filing-vault/fvdata/edgar"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <ticker>...",
	Short: "Resolve ticker symbols to SEC CIK numbers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		client, err := edgar.NewClient(viper.GetString("sec.user_agent"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create EDGAR client")
		}

		tickerMap, err := client.FetchTickerMap(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load SEC company table")
		}

		p := message.NewPrinter(language.English)
		failed := false

		for _, ticker := range args {
			record, err := tickerMap.Resolve(ticker)
			if err != nil {
				log.Error().Err(err).Str("Ticker", ticker).Msg("could not resolve ticker")
				failed = true
				continue
			}

			p.Printf("%-8s CIK %s  %s\n", record.Ticker, edgar.PaddedCIK(record.CIK), record.Title)
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
