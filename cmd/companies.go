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
	"fmt"

	"github.com/filing-vault/fvdata/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// companiesCmd represents the companies command
var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the companies on the watch list",
	Run: func(cmd *cobra.Command, args []string) {
		companies, err := data.LoadCompanies(viper.GetString("companies.file"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not load watch list")
		}

		for _, company := range companies {
			fmt.Printf("%-8s %s\n", company.Ticker, company.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)

	companiesCmd.Flags().String("companies", "", "companies file (.toml or .csv) listing tickers to process")
	if err := viper.BindPFlag("companies.file", companiesCmd.Flags().Lookup("companies")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for companies failed")
	}
}
