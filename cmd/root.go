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
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fvdata",
	Short: "fvdata retrieves annual regulatory filings from SEC EDGAR and renders them to PDF",
	Long: `fvdata is a command line utility for building an offline archive of
annual regulatory filings. For each company on the watch list it resolves the
ticker symbol against the SEC's company table, selects the most recent 10-K
(falling back to 10-K/A) from the EDGAR filing history, downloads the primary
filing document, and renders it to a paginated PDF with all network access
disabled during rendering.

The SEC requires automated clients to identify themselves with a contact-style
user-agent string; set sec.user_agent in the config file or pass --user-agent
before running a fetch.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fvdata.toml)")
	rootCmd.PersistentFlags().String("user-agent", "", "contact-style user-agent sent with every SEC request")
	if err := viper.BindPFlag("sec.user_agent", rootCmd.PersistentFlags().Lookup("user-agent")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for user-agent failed")
	}

	viper.SetDefault("playwright.headless", true)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".fvdata" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".fvdata")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
