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
	"strings"

	"github.com/filing-vault/fvdata/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderAllowNetwork bool

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <document.html> [output.pdf]",
	Short: "Render a downloaded filing document to a paginated PDF",
	Long: `The render sub-command re-renders a single already-downloaded filing
document to PDF. By default all network requests made by the page are blocked
so the PDF reflects only the downloaded HTML; pass --allow-network to let the
page load remote assets.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		htmlPath := args[0]
		pdfPath := strings.TrimSuffix(htmlPath, ".html") + ".pdf"
		if len(args) == 2 {
			pdfPath = args[1]
		}

		browser, err := render.Start(viper.GetBool("playwright.headless"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not start render browser")
		}
		defer browser.Stop()

		opts := render.Options{Offline: !renderAllowNetwork}
		if err := browser.RenderPDF(htmlPath, pdfPath, opts); err != nil {
			log.Fatal().Err(err).Str("FileName", htmlPath).Msg("render failed")
		}

		log.Info().Str("FileName", pdfPath).Msg("wrote PDF")
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&renderAllowNetwork, "allow-network", false, "allow the page to load remote assets while rendering")
}
