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
package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
)

// ErrRender indicates the document could not be converted to PDF
var ErrRender = errors.New("document render failed")

const footerTemplate = `
  <div style="font-size:10px; width:100%; padding:0 12mm; color:#666;">
    <span style="float:right;">
      Page <span class="pageNumber"></span> of <span class="totalPages"></span>
    </span>
  </div>
`

// Options control a single render invocation
type Options struct {
	// Offline aborts every outbound network request while the page renders,
	// so remote stylesheets, scripts and telemetry beacons never load and the
	// output is reproducible without touching the source site again.
	Offline bool
}

// RenderPDF loads a local HTML document and writes it to pdfPath as a
// paginated Letter-format PDF with page-number footers.
func (browser *Browser) RenderPDF(htmlPath, pdfPath string, opts Options) error {
	page, err := browser.newStealthPage()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	defer func() {
		if err := page.Close(); err != nil {
			log.Error().Err(err).Msg("error encountered when closing page")
		}
	}()

	if opts.Offline {
		if err := blockNetwork(page); err != nil {
			return fmt.Errorf("%w: %s", ErrRender, err)
		}
	}

	htmlAbsPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	fileURL := "file://" + htmlAbsPath
	if _, err := page.Goto(fileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		log.Error().Err(err).Str("Url", fileURL).Msg("could not load page")
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	if _, err := page.PDF(playwright.PagePdfOptions{
		Path:                playwright.String(pdfPath),
		Format:              playwright.String("Letter"),
		PrintBackground:     playwright.Bool(true),
		DisplayHeaderFooter: playwright.Bool(true),
		HeaderTemplate:      playwright.String("<div></div>"),
		FooterTemplate:      playwright.String(footerTemplate),
		Margin: &playwright.Margin{
			Top:    playwright.String("20mm"),
			Bottom: playwright.String("20mm"),
			Left:   playwright.String("12mm"),
			Right:  playwright.String("12mm"),
		},
	}); err != nil {
		log.Error().Err(err).Str("FileName", pdfPath).Msg("could not save page to PDF")
		return fmt.Errorf("%w: %s", ErrRender, err)
	}

	log.Info().Str("FileName", pdfPath).Msg("saved PDF")
	return nil
}

// blockNetwork aborts http and https requests triggered during rendering;
// file urls continue so the local document and its siblings still load
func blockNetwork(page playwright.Page) error {
	err := page.Route("**/*", func(route playwright.Route) {
		request := route.Request()
		if strings.HasPrefix(request.URL(), "http://") ||
			strings.HasPrefix(request.URL(), "https://") {
			if err := route.Abort("failed"); err != nil {
				log.Error().Err(err).Msg("failed blocking route")
			}
			return
		}

		if err := route.Continue(); err != nil {
			log.Error().Err(err).Msg("failed continuing route")
		}
	})

	if err != nil {
		log.Error().Err(err).Msg("page route errored")
		return err
	}

	return nil
}
