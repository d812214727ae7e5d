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
	"github.com/go-rod/stealth"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
)

// Browser wraps a headless chromium instance used to rasterize filing
// documents. Start it once per run and render any number of documents
// through it.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
}

// Start launches playwright and a chromium browser with a fresh context
func Start(headless bool) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		log.Error().Err(err).Msg("could not launch playwright")
		return nil, err
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not launch Chromium")
		if stopErr := pw.Stop(); stopErr != nil {
			log.Error().Err(stopErr).Msg("error encountered when stopping playwright")
		}
		return nil, err
	}

	log.Info().Bool("Headless", headless).
		Str("ExecutablePath", pw.Chromium.ExecutablePath()).
		Str("BrowserVersion", browser.Version()).
		Msg("starting playwright")

	context, err := browser.NewContext()
	if err != nil {
		log.Error().Err(err).Msg("could not create browser context")
		if closeErr := browser.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error encountered when closing browser")
		}
		if stopErr := pw.Stop(); stopErr != nil {
			log.Error().Err(stopErr).Msg("error encountered when stopping playwright")
		}
		return nil, err
	}

	return &Browser{pw: pw, browser: browser, context: context}, nil
}

// newStealthPage creates a page with stealth js loaded to prevent bot detection
func (browser *Browser) newStealthPage() (playwright.Page, error) {
	page, err := browser.context.NewPage()
	if err != nil {
		log.Error().Err(err).Msg("could not create page")
		return nil, err
	}

	if err = page.AddInitScript(playwright.Script{
		Content: playwright.String(stealth.JS),
	}); err != nil {
		log.Error().Err(err).Msg("could not load stealth mode")
	}

	return page, nil
}

// Stop closes the browser and shuts down the playwright server
func (browser *Browser) Stop() {
	log.Info().Msg("closing browser")
	if err := browser.browser.Close(); err != nil {
		log.Error().Err(err).Msg("error encountered when closing browser")
	}

	log.Info().Msg("stopping playwright")
	if err := browser.pw.Stop(); err != nil {
		log.Error().Err(err).Msg("error encountered when stopping playwright")
	}
}
