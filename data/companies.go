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
package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// DefaultCompanies is the built-in watch list used when no companies file is
// configured
var DefaultCompanies = []Company{
	{Ticker: "AAPL", Name: "Apple"},
	{Ticker: "META", Name: "Meta"},
	{Ticker: "GOOGL", Name: "Alphabet"},
	{Ticker: "AMZN", Name: "Amazon"},
	{Ticker: "NFLX", Name: "Netflix"},
	{Ticker: "GS", Name: "Goldman Sachs"},
}

type companiesFile struct {
	Companies []Company `toml:"companies"`
}

// LoadCompanies reads a watch list from a .toml or .csv file. An empty path
// returns the default list.
func LoadCompanies(path string) ([]Company, error) {
	if path == "" {
		return DefaultCompanies, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("FileName", path).Msg("could not read companies file")
		return nil, err
	}

	var companies []Company

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var parsed companiesFile
		if err := toml.Unmarshal(raw, &parsed); err != nil {
			log.Error().Err(err).Str("FileName", path).Msg("could not parse companies file")
			return nil, err
		}
		companies = parsed.Companies
	case ".csv":
		if err := gocsv.UnmarshalBytes(raw, &companies); err != nil {
			log.Error().Err(err).Str("FileName", path).Msg("could not parse companies file")
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported companies file type: %s", ext)
	}

	cleaned := make([]Company, 0, len(companies))
	for _, company := range companies {
		company.Ticker = strings.ToUpper(strings.TrimSpace(company.Ticker))
		if company.Ticker == "" {
			continue
		}
		cleaned = append(cleaned, company)
	}

	if len(cleaned) == 0 {
		return nil, errors.New("companies file contains no entries")
	}

	return cleaned, nil
}

// SaveCompanies writes the watch list to a TOML file
func SaveCompanies(path string, companies []Company) error {
	raw, err := toml.Marshal(companiesFile{Companies: companies})
	if err != nil {
		log.Error().Err(err).Msg("could not marshal companies")
		return err
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		log.Error().Err(err).Str("FileName", path).Msg("could not save companies file")
		return err
	}

	return nil
}
