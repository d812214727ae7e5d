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
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// ManifestRow is one retrieved filing in the run manifest
type ManifestRow struct {
	Ticker          string `json:"ticker" parquet:"name=ticker, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CompanyName     string `json:"company_name" parquet:"name=company_name, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	CIK             int64  `json:"cik" parquet:"name=cik, type=INT64"`
	Form            string `json:"form" parquet:"name=form, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	FilingDate      string `json:"filing_date" parquet:"name=filing_date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	AccessionNumber string `json:"accession_number" parquet:"name=accession_number, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PrimaryDocument string `json:"primary_document" parquet:"name=primary_document, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	HTMLPath        string `json:"html_path" parquet:"name=html_path, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PDFPath         string `json:"pdf_path" parquet:"name=pdf_path, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	RetrievedAt     int64  `json:"retrieved_at" parquet:"name=retrieved_at, type=INT64"`
}

// ManifestRows converts the successful results of a run into manifest rows
func (summary *RunSummary) ManifestRows() []*ManifestRow {
	rows := make([]*ManifestRow, 0, len(summary.Results))
	for _, result := range summary.Results {
		if result.Failed() {
			continue
		}

		rows = append(rows, &ManifestRow{
			Ticker:          result.Company.Ticker,
			CompanyName:     result.CompanyName,
			CIK:             result.CIK,
			Form:            result.Filing.Form,
			FilingDate:      result.Filing.FilingDate,
			AccessionNumber: result.Filing.AccessionNumber,
			PrimaryDocument: result.Filing.PrimaryDocument,
			HTMLPath:        result.HTMLPath,
			PDFPath:         result.PDFPath,
			RetrievedAt:     time.Now().Unix(),
		})
	}
	return rows
}

// SaveManifest writes the manifest rows to a parquet file
func SaveManifest(rows []*ManifestRow, fn string) error {
	fh, err := local.NewLocalFileWriter(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("cannot create local file")
		return err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(ManifestRow), 4)
	if err != nil {
		log.Error().
			Str("OriginalError", err.Error()).
			Msg("Parquet write failed")
		return err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, row := range rows {
		if err = pw.Write(row); err != nil {
			log.Error().
				Str("OriginalError", err.Error()).
				Str("Ticker", row.Ticker).Str("AccessionNumber", row.AccessionNumber).
				Msg("Parquet write failed for row")
		}
	}

	if err = pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("Parquet write failed")
		return err
	}

	log.Info().Int("NumRows", len(rows)).Str("FileName", fn).Msg("Parquet write finished")
	return nil
}
