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
package edgar

import (
	"fmt"
	"strings"
)

// PaddedCIK formats a CIK to the fixed 10-digit width used by the metadata API
func PaddedCIK(cik int64) string {
	return fmt.Sprintf("%010d", cik)
}

// AccessionDigits flattens an accession number to digits only, matching the
// registry's flat directory numbering ("0000320193-25-000079" ->
// "000032019325000079"). Only separators are removed; nothing is reformatted.
func AccessionDigits(accession string) string {
	var builder strings.Builder
	for _, r := range accession {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// ArchiveURL returns the download URL for a filing's primary document. The
// archive convention uses the CIK without leading zeros and the accession
// number without separators as path segments.
func (client *Client) ArchiveURL(cik int64, filing Filing) string {
	return fmt.Sprintf("%s/%d/%s/%s", client.ArchivesBaseURL, cik,
		AccessionDigits(filing.AccessionNumber), filing.PrimaryDocument)
}

// FilenameStem derives the deterministic local filename stem for a filing's
// output artifacts. It is a pure function of the selected filing's fields so
// reruns against the same filing overwrite the same files. The form type is
// kept verbatim apart from "/" which is not filesystem safe.
func FilenameStem(ticker string, filing Filing) string {
	form := strings.ReplaceAll(filing.Form, "/", "-")
	return fmt.Sprintf("%s_%s_%s_%s", strings.ToUpper(ticker), form,
		filing.FilingDate, AccessionDigits(filing.AccessionNumber))
}
