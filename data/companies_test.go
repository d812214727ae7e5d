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
package data_test

import (
	"os"
	"path/filepath"

	"github.com/filing-vault/fvdata/data"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadCompanies", func() {
	var tmpDir string

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	writeFile := func(name, contents string) string {
		path := filepath.Join(tmpDir, name)
		Expect(os.WriteFile(path, []byte(contents), 0644)).To(Succeed())
		return path
	}

	It("returns the built-in watch list when no file is configured", func() {
		companies, err := data.LoadCompanies("")
		Expect(err).ToNot(HaveOccurred())
		Expect(companies).To(Equal(data.DefaultCompanies))
		Expect(companies[0].Ticker).To(Equal("AAPL"))
	})

	It("loads a TOML watch list", func() {
		path := writeFile("companies.toml", `
[[companies]]
ticker = "AAPL"
name = "Apple"

[[companies]]
ticker = "gs"
name = "Goldman Sachs"
`)

		companies, err := data.LoadCompanies(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies).To(HaveLen(2))
		Expect(companies[0]).To(Equal(data.Company{Ticker: "AAPL", Name: "Apple"}))
		Expect(companies[1].Ticker).To(Equal("GS"))
	})

	It("loads a CSV watch list", func() {
		path := writeFile("companies.csv", "ticker,name\naapl,Apple\nNFLX,Netflix\n")

		companies, err := data.LoadCompanies(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies).To(HaveLen(2))
		Expect(companies[0].Ticker).To(Equal("AAPL"))
		Expect(companies[1]).To(Equal(data.Company{Ticker: "NFLX", Name: "Netflix"}))
	})

	It("skips rows without a ticker", func() {
		path := writeFile("companies.csv", "ticker,name\nAAPL,Apple\n  ,No Ticker Inc\n")

		companies, err := data.LoadCompanies(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(companies).To(HaveLen(1))
	})

	It("rejects a watch list with no entries", func() {
		path := writeFile("companies.toml", "")

		_, err := data.LoadCompanies(path)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unsupported file type", func() {
		path := writeFile("companies.yaml", "companies: []")

		_, err := data.LoadCompanies(path)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a missing file", func() {
		_, err := data.LoadCompanies(filepath.Join(tmpDir, "absent.toml"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SaveCompanies", func() {
	It("round-trips the watch list through TOML", func() {
		path := filepath.Join(GinkgoT().TempDir(), "companies.toml")
		saved := []data.Company{
			{Ticker: "AAPL", Name: "Apple"},
			{Ticker: "GS", Name: "Goldman Sachs"},
		}

		Expect(data.SaveCompanies(path, saved)).To(Succeed())

		loaded, err := data.LoadCompanies(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(loaded).To(Equal(saved))
	})
})

var _ = Describe("RunSummary", func() {
	It("reports success when every company succeeded", func() {
		summary := &data.RunSummary{Results: []*data.CompanyResult{{}, {}}}
		Expect(summary.Status()).To(Equal(data.RunSuccess))
		Expect(summary.NumSucceeded()).To(Equal(2))
		Expect(summary.NumFailed()).To(Equal(0))
	})

	It("reports partial when some companies failed", func() {
		summary := &data.RunSummary{Results: []*data.CompanyResult{
			{},
			{Err: os.ErrNotExist},
		}}
		Expect(summary.Status()).To(Equal(data.RunPartial))
		Expect(summary.NumFailed()).To(Equal(1))
	})

	It("reports failed when every company failed", func() {
		summary := &data.RunSummary{Results: []*data.CompanyResult{
			{Err: os.ErrNotExist},
		}}
		Expect(summary.Status()).To(Equal(data.RunFailed))
	})
})
