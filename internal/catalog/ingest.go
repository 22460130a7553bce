// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

type IngestReport struct {
	Created           int
	Skipped           int
	UnknownCategories []string
}

// Ingest creates products from the given record sets in their order, so that the first
// record naming a material defines it. Records of unknown categories and invalid records
// are logged and skipped. A product id, which is already in use, aborts the ingestion.
func (c *Catalog) Ingest(sets []RecordSet) (IngestReport, error) {
	var report IngestReport

	for _, set := range sets {
		key := set.Category

		f, ok := c.Factories.Get(key)
		if !ok {
			c.logger.Warn().Str("_category", key).Msg("No factory for category found. Skipping")

			report.UnknownCategories = append(report.UnknownCategories, key)

			continue
		}

		c.logger.Debug().Str("_category", key).Msg("Creating products")

		for idx, rec := range set.Records {
			prod, err := f.Create(rec)
			if err != nil {
				c.logger.Warn().Err(err).
					Str("_category", key).
					Int("_index", idx).
					Msg("Invalid product record. Skipping")

				report.Skipped++

				continue
			}

			if err = c.Products.Add(prod); err != nil {
				return report, errorchain.NewWithMessagef(fikea.ErrConfiguration,
					"product %d of category %s cannot be added", prod.Common().ID, key).CausedBy(err)
			}

			report.Created++
		}
	}

	return report, nil
}

// LoadFile reads the given products file and ingests its content.
func (c *Catalog) LoadFile(path string, substituteEnv bool) (IngestReport, error) {
	records, err := ReadFile(path, substituteEnv)
	if err != nil {
		return IngestReport{}, err
	}

	c.logger.Info().Str("_file", path).Msg("Loading products")

	return c.Ingest(records)
}
