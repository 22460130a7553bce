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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fikea/fikea/internal/product"
)

type collector struct {
	cat       *Catalog
	products  *prometheus.Desc
	materials *prometheus.Desc
	created   *prometheus.Desc
}

// NewCollector exposes the size of the given catalog.
func NewCollector(cat *Catalog) prometheus.Collector {
	return &collector{
		cat: cat,
		products: prometheus.NewDesc(
			"fikea_catalog_products",
			"Number of products in the catalog",
			[]string{"category"},
			nil,
		),
		materials: prometheus.NewDesc(
			"fikea_catalog_materials",
			"Number of distinct materials in the catalog",
			nil,
			nil,
		),
		created: prometheus.NewDesc(
			"fikea_products_created_total",
			"Number of products created since start",
			nil,
			nil,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.products
	ch <- c.materials
	ch <- c.created
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, category := range c.cat.Categories() {
		products, err := c.cat.ProductsOf(category.Key)
		if err != nil {
			continue
		}

		ch <- prometheus.MustNewConstMetric(c.products, prometheus.GaugeValue, float64(len(products)), category.Key)
	}

	ch <- prometheus.MustNewConstMetric(c.materials, prometheus.GaugeValue, float64(c.cat.Materials.Len()))
	ch <- prometheus.MustNewConstMetric(c.created, prometheus.CounterValue, float64(product.TotalCreated()))
}
