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
	"github.com/rs/zerolog"

	"github.com/fikea/fikea/internal/config"
	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/material"
	"github.com/fikea/fikea/internal/product"
	"github.com/fikea/fikea/internal/product/factory"
	"github.com/fikea/fikea/internal/x/errorchain"
)

// Catalog bundles the material pool, the product repository and the factories filling
// them. It replaces any kind of global state.
type Catalog struct {
	Materials material.Pool
	Products  product.Repository
	Factories *factory.Registry

	logger zerolog.Logger
}

// Category describes a registered product category.
type Category struct {
	Key  string
	Name string
	Kind product.Kind
}

func New(conf config.CatalogConfig, logger zerolog.Logger) (*Catalog, error) {
	naming := material.DefaultNaming

	if len(conf.MaterialDisplayName) != 0 {
		var err error

		if naming, err = material.TemplateNaming(conf.MaterialDisplayName); err != nil {
			return nil, err
		}
	}

	pool := material.NewPool()

	return &Catalog{
		Materials: pool,
		Products:  product.NewRepository(),
		Factories: factory.NewDefaultRegistry(pool, material.NewFactory(naming),
			factory.WithDefaultDiscount(conf.DefaultDiscount),
			factory.WithDefaultDescription(conf.DefaultDescription),
		),
		logger: logger,
	}, nil
}

// Categories returns the registered categories in registration order.
func (c *Catalog) Categories() []Category {
	keys := c.Factories.Keys()
	categories := make([]Category, 0, len(keys))

	for _, key := range keys {
		if f, ok := c.Factories.Get(key); ok {
			categories = append(categories, Category{Key: key, Name: f.CategoryName(), Kind: f.CreatedKind()})
		}
	}

	return categories
}

// ProductsOf returns the products created by the factory registered for key.
func (c *Catalog) ProductsOf(key string) ([]product.Product, error) {
	f, ok := c.Factories.Get(key)
	if !ok {
		return nil, errorchain.NewWithMessagef(fikea.ErrUnknownCategory, "no category %s", key)
	}

	return c.Products.GetAll(product.OfKind(f.CreatedKind())), nil
}

// GrateOf resolves the grate included with the given bed, if any.
func (c *Catalog) GrateOf(bed *product.Bed) (*product.Grate, bool) {
	if bed == nil || bed.GrateID == nil {
		return nil, false
	}

	grate, ok := c.Products.GetByIDOrDefault(*bed.GrateID).(*product.Grate)

	return grate, ok
}
