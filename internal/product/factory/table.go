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

package factory

import (
	"github.com/fikea/fikea/internal/material"
	"github.com/fikea/fikea/internal/product"
)

type tableFields struct {
	Height float64 `mapstructure:"height"`
	Width  float64 `mapstructure:"width"`
	Depth  float64 `mapstructure:"depth"`
}

type tableFactory struct {
	b base
}

func NewTableFactory(pool material.Pool, mf *material.Factory, opts ...Option) Factory {
	return &tableFactory{b: newBase(pool, mf, []string{"height", "width", "depth"}, opts...)}
}

func (f *tableFactory) Validate(rec Record) error { return f.b.validate(rec) }

func (f *tableFactory) ResolveMaterial(rec Record) (*material.Material, error) {
	return f.b.resolveMaterial(rec)
}

func (f *tableFactory) Create(rec Record) (product.Product, error) {
	var fields tableFields

	details, err := f.b.prepare(rec, &fields)
	if err != nil {
		return nil, err
	}

	return product.NewTable(details, fields.Height, fields.Width, fields.Depth), nil
}

func (f *tableFactory) CategoryName() string { return "Tables" }

func (f *tableFactory) CreatedKind() product.Kind { return product.KindTable }
