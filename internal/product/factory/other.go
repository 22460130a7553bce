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

type otherFactory struct {
	b base
}

func NewOtherFactory(pool material.Pool, mf *material.Factory, opts ...Option) Factory {
	return &otherFactory{b: newBase(pool, mf, nil, opts...)}
}

func (f *otherFactory) Validate(rec Record) error { return f.b.validate(rec) }

func (f *otherFactory) ResolveMaterial(rec Record) (*material.Material, error) {
	return f.b.resolveMaterial(rec)
}

func (f *otherFactory) Create(rec Record) (product.Product, error) {
	details, err := f.b.prepare(rec, nil)
	if err != nil {
		return nil, err
	}

	return product.NewOther(details), nil
}

func (f *otherFactory) CategoryName() string { return "Other" }

func (f *otherFactory) CreatedKind() product.Kind { return product.KindOther }
