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

package product

import (
	"sync/atomic"

	"github.com/fikea/fikea/internal/material"
	"github.com/fikea/fikea/internal/repository"
)

type Kind int

const (
	KindChair Kind = iota + 1
	KindTable
	KindBed
	KindGrate
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindChair:
		return "chair"
	case KindTable:
		return "table"
	case KindBed:
		return "bed"
	case KindGrate:
		return "grate"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// created counts every product ever constructed. Starts at zero, is never decremented.
var created atomic.Uint64 //nolint:gochecknoglobals

// TotalCreated returns the number of products constructed since process start.
func TotalCreated() uint64 { return created.Load() }

// Product is implemented by *Chair, *Table, *Bed, *Grate and *Other only.
type Product interface {
	Common() *Details
	Kind() Kind

	sealed()
}

// Details holds the fields shared by all product variants.
type Details struct {
	ID          int
	Name        string
	Price       float64
	Discount    float64
	Description string
	Material    *material.Material
}

func (d *Details) Common() *Details { return d }

// TotalPrice is the price after applying the discount.
func (d *Details) TotalPrice() float64 { return d.Price * (1 - d.Discount) }

func (d *Details) sealed() {}

type Chair struct {
	Details

	Height         float64
	BackrestHeight float64
}

func NewChair(details Details, height, backrestHeight float64) *Chair {
	created.Add(1)

	return &Chair{Details: details, Height: height, BackrestHeight: backrestHeight}
}

func (*Chair) Kind() Kind { return KindChair }

type Table struct {
	Details

	Height float64
	Width  float64
	Depth  float64
}

func NewTable(details Details, height, width, depth float64) *Table {
	created.Add(1)

	return &Table{Details: details, Height: height, Width: width, Depth: depth}
}

func (*Table) Kind() Kind { return KindTable }

// Bed references an included grate by id only. Resolve it against the product repository.
type Bed struct {
	Details

	Height  float64
	Width   float64
	Depth   float64
	GrateID *int
}

func NewBed(details Details, height, width, depth float64, grateID *int) *Bed {
	created.Add(1)

	return &Bed{Details: details, Height: height, Width: width, Depth: depth, GrateID: grateID}
}

func (*Bed) Kind() Kind { return KindBed }

type Grate struct {
	Details

	Width float64
	Depth float64
}

func NewGrate(details Details, width, depth float64) *Grate {
	created.Add(1)

	return &Grate{Details: details, Width: width, Depth: depth}
}

func (*Grate) Kind() Kind { return KindGrate }

type Other struct {
	Details
}

func NewOther(details Details) *Other {
	created.Add(1)

	return &Other{Details: details}
}

func (*Other) Kind() Kind { return KindOther }

// KindOf returns the variant kind of p or zero for nil.
func KindOf(p Product) Kind {
	if p == nil {
		return 0
	}

	return p.Kind()
}

// Repository holds all products keyed by id, regardless of their kind.
type Repository = repository.Repository[int, Product]

func NewRepository() Repository {
	return repository.New[int, Product](
		func(p Product) (int, bool) {
			if p == nil {
				return 0, false
			}

			return p.Common().ID, true
		},
	)
}

// OfKind returns a predicate matching products of the given kind.
func OfKind(kind Kind) func(Product) bool {
	return func(p Product) bool { return p.Kind() == kind }
}
