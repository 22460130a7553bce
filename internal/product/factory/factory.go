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
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/material"
	"github.com/fikea/fikea/internal/product"
	"github.com/fikea/fikea/internal/validation"
	"github.com/fikea/fikea/internal/x/errorchain"
)

const (
	defaultDescription = "Another product!"
	unnamedProduct     = "Product"
)

// Record is a raw product as read from the products file.
type Record = map[string]any

type Factory interface {
	// Validate checks that all keys required by the category are present.
	Validate(rec Record) error
	// ResolveMaterial returns the pooled material named in the record, adding a new one
	// to the pool if there is none with that name yet.
	ResolveMaterial(rec Record) (*material.Material, error)
	Create(rec Record) (product.Product, error)
	CategoryName() string
	// CreatedKind is the kind of the products returned by Create.
	CreatedKind() product.Kind
}

type Option func(b *base)

func WithDefaultDiscount(discount float64) Option {
	return func(b *base) { b.defaultDiscount = discount }
}

func WithDefaultDescription(description string) Option {
	return func(b *base) {
		if len(description) != 0 {
			b.defaultDescription = description
		}
	}
}

//nolint:gochecknoglobals
var universalKeys = []string{"name", "id", "price", "material"}

type commonFields struct {
	ID          int     `mapstructure:"id"`
	Name        string  `mapstructure:"name"`
	Price       float64 `mapstructure:"price"       validate:"gte=0"`
	Discount    float64 `mapstructure:"discount"    validate:"gte=0,lte=1"`
	Description string  `mapstructure:"description"`
}

// base carries the behavior shared by all category factories.
type base struct {
	pool               material.Pool
	mf                 *material.Factory
	requiredKeys       []string
	defaultDiscount    float64
	defaultDescription string
}

func newBase(pool material.Pool, mf *material.Factory, variantKeys []string, opts ...Option) base {
	b := base{
		pool:               pool,
		mf:                 mf,
		requiredKeys:       append(append([]string{}, universalKeys...), variantKeys...),
		defaultDescription: defaultDescription,
	}

	for _, opt := range opts {
		opt(&b)
	}

	return b
}

func (b *base) validate(rec Record) error {
	productName := unnamedProduct
	if name, ok := rec["name"]; ok && name != nil {
		productName = fmt.Sprint(name)
	}

	for _, key := range b.requiredKeys {
		if _, ok := rec[key]; !ok {
			return &fikea.MissingFieldError{ProductName: productName, FieldName: key}
		}
	}

	return nil
}

func (b *base) resolveMaterial(rec Record) (*material.Material, error) {
	raw, ok := rec["material"].(string)
	if !ok {
		return nil, errorchain.NewWithMessage(fikea.ErrFormat, "material must be a string")
	}

	typ, name, color, err := material.ParseString(raw)
	if err != nil {
		return nil, err
	}

	if mat := b.pool.GetByIDOrDefault(name); mat != nil {
		return mat, nil
	}

	mat := b.mf.Create(typ, name, color)
	if err = b.pool.Add(mat); err != nil {
		// somebody else was faster
		if errors.Is(err, fikea.ErrDuplicateKey) {
			if pooled := b.pool.GetByIDOrDefault(name); pooled != nil {
				return pooled, nil
			}
		}

		return nil, err
	}

	return mat, nil
}

// prepare runs everything but the construction of the product. variant receives the
// category specific fields.
func (b *base) prepare(rec Record, variant any) (product.Details, error) {
	if err := b.validate(rec); err != nil {
		return product.Details{}, err
	}

	common := commonFields{
		Discount:    b.defaultDiscount,
		Description: b.defaultDescription,
	}

	if err := decodeRecord(rec, &common); err != nil {
		return product.Details{}, err
	}

	if variant != nil {
		if err := decodeRecord(rec, variant); err != nil {
			return product.Details{}, err
		}
	}

	if err := validation.ValidateStruct(common); err != nil {
		return product.Details{}, errorchain.NewWithMessagef(fikea.ErrArgument,
			"invalid values in product %s", common.Name).CausedBy(err)
	}

	mat, err := b.resolveMaterial(rec)
	if err != nil {
		return product.Details{}, err
	}

	return product.Details{
		ID:          common.ID,
		Name:        common.Name,
		Price:       common.Price,
		Discount:    common.Discount,
		Description: common.Description,
		Material:    mat,
	}, nil
}

func decodeRecord(rec Record, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralNumberHookFunc,
		Result:     output,
	})
	if err != nil {
		return errorchain.NewWithMessage(fikea.ErrInternal, "failed creating record decoder").CausedBy(err)
	}

	if err = dec.Decode(rec); err != nil {
		return errorchain.NewWithMessage(fikea.ErrArgument, "failed decoding product record").CausedBy(err)
	}

	return nil
}

// integralNumberHookFunc rejects floats with a fractional part for integer targets, which
// mapstructure would truncate otherwise.
func integralNumberHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Pointer {
		to = to.Elem()
	}

	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}

	switch to.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	if val := reflect.ValueOf(data).Float(); val != math.Trunc(val) || math.IsInf(val, 0) {
		return nil, errorchain.NewWithMessagef(fikea.ErrArgument, "%v is not an integral number", data)
	}

	return data, nil
}
