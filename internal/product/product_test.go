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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/fikea"
)

func TestTotalPrice(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		price    float64
		discount float64
		expTotal float64
	}{
		{uc: "quarter off", price: 1000, discount: 0.25, expTotal: 750},
		{uc: "no discount", price: 499.9, discount: 0, expTotal: 499.9},
		{uc: "for free", price: 120, discount: 1, expTotal: 0},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			details := Details{Price: tc.price, Discount: tc.discount}

			assert.InDelta(t, tc.expTotal, details.TotalPrice(), 0.000001)
		})
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	grateID := 7

	for _, tc := range []struct {
		uc      string
		product Product
		expKind Kind
	}{
		{uc: "chair", product: NewChair(Details{ID: 1}, 90, 40), expKind: KindChair},
		{uc: "table", product: NewTable(Details{ID: 2}, 75, 120, 80), expKind: KindTable},
		{uc: "bed", product: NewBed(Details{ID: 3}, 40, 160, 200, &grateID), expKind: KindBed},
		{uc: "grate", product: NewGrate(Details{ID: 4}, 160, 200), expKind: KindGrate},
		{uc: "other", product: NewOther(Details{ID: 5}), expKind: KindOther},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			assert.Equal(t, tc.expKind, KindOf(tc.product))
			assert.Equal(t, tc.uc, tc.product.Kind().String())
			assert.Positive(t, tc.product.Common().ID)
		})
	}
}

func TestKindOfNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", KindOf(nil).String())
}

func TestTotalCreatedIsMonotonic(t *testing.T) {
	t.Parallel()

	// GIVEN
	before := TotalCreated()

	// WHEN
	NewOther(Details{ID: 1})
	NewChair(Details{ID: 2}, 1, 1)

	// THEN
	assert.GreaterOrEqual(t, TotalCreated(), before+2)
}

func TestRepository(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := NewRepository()

	require.NoError(t, repo.Add(NewChair(Details{ID: 1, Name: "Ergo"}, 90, 40)))
	require.NoError(t, repo.Add(NewTable(Details{ID: 2, Name: "Desk"}, 75, 120, 80)))

	// WHEN
	err := repo.Add(NewGrate(Details{ID: 1, Name: "Flex"}, 90, 200))
	chairs := repo.GetAll(OfKind(KindChair))

	// THEN
	require.ErrorIs(t, err, fikea.ErrDuplicateKey)
	require.Len(t, chairs, 1)
	assert.Equal(t, "Ergo", chairs[0].Common().Name)
	require.ErrorIs(t, repo.Add(nil), fikea.ErrKey)
}
