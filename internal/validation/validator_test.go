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

package validation

import (
	"strings"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lowercaseValidator struct{}

func (lowercaseValidator) Tag() string          { return "lowercase_only" }
func (lowercaseValidator) AlwaysValidate() bool { return false }
func (lowercaseValidator) Validate(fl validator.FieldLevel) bool {
	return strings.ToLower(fl.Field().String()) == fl.Field().String()
}

func (lowercaseValidator) MessageTemplate() string { return "{0} must be lower case" }
func (lowercaseValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, _ := ut.T(fe.Tag(), fe.Field())

	return msg
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	type record struct {
		Price    float64 `mapstructure:"price"    validate:"gte=0"`
		Discount float64 `mapstructure:"discount" validate:"gte=0,lte=1"`
	}

	for _, tc := range []struct {
		uc     string
		value  record
		expErr string
	}{
		{uc: "valid", value: record{Price: 10, Discount: 0.5}},
		{uc: "discount too high", value: record{Price: 10, Discount: 1.5}, expErr: "'discount' must be 1 or less"},
		{
			uc:     "negative price and discount",
			value:  record{Price: -1, Discount: -0.1},
			expErr: "'discount' must be 0 or greater, 'price' must be 0 or greater",
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			err := ValidateStruct(tc.value)

			if len(tc.expErr) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.expErr, err.Error())
		})
	}
}

func TestValidatorWithCustomTag(t *testing.T) {
	t.Parallel()

	// GIVEN
	type conf struct {
		Name string `koanf:"name" validate:"lowercase_only"`
	}

	v, err := NewValidator(
		WithTagValidator(lowercaseValidator{}),
		WithErrorTranslator(lowercaseValidator{}),
	)
	require.NoError(t, err)

	// WHEN
	okErr := v.ValidateStruct(conf{Name: "chairs"})
	failErr := v.ValidateStruct(conf{Name: "Chairs"})

	// THEN
	require.NoError(t, okErr)
	require.Error(t, failErr)
	assert.Equal(t, "'name' must be lower case", failErr.Error())
}
