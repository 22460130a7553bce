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

package fikea

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fikea/fikea/internal/x/errorchain"
)

func TestMissingFieldError(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := errorchain.NewWithMessage(ErrArgument, "invalid record").
		CausedBy(&MissingFieldError{ProductName: "Ergo", FieldName: "price"})

	// WHEN
	var mfe *MissingFieldError

	ok := errors.As(err, &mfe)

	// THEN
	require.True(t, ok)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "price", mfe.FieldName)
	assert.Equal(t, "Ergo", mfe.ProductName)
	assert.Equal(t, "key price must be specified for Ergo", mfe.Error())
	assert.NotErrorIs(t, mfe, ErrFormat)
}
