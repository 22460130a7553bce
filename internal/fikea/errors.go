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
	"fmt"
)

var (
	ErrArgument        = errors.New("argument error")
	ErrConfiguration   = errors.New("configuration error")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrFormat          = errors.New("format error")
	ErrInternal        = errors.New("internal error")
	ErrKey             = errors.New("key error")
	ErrMissingField    = errors.New("missing field")
	ErrNotFound        = errors.New("not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// MissingFieldError names the first required field absent from a product record.
type MissingFieldError struct {
	ProductName string
	FieldName   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("key %s must be specified for %s", e.FieldName, e.ProductName)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
