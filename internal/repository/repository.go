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

package repository

// KeySelector derives the key of a value. It returns false if the value has no key.
type KeySelector[K comparable, V any] func(value V) (K, bool)

// Repository is a keyed container which never overwrites an entry.
type Repository[K comparable, V any] interface {
	// GetByID returns the value stored under the given key or an error
	// matching fikea.ErrNotFound.
	GetByID(key K) (V, error)
	// GetByIDOrDefault returns the value stored under the given key or the
	// configured default value.
	GetByIDOrDefault(key K) V
	// Add stores the value under the key derived by the key selector.
	Add(value V) error
	// AddWithKey stores the value under the given key.
	AddWithKey(key K, value V) error
	// GetAll returns the values, the predicate holds for, in insertion order.
	GetAll(predicate func(V) bool) []V
	Len() int
}

// All is a predicate matching every value.
func All[V any](V) bool { return true }
