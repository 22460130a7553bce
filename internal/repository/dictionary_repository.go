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

import (
	"sync"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
	"github.com/fikea/fikea/internal/x/slicex"
)

type Option[K comparable, V any] func(r *dictionaryRepository[K, V])

// WithDefault configures the value returned by GetByIDOrDefault for absent keys.
func WithDefault[K comparable, V any](def V) Option[K, V] {
	return func(r *dictionaryRepository[K, V]) {
		r.def = def
	}
}

func New[K comparable, V any](selector KeySelector[K, V], opts ...Option[K, V]) Repository[K, V] {
	repo := &dictionaryRepository[K, V]{
		entries:  make(map[K]V),
		selector: selector,
	}

	for _, opt := range opts {
		opt(repo)
	}

	return repo
}

type dictionaryRepository[K comparable, V any] struct {
	entries  map[K]V
	order    []K
	def      V
	selector KeySelector[K, V]
	mutex    sync.RWMutex
}

func (r *dictionaryRepository[K, V]) GetByID(key K) (V, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	value, ok := r.entries[key]
	if !ok {
		return value, errorchain.NewWithMessagef(fikea.ErrNotFound, "no entry for key %v", key)
	}

	return value, nil
}

func (r *dictionaryRepository[K, V]) GetByIDOrDefault(key K) V {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if value, ok := r.entries[key]; ok {
		return value
	}

	return r.def
}

func (r *dictionaryRepository[K, V]) Add(value V) error {
	if r.selector == nil {
		return errorchain.NewWithMessage(fikea.ErrKey, "no key selector configured")
	}

	key, ok := r.selector(value)
	if !ok {
		return errorchain.NewWithMessage(fikea.ErrKey, "value has no key")
	}

	return r.AddWithKey(key, value)
}

func (r *dictionaryRepository[K, V]) AddWithKey(key K, value V) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.entries[key]; ok {
		return errorchain.NewWithMessagef(fikea.ErrDuplicateKey, "entry for key %v already exists", key)
	}

	r.entries[key] = value
	r.order = append(r.order, key)

	return nil
}

func (r *dictionaryRepository[K, V]) GetAll(predicate func(V) bool) []V {
	if predicate == nil {
		predicate = All[V]
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	values := slicex.Map(r.order, func(key K) V { return r.entries[key] })

	return slicex.Filter(values, predicate)
}

func (r *dictionaryRepository[K, V]) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}
