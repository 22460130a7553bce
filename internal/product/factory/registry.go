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
	"sync"

	"github.com/fikea/fikea/internal/material"
)

// Registry maps category keys, as used in the products file and in urls, to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	keys      []string
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry registers a factory for each known category. All of them share the
// given pool and material factory.
func NewDefaultRegistry(pool material.Pool, mf *material.Factory, opts ...Option) *Registry {
	reg := NewRegistry()

	reg.Register("chairs", NewChairFactory(pool, mf, opts...))
	reg.Register("tables", NewTableFactory(pool, mf, opts...))
	reg.Register("beds", NewBedFactory(pool, mf, opts...))
	reg.Register("grates", NewGrateFactory(pool, mf, opts...))
	reg.Register("other", NewOtherFactory(pool, mf, opts...))

	return reg
}

// Register adds or replaces the factory for the given key. A replaced key keeps its
// original position.
func (r *Registry) Register(key string, factory Factory) {
	if factory == nil {
		panic("product factory is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.factories[key] = factory
}

func (r *Registry) Get(key string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[key]

	return factory, ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.keys...)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys)
}
