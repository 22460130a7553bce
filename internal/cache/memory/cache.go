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

package memory

import (
	"context"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"

	"github.com/fikea/fikea/internal/cache"
	"github.com/fikea/fikea/internal/x"
)

const defaultCacheMemorySize = 16 * bytesize.MB

// An empty cache takes up 374 bytes. Each entry adds 16 bytes of key metadata, 24 bytes of
// value metadata and about 144 bytes of internal structures.
const ttlCacheOverheadPerEntry = 184

type Cache struct {
	c *ttlcache.Cache[string, []byte]
}

// NewCache creates an in memory cache holding at most maxEntries entries (zero means no
// limit) and approximately maxMemory bytes (zero falls back to 16MB).
func NewCache(maxEntries uint64, maxMemory bytesize.ByteSize) *Cache {
	limit := x.IfThenElse(maxMemory == 0, defaultCacheMemorySize, maxMemory)

	return &Cache{
		c: ttlcache.New[string, []byte](
			ttlcache.WithDisableTouchOnHit[string, []byte](),
			ttlcache.WithCapacity[string, []byte](maxEntries),
			ttlcache.WithMaxCost[string, []byte](uint64(limit),
				func(item ttlcache.CostItem[string, []byte]) uint64 {
					return uint64(len(item.Key) + len(item.Value) + ttlCacheOverheadPerEntry) //nolint:gosec
				},
			),
		),
	}
}

func (c *Cache) Start(_ context.Context) error {
	go c.c.Start()

	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.c.Stop()

	return nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, cache.ErrNoCacheEntry
	}

	return item.Value(), nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.c.Set(key, value, ttl)

	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.c.Delete(key)

	return nil
}

// Len returns the number of entries including the expired ones not yet evicted.
func (c *Cache) Len() int { return c.c.Len() }
