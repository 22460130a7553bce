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

package module

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/fikea/fikea/internal/cache"
	"github.com/fikea/fikea/internal/cache/memory"
	"github.com/fikea/fikea/internal/cache/noop"
	"github.com/fikea/fikea/internal/config"
)

// nolint
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerCacheEviction),
)

func newCache(conf *config.Configuration, logger zerolog.Logger) cache.Cache {
	if conf.Cache.Enabled {
		logger.Info().
			Dur("_ttl", conf.Cache.TTL).
			Uint64("_max_entries", conf.Cache.MaxEntries).
			Str("_max_memory", conf.Cache.MaxMemory.String()).
			Msg("Instantiating in memory page cache")

		return memory.NewCache(conf.Cache.MaxEntries, conf.Cache.MaxMemory)
	}

	logger.Info().Msg("Page cache is disabled")

	return noop.Cache{}
}

func registerCacheEviction(lifecycle fx.Lifecycle, logger zerolog.Logger, cch cache.Cache) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Info().Msg("Starting cache evictor")

				return cch.Start(ctx)
			},
			OnStop: func(ctx context.Context) error {
				logger.Info().Msg("Tearing down cache evictor")

				return cch.Stop(ctx)
			},
		},
	)
}
