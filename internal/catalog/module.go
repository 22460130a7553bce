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

package catalog

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/fikea/fikea/internal/config"
)

// Module provides the catalog and fills it from the configured products file on start.
// It must be placed before any module serving the catalog.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(newCatalog),
	fx.Invoke(
		registerCollector,
		registerHooks,
	),
)

func newCatalog(conf *config.Configuration, logger zerolog.Logger) (*Catalog, error) {
	return New(conf.Catalog, logger)
}

func registerCollector(reg prometheus.Registerer, cat *Catalog) error {
	return reg.Register(NewCollector(cat))
}

func registerHooks(lifecycle fx.Lifecycle, conf *config.Configuration, logger zerolog.Logger, cat *Catalog) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(_ context.Context) error {
				report, err := cat.LoadFile(conf.Catalog.ProductsFile, conf.Catalog.SubstituteEnv)
				if err != nil {
					logger.Error().Err(err).Str("_file", conf.Catalog.ProductsFile).Msg("Failed to load products")

					return err
				}

				logger.Info().
					Int("_created", report.Created).
					Int("_skipped", report.Skipped).
					Strs("_unknown_categories", report.UnknownCategories).
					Msg("Catalog loaded")

				return nil
			},
		},
	)
}
