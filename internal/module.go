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

package internal

import (
	"go.uber.org/fx"

	cachemodule "github.com/fikea/fikea/internal/cache/module"
	"github.com/fikea/fikea/internal/catalog"
	"github.com/fikea/fikea/internal/handler/metrics"
	"github.com/fikea/fikea/internal/handler/web"
	"github.com/fikea/fikea/internal/logging"
	"github.com/fikea/fikea/internal/otel"
	"github.com/fikea/fikea/internal/prometheus"
)

// Module expects the configuration and the logger to be supplied. The catalog is loaded
// before the web service starts listening.
// nolint: gochecknoglobals
var Module = fx.Options(
	logging.Module,
	prometheus.Module,
	otel.Module,
	cachemodule.Module,
	catalog.Module,
	web.Module,
	metrics.Module,
)
