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

package web

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/fikea/fikea/internal/cache"
	"github.com/fikea/fikea/internal/catalog"
	"github.com/fikea/fikea/internal/config"
	"github.com/fikea/fikea/internal/handler/fxlcm"
	"github.com/fikea/fikea/internal/router"
	"github.com/fikea/fikea/internal/views"
)

var Module = fx.Options( // nolint: gochecknoglobals
	fx.Provide(
		newRenderer,
		NewRouter,
	),
	fx.Invoke(registerHooks),
)

func newRenderer(cat *catalog.Catalog) (*views.Renderer, error) {
	return views.NewRenderer(cat.Categories())
}

type hooksArgs struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     *config.Configuration
	Logger     zerolog.Logger
	Cache      cache.Cache
	Router     *router.Router
}

func registerHooks(args hooksArgs) {
	lcm := &fxlcm.LifecycleManager{
		ServiceName:    "Web",
		ServiceAddress: args.Config.Serve.Address(),
		Server:         newService(args.Config, args.Cache, args.Router, args.Logger),
		Logger:         args.Logger,
		Shutdowner:     args.Shutdowner,
	}

	args.Lifecycle.Append(fx.Hook{OnStart: lcm.Start, OnStop: lcm.Stop})
}
