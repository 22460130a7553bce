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

package config

import (
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
)

const (
	defaultServePort     = 8080
	defaultMetricsPort   = 9000
	defaultReadTimeout   = 5 * time.Second
	defaultWriteTimeout  = 10 * time.Second
	defaultIdleTimeout   = 2 * time.Minute
	defaultCacheTTL      = 1 * time.Minute
	defaultCacheMemory   = 16 * bytesize.MB
	defaultProductsFile  = "products.json"
	defaultDescription   = "Another product!"
	defaultMaterialNames = "{{ .Name }} ({{ .Color }})"
)

func defaultConfig() Configuration {
	return Configuration{
		Serve: ServeConfig{
			Port: defaultServePort,
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
		},
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogTextFormat,
		},
		Metrics: MetricsConfig{
			Port: defaultMetricsPort,
			Path: "/metrics",
		},
		Catalog: CatalogConfig{
			ProductsFile:        defaultProductsFile,
			DefaultDescription:  defaultDescription,
			MaterialDisplayName: defaultMaterialNames,
		},
		Cache: CacheConfig{
			Enabled:   true,
			TTL:       defaultCacheTTL,
			MaxMemory: defaultCacheMemory,
		},
		Tracing: TracingConfig{Enabled: true},
	}
}
