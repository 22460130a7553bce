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
	"fmt"
	"time"
)

type ServeConfig struct {
	Host    string  `koanf:"host"`
	Port    int     `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout Timeout `koanf:"timeout"`
	CORS    *CORS   `koanf:"cors,omitempty"`
}

func (c ServeConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// Timeout bounds the phases of a connection to the web service. Zero disables a bound.
type Timeout struct {
	Read  time.Duration `koanf:"read,string"  mapstructure:"read"  validate:"gte=0"`
	Write time.Duration `koanf:"write,string" mapstructure:"write" validate:"gte=0"`
	Idle  time.Duration `koanf:"idle,string"  mapstructure:"idle"  validate:"gte=0"`
}

// CORS settings for the catalog pages. Only the read-only methods can be allowed.
type CORS struct {
	AllowedOrigins   []string      `koanf:"allowed_origins" validate:"dive,required"`
	AllowedMethods   []string      `koanf:"allowed_methods" validate:"dive,oneof=GET HEAD"`
	AllowedHeaders   []string      `koanf:"allowed_headers"`
	ExposedHeaders   []string      `koanf:"exposed_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age,string"`
}
