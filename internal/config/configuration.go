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
	"github.com/fikea/fikea/internal/config/parser"
	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/validation"
	"github.com/fikea/fikea/internal/x/errorchain"
)

type (
	ConfigurationPath string
	EnvVarPrefix      string
)

type Configuration struct {
	Serve   ServeConfig   `koanf:"serve"`
	Log     LoggingConfig `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Catalog CatalogConfig `koanf:"catalog"`
	Cache   CacheConfig   `koanf:"cache"`
	Tracing TracingConfig `koanf:"tracing"`
}

// NewConfiguration loads the configuration from the given file, or, if empty, from
// config.yaml in the working directory or in /etc/fikea, and applies the environment
// variables starting with envPrefix on top.
func NewConfiguration(envPrefix EnvVarPrefix, configFile ConfigurationPath) (*Configuration, error) {
	// copy defaults
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/fikea"),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrConfiguration, "failed to load configuration").CausedBy(err)
	}

	validator, err := validation.NewValidator(
		validation.WithTagValidator(goTemplateValidator{}),
		validation.WithErrorTranslator(goTemplateValidator{}),
	)
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrInternal,
			"failed to create configuration validator").CausedBy(err)
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrConfiguration, "invalid configuration").CausedBy(err)
	}

	return &result, nil
}
