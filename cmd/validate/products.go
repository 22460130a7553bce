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

package validate

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fikea/fikea/cmd/flags"
	"github.com/fikea/fikea/internal/catalog"
)

var ErrIncompleteIngestion = errors.New("not all products could be ingested")

// NewValidateProductsCommand represents the "validate products" command.
func NewValidateProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products [file]",
		Short:   "Loads a products file into a throw-away catalog and prints a summary",
		Example: "fikea validate products products.yaml",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := validateProducts(cmd, args)

			cmd.Printf("Created: %d, skipped: %d", report.Created, report.Skipped)

			if len(report.UnknownCategories) != 0 {
				cmd.Printf(", unknown categories: %s", strings.Join(report.UnknownCategories, ", "))
			}

			cmd.Println()

			if err != nil {
				return err
			}

			cmd.Println("Products are valid")

			return nil
		},
	}

	cmd.Flags().Bool(flags.StrictValidation, false,
		"Treat skipped records and unknown categories as failure")

	return cmd
}

// validateProducts ingests the file given as argument, or the one from the configuration
// if there is no argument.
func validateProducts(cmd *cobra.Command, args []string) (catalog.IngestReport, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return catalog.IngestReport{}, err
	}

	file := conf.Catalog.ProductsFile
	if len(args) != 0 {
		file = args[0]
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = cmd.ErrOrStderr()
		w.NoColor = true
		w.PartsExclude = []string{zerolog.TimestampFieldName}
	})).Level(zerolog.WarnLevel)

	cat, err := catalog.New(conf.Catalog, logger)
	if err != nil {
		return catalog.IngestReport{}, err
	}

	report, err := cat.LoadFile(file, conf.Catalog.SubstituteEnv)
	if err != nil {
		return report, err
	}

	if strict, _ := cmd.Flags().GetBool(flags.StrictValidation); strict &&
		(report.Skipped != 0 || len(report.UnknownCategories) != 0) {
		return report, ErrIncompleteIngestion
	}

	return report, nil
}
