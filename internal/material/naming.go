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

package material

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/x/errorchain"
)

// NamingStrategy computes the display name of a material.
type NamingStrategy func(typ Type, name, color string) string

func DefaultNaming(_ Type, name, color string) string {
	return fmt.Sprintf("%s (%s)", name, color)
}

// TemplateNaming renders the display name from a text template. The template sees the
// fields Type, Name and Color.
func TemplateNaming(tpl string) (NamingStrategy, error) {
	funcMap := sprig.TxtFuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	tmpl, err := template.New("material").Funcs(funcMap).Option("missingkey=error").Parse(tpl)
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrConfiguration,
			"failed to parse material display name template").CausedBy(err)
	}

	return func(typ Type, name, color string) string {
		var buf strings.Builder

		if err := tmpl.Execute(&buf, struct {
			Type  Type
			Name  string
			Color string
		}{Type: typ, Name: name, Color: color}); err != nil {
			return DefaultNaming(typ, name, color)
		}

		return buf.String()
	}, nil
}
