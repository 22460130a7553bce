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
	"text/template"

	"github.com/Masterminds/sprig/v3"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// goTemplateValidator accepts strings which parse as text templates using the sprig
// functions.
type goTemplateValidator struct{}

func (goTemplateValidator) Tag() string { return "go_template" }

func (goTemplateValidator) AlwaysValidate() bool { return false }

func (goTemplateValidator) Validate(fl validator.FieldLevel) bool {
	_, err := template.New("validation").Funcs(sprig.TxtFuncMap()).Parse(fl.Field().String())

	return err == nil
}

func (goTemplateValidator) MessageTemplate() string { return "{0} must be a valid template" }

func (goTemplateValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, _ := ut.T(fe.Tag(), fe.Field())

	return msg
}
