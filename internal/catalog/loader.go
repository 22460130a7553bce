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
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/drone/envsubst/v2"
	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/product/factory"
	"github.com/fikea/fikea/internal/x/errorchain"
	"github.com/fikea/fikea/schema"
)

type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

//nolint:gochecknoglobals
var (
	productsSchema     *jsonschema.Schema
	productsSchemaErr  error
	productsSchemaOnce sync.Once
)

// FormatOf derives the format of a products file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, errorchain.NewWithMessagef(fikea.ErrArgument,
			"unsupported products file type: %s", path)
	}
}

// RecordSet holds the records of one category of a products file.
type RecordSet struct {
	Category string
	Records  []factory.Record
}

func ReadFile(path string, substituteEnv bool) ([]RecordSet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(fikea.ErrConfiguration,
			"failed to read products file %s", path).CausedBy(err)
	}

	return Decode(raw, format, substituteEnv)
}

// Decode parses the given products document. The structure is validated against the
// products schema before the records are returned. The categories keep the order they
// have in the document.
func Decode(raw []byte, format Format, substituteEnv bool) ([]RecordSet, error) {
	if substituteEnv {
		content, err := envsubst.EvalEnv(string(raw))
		if err != nil {
			return nil, errorchain.NewWithMessage(fikea.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		raw = []byte(content)
	}

	var (
		doc any
		err error
	)

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		err = dec.Decode(&doc)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	default:
		return nil, errorchain.NewWithMessage(fikea.ErrArgument, "unsupported products format")
	}

	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrFormat, "parsing of products failed").CausedBy(err)
	}

	if err = validateSchema(doc); err != nil {
		return nil, err
	}

	order, err := categoryOrder(raw, format)
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrFormat, "parsing of products failed").CausedBy(err)
	}

	return toRecordSets(doc, order), nil
}

func categoryOrder(raw []byte, format Format) ([]string, error) {
	if format == FormatYAML {
		return yamlKeyOrder(raw)
	}

	return jsonKeyOrder(raw)
}

// jsonKeyOrder returns the keys of the top level object in document order.
func jsonKeyOrder(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var keys []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			// closing delimiter of the top level object
			return keys, nil
		}

		keys = append(keys, key)

		if err = skipValue(dec); err != nil {
			return nil, err
		}
	}
}

func skipValue(dec *json.Decoder) error {
	depth := 0

	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			default:
				depth--
			}
		}

		if depth == 0 {
			return nil
		}
	}
}

// yamlKeyOrder returns the keys of the top level mapping in document order.
func yamlKeyOrder(raw []byte) ([]string, error) {
	var node yaml.Node

	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}

	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	keys := make([]string, 0, len(root.Content)/2) //nolint:mnd

	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}

	return keys, nil
}

func validateSchema(doc any) error {
	productsSchemaOnce.Do(func() {
		productsSchema, productsSchemaErr = compileSchema("products.schema.json", schema.ProductsSchema)
	})

	if productsSchemaErr != nil {
		return errorchain.NewWithMessage(fikea.ErrInternal,
			"failed to compile products schema").CausedBy(productsSchemaErr)
	}

	if err := productsSchema.Validate(doc); err != nil {
		return errorchain.NewWithMessage(fikea.ErrFormat, "products do not match the schema").CausedBy(err)
	}

	return nil
}

func compileSchema(url string, content []byte) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}

// toRecordSets expects a document accepted by the products schema. Categories are
// returned in the given order. Duplicate or unknown keys in order are ignored and
// categories missing in order are appended in lexical order.
func toRecordSets(doc any, order []string) []RecordSet {
	categories, _ := doc.(map[string]any)
	result := make([]RecordSet, 0, len(categories))
	seen := make(map[string]bool, len(categories))

	add := func(key string) {
		value, ok := categories[key]
		if !ok || seen[key] {
			return
		}

		seen[key] = true

		items, _ := value.([]any)
		records := make([]factory.Record, 0, len(items))

		for _, item := range items {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, normalize(rec))
			}
		}

		result = append(result, RecordSet{Category: key, Records: records})
	}

	for _, key := range order {
		add(key)
	}

	rest := make([]string, 0, len(categories))

	for key := range categories {
		if !seen[key] {
			rest = append(rest, key)
		}
	}

	slices.Sort(rest)

	for _, key := range rest {
		add(key)
	}

	return result
}

// normalize turns json numbers into int or float64 values.
func normalize(rec map[string]any) factory.Record {
	for key, value := range rec {
		num, ok := value.(json.Number)
		if !ok {
			continue
		}

		if val, err := num.Int64(); err == nil {
			rec[key] = int(val)
		} else if val, err := num.Float64(); err == nil {
			rec[key] = val
		}
	}

	return rec
}
