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

package views

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/Masterminds/sprig/v3"

	"github.com/fikea/fikea/internal/catalog"
	"github.com/fikea/fikea/internal/fikea"
	"github.com/fikea/fikea/internal/product"
	"github.com/fikea/fikea/internal/x/errorchain"
)

var ErrTemplateRender = errors.New("template error")

//go:embed templates/*.gohtml
var templates embed.FS

const (
	pageHome     = "home"
	pageProducts = "products"
	pageProduct  = "product"
	pageError    = "error"
)

type MenuItem struct {
	Href  string
	Title string
}

type Attribute struct {
	Name  string
	Value float64
}

type link struct {
	Href string
	Name string
}

type listItem struct {
	Href    string
	Product product.Product
}

type page struct {
	Title   string
	Menu    []MenuItem
	Content any
}

// Renderer renders the catalog pages. It is safe for concurrent use.
type Renderer struct {
	pages      map[string]*template.Template
	menu       []MenuItem
	categories []catalog.Category
	keys       map[product.Kind]string
}

func NewRenderer(categories []catalog.Category) (*Renderer, error) {
	funcMap := sprig.FuncMap()
	delete(funcMap, "env")
	delete(funcMap, "expandenv")

	layout, err := template.New("layout.gohtml").Funcs(funcMap).ParseFS(templates, "templates/layout.gohtml")
	if err != nil {
		return nil, errorchain.NewWithMessage(fikea.ErrInternal, "failed to parse page layout").CausedBy(err)
	}

	pages := make(map[string]*template.Template, 4)

	for _, name := range []string{pageHome, pageProducts, pageProduct, pageError} {
		tmpl, err := layout.Clone()
		if err == nil {
			tmpl, err = tmpl.ParseFS(templates, "templates/"+name+".gohtml")
		}

		if err != nil {
			return nil, errorchain.NewWithMessagef(fikea.ErrInternal, "failed to parse %s page", name).
				CausedBy(err)
		}

		pages[name] = tmpl
	}

	menu := make([]MenuItem, 0, len(categories)+2)
	menu = append(menu, MenuItem{Href: "/", Title: "Home"}, MenuItem{Href: "/products", Title: "All products"})
	keys := make(map[product.Kind]string, len(categories))

	for _, category := range categories {
		menu = append(menu, MenuItem{Href: "/products/" + category.Key, Title: category.Name})
		keys[category.Kind] = category.Key
	}

	return &Renderer{pages: pages, menu: menu, categories: categories, keys: keys}, nil
}

func (r *Renderer) Home(totalCreated uint64) (string, error) {
	return r.render(pageHome, "Home", struct {
		TotalCreated uint64
		Categories   []catalog.Category
	}{TotalCreated: totalCreated, Categories: r.categories})
}

// Products renders a listing. Every entry links to the detail page below the category
// of the product's kind.
func (r *Renderer) Products(title string, products []product.Product) (string, error) {
	items := make([]listItem, 0, len(products))
	for _, prod := range products {
		items = append(items, listItem{Href: r.ProductHref(prod), Product: prod})
	}

	return r.render(pageProducts, title, struct{ Items []listItem }{Items: items})
}

// Product renders the detail page. grate may be nil.
func (r *Renderer) Product(prod product.Product, grate *product.Grate) (string, error) {
	var included *link
	if grate != nil {
		included = &link{Href: r.ProductHref(grate), Name: grate.Name}
	}

	return r.render(pageProduct, prod.Common().Name, struct {
		Product    product.Product
		Attributes []Attribute
		Grate      *link
	}{Product: prod, Attributes: Attributes(prod), Grate: included})
}

func (r *Renderer) Error(code int, message string) (string, error) {
	return r.render(pageError, http.StatusText(code), struct{ Message string }{Message: message})
}

func (r *Renderer) ProductHref(prod product.Product) string {
	key, ok := r.keys[product.KindOf(prod)]
	if !ok {
		return "/products"
	}

	return "/products/" + key + "/" + strconv.Itoa(prod.Common().ID)
}

func (r *Renderer) render(name, title string, content any) (string, error) {
	var buf bytes.Buffer

	if err := r.pages[name].ExecuteTemplate(&buf, "layout", page{
		Title:   title,
		Menu:    r.menu,
		Content: content,
	}); err != nil {
		return "", errorchain.NewWithMessagef(ErrTemplateRender, "failed to render %s page", name).CausedBy(err)
	}

	return buf.String(), nil
}

// Attributes lists the variant specific dimensions of a product.
func Attributes(prod product.Product) []Attribute {
	switch p := prod.(type) {
	case *product.Chair:
		return []Attribute{{"Height", p.Height}, {"Backrest height", p.BackrestHeight}}
	case *product.Table:
		return []Attribute{{"Height", p.Height}, {"Width", p.Width}, {"Depth", p.Depth}}
	case *product.Bed:
		return []Attribute{{"Height", p.Height}, {"Width", p.Width}, {"Depth", p.Depth}}
	case *product.Grate:
		return []Attribute{{"Width", p.Width}, {"Depth", p.Depth}}
	default:
		return nil
	}
}
