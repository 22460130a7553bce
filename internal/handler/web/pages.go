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
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/fikea/fikea/internal/catalog"
	"github.com/fikea/fikea/internal/product"
	"github.com/fikea/fikea/internal/repository"
	"github.com/fikea/fikea/internal/router"
	"github.com/fikea/fikea/internal/views"
)

const internalErrorBody = "<html><body><h1>500 Internal Server Error</h1></body></html>"

type pages struct {
	cat      *catalog.Catalog
	renderer *views.Renderer
	logger   zerolog.Logger
}

// NewRouter returns a router serving the catalog pages and rendering unknown paths as the
// not found page.
func NewRouter(cat *catalog.Catalog, renderer *views.Renderer, logger zerolog.Logger) *router.Router {
	p := &pages{cat: cat, renderer: renderer, logger: logger}
	rt := router.New(router.WithNotFoundHandler(router.HandlerFunc(p.notFound)))

	p.register(rt)

	return rt
}

// register adds the home page, the listing of all products and one route per category,
// each with an optional trailing product id.
func (p *pages) register(rt *router.Router) {
	rt.HandleFunc("", p.home)
	rt.HandleFunc("products", p.allProducts)

	for _, category := range p.cat.Categories() {
		rt.HandleFunc("products/"+category.Key, p.category(category))
	}
}

func (p *pages) home(_, _ []string) router.Response {
	return p.respond("home", router.OK, func() (string, error) {
		return p.renderer.Home(product.TotalCreated())
	})
}

func (p *pages) allProducts(segments, query []string) router.Response {
	if len(trimTrailing(segments)) != 0 {
		return p.notFound(segments, query)
	}

	return p.respond("products", router.OK, func() (string, error) {
		return p.renderer.Products("All products", p.cat.Products.GetAll(repository.All[product.Product]))
	})
}

func (p *pages) category(category catalog.Category) router.HandlerFunc {
	return func(segments, query []string) router.Response {
		segments = trimTrailing(segments)

		switch len(segments) {
		case 0:
			products, err := p.cat.ProductsOf(category.Key)
			if err != nil {
				return p.notFound(segments, query)
			}

			return p.respond(category.Key, router.OK, func() (string, error) {
				return p.renderer.Products(category.Name, products)
			})
		case 1:
			return p.product(category, segments[0], query)
		default:
			return p.notFound(segments, query)
		}
	}
}

func (p *pages) product(category catalog.Category, rawID string, query []string) router.Response {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return p.badRequest("Invalid product id " + rawID)
	}

	prod, err := p.cat.Products.GetByID(id)
	if err != nil || product.KindOf(prod) != category.Kind {
		return p.notFound([]string{rawID}, query)
	}

	var grate *product.Grate

	if bed, ok := prod.(*product.Bed); ok {
		if grate, ok = p.cat.GrateOf(bed); !ok {
			p.logger.Debug().Int("_product_id", id).Msg("Bed without resolvable grate")
		}
	}

	return p.respond("product", router.OK, func() (string, error) {
		return p.renderer.Product(prod, grate)
	})
}

func (p *pages) notFound(_, _ []string) router.Response {
	return p.respond("not found", router.NotFound, func() (string, error) {
		return p.renderer.Error(http.StatusNotFound, "Page not found!")
	})
}

func (p *pages) badRequest(message string) router.Response {
	return p.respond("bad request", router.BadRequest, func() (string, error) {
		return p.renderer.Error(http.StatusBadRequest, message)
	})
}

func (p *pages) respond(name string, build func(string) router.Response, render func() (string, error)) router.Response {
	body, err := render()
	if err != nil {
		p.logger.Error().Err(err).Str("_page", name).Msg("Failed to render page")

		return router.InternalServerError(internalErrorBody)
	}

	return build(body)
}

func trimTrailing(segments []string) []string {
	if len(segments) != 0 && len(segments[len(segments)-1]) == 0 {
		return segments[:len(segments)-1]
	}

	return segments
}
