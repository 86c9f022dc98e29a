// Package router maps a template category and purpose to the best-fit
// model descriptor from a catalog.
package router

import (
	"strings"

	"github.com/craftkit/stencil/pkg/catalog"
	"github.com/craftkit/stencil/pkg/template"
)

// Router selects models from an immutable catalog. Selection is a pure
// function of its inputs; the zero-value Router is not usable, construct
// with New.
type Router struct {
	catalog *catalog.Catalog
}

// New creates a router over the given catalog.
func New(c *catalog.Catalog) *Router {
	return &Router{catalog: c}
}

// Catalog returns the catalog the router selects from.
func (r *Router) Catalog() *catalog.Catalog {
	return r.catalog
}

// Select returns the best-fit descriptor for a category and purpose.
// It never fails: when no tag matches, a fixed per-category fallback
// applies, and unknown categories get the global default.
func (r *Router) Select(category, purpose string) catalog.Descriptor {
	category = strings.ToLower(category)
	purpose = strings.ToLower(purpose)
	if purpose == "" {
		purpose = "general"
	}

	// First matching descriptor in catalog order wins; no scoring.
	for _, d := range r.catalog.Entries() {
		for _, tag := range d.Tags {
			if tagMatches(tag, category) || tagMatches(tag, purpose) {
				return d
			}
		}
	}

	if key, ok := categoryFallback[template.Category(category)]; ok {
		if d, found := r.catalog.Lookup(key); found {
			return d
		}
	}
	return r.catalog.Default()
}

// categoryFallback maps the specialized categories to their designated
// model when no tag matched.
var categoryFallback = map[template.Category]string{
	template.Documents:     "kimi-dev",
	template.Designs:       "kimi-vl",
	template.Web:           "deepcoder",
	template.Presentations: "qwen3",
	template.Email:         "mistral-small",
}

// tagMatches reports whether a tag applies to a query term. Containment is
// checked in both directions, so the tag "web" matches the category
// "webinar" and vice versa. Deliberately loose; kept behind this predicate
// so it can be tightened without touching call sites.
func tagMatches(tag, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(tag, term) || strings.Contains(term, tag)
}
