package router

import (
	"testing"

	"github.com/craftkit/stencil/pkg/catalog"
)

func TestSelect_TagMatching(t *testing.T) {
	r := New(catalog.Builtin())

	tests := []struct {
		name     string
		category string
		purpose  string
		expected string
	}{
		{
			name:     "email category matches mistral-small tag",
			category: "email",
			purpose:  "general",
			expected: "mistral-small",
		},
		{
			name:     "documents category matches kimi-dev tag",
			category: "documents",
			purpose:  "general",
			expected: "kimi-dev",
		},
		{
			name:     "web category matches deepcoder",
			category: "web",
			purpose:  "general",
			expected: "deepcoder",
		},
		{
			name:     "presentations category matches qwen3",
			category: "presentations",
			purpose:  "general",
			expected: "qwen3",
		},
		{
			name:     "marketing purpose matches mistral-small",
			category: "unknown-category",
			purpose:  "marketing",
			expected: "mistral-small",
		},
		{
			name:     "substring containment matches webinar against web tag",
			category: "webinar",
			purpose:  "general",
			expected: "deepcoder",
		},
		{
			name:     "case is normalized",
			category: "EMAIL",
			purpose:  "GENERAL",
			expected: "mistral-small",
		},
		{
			name:     "unknown category falls to global default",
			category: "unknown-category",
			purpose:  "nothing-matches-here",
			expected: "llama-nemotron",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Select(tt.category, tt.purpose)
			if got.Key != tt.expected {
				t.Errorf("Select(%q, %q) = %q, want %q", tt.category, tt.purpose, got.Key, tt.expected)
			}
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	r := New(catalog.Builtin())

	first := r.Select("email", "general")
	second := r.Select("email", "general")
	if first.Key != second.Key {
		t.Errorf("identical inputs selected %q then %q", first.Key, second.Key)
	}
}

func TestSelect_TieBreakOnCatalogOrder(t *testing.T) {
	// Two descriptors share the tag; the earlier entry must win.
	c := catalog.New(
		catalog.Descriptor{Key: "first", Tags: []string{"shared"}},
		catalog.Descriptor{Key: "second", Tags: []string{"shared"}},
		catalog.Descriptor{Key: catalog.DefaultKey, Tags: []string{"other"}},
	)
	r := New(c)

	got := r.Select("shared", "general")
	if got.Key != "first" {
		t.Errorf("Select tie-break returned %q, want %q", got.Key, "first")
	}
}

func TestSelect_CategoryFallbackTable(t *testing.T) {
	// A catalog whose tags can never match exercises the fallback table.
	entries := make([]catalog.Descriptor, 0, len(catalog.Builtin().Entries()))
	for _, d := range catalog.Builtin().Entries() {
		entries = append(entries, catalog.Descriptor{
			Key:             d.Key,
			DisplayName:     d.DisplayName,
			ProviderModelID: d.ProviderModelID,
			Tags:            []string{"zzz-synthetic-tag"},
		})
	}
	r := New(catalog.New(entries...))

	tests := []struct {
		category string
		expected string
	}{
		{"documents", "kimi-dev"},
		{"designs", "kimi-vl"},
		{"web", "deepcoder"},
		{"presentations", "qwen3"},
		{"email", "mistral-small"},
		{"video", "llama-nemotron"},
		{"anything-else", "llama-nemotron"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			// A purpose no synthetic tag contains keeps the tag path cold.
			got := r.Select(tt.category, "qqq")
			if got.Key != tt.expected {
				t.Errorf("Select(%q) fallback = %q, want %q", tt.category, got.Key, tt.expected)
			}
		})
	}
}

func TestSelect_EmptyPurposeDefaultsToGeneral(t *testing.T) {
	r := New(catalog.Builtin())
	withEmpty := r.Select("email", "")
	withGeneral := r.Select("email", "general")
	if withEmpty.Key != withGeneral.Key {
		t.Errorf("empty purpose selected %q, explicit general selected %q", withEmpty.Key, withGeneral.Key)
	}
}

func TestTagMatches(t *testing.T) {
	tests := []struct {
		tag   string
		term  string
		match bool
	}{
		{"email", "email", true},
		{"web", "webinar", true},
		{"landing-pages", "landing", true},
		{"email", "design", false},
		{"web", "", false},
	}
	for _, tt := range tests {
		if got := tagMatches(tt.tag, tt.term); got != tt.match {
			t.Errorf("tagMatches(%q, %q) = %v, want %v", tt.tag, tt.term, got, tt.match)
		}
	}
}
