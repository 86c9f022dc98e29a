// Package template defines the template domain: categories, per-category
// form field schemas, user-supplied field values, and generated records.
package template

import (
	"fmt"
	"strings"
	"time"
)

// Category is the template domain requested by the end user.
type Category string

const (
	Documents     Category = "documents"
	Designs       Category = "designs"
	Web           Category = "web"
	Presentations Category = "presentations"
	Email         Category = "email"
	Video         Category = "video"
	Events        Category = "events"
	Ecommerce     Category = "ecommerce"
	Social        Category = "social"
	Educational   Category = "educational"
)

// Known returns every category in display order.
func Known() []Category {
	return []Category{
		Documents, Designs, Web, Presentations, Email,
		Video, Events, Ecommerce, Social, Educational,
	}
}

// Specialized returns the categories that have a dedicated prompt template.
func Specialized() []Category {
	return []Category{Documents, Designs, Web, Presentations, Email}
}

// IsSpecialized reports whether the category has a dedicated prompt template.
func (c Category) IsSpecialized() bool {
	switch c {
	case Documents, Designs, Web, Presentations, Email:
		return true
	}
	return false
}

// ParseCategory validates a user-supplied category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Known() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Values is the bag of user-supplied form field values. Values may be
// strings, numbers, or dates; lookups coerce to string.
type Values map[string]any

// Get returns the value for key as a string, or fallback when the key is
// absent or empty.
func (v Values) Get(key, fallback string) string {
	raw, ok := v[key]
	if !ok || raw == nil {
		return fallback
	}
	var s string
	switch val := raw.(type) {
	case string:
		s = val
	case time.Time:
		s = val.Format("2006-01-02")
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprintf("%v", val)
	}
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Validate checks that every required field for the category is present
// and non-empty.
func (v Values) Validate(c Category) error {
	var missing []string
	for _, f := range FieldsFor(c) {
		if f.Required && v.Get(f.Key, "") == "" {
			missing = append(missing, f.Key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
