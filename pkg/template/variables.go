package template

import (
	"regexp"
	"strings"
)

// Variable is a placeholder left in generated content for later
// substitution, e.g. {{company}}.
type Variable struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

// ExtractVariables scans generated content for {{name}} markers and returns
// one Variable per distinct key, in first-appearance order.
func ExtractVariables(content string) []Variable {
	seen := make(map[string]bool)
	var vars []Variable
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		key := m[1]
		if seen[key] {
			continue
		}
		seen[key] = true
		vars = append(vars, Variable{
			Key:   key,
			Label: labelFor(key),
			Type:  "text",
		})
	}
	return vars
}

// Substitute replaces {{name}} markers with values from the bag, leaving
// unmatched markers intact.
func Substitute(content string, values Values) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(m string) string {
		key := placeholderRe.FindStringSubmatch(m)[1]
		if v := values.Get(key, ""); v != "" {
			return v
		}
		return m
	})
}

// labelFor turns a snake_case key into a title-ish label.
func labelFor(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
