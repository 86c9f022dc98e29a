// Package prompt renders the instruction strings sent to text-generation
// models. Each specialized category has one fixed template; field values
// fall back to category-specific defaults when absent.
package prompt

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/craftkit/stencil/pkg/template"
)

// ErrUnsupportedCategory is returned by Build for categories without a
// specialized template. Callers route those through Generic instead.
var ErrUnsupportedCategory = errors.New("no specialized prompt template for category")

// Build renders the specialized instruction string for a category.
func Build(c template.Category, fields template.Values) (string, error) {
	switch c {
	case template.Documents:
		return fmt.Sprintf(
			"Create a professional %s template for %s. Company: %s. Industry: %s. Tone: %s. Experience: %s years. Skills: %s. "+
				"Include placeholder variables like {{name}}, {{company}}, {{position}}, {{skills}} for easy customization. Make it ATS-friendly and modern.",
			fields.Get("position", "document"),
			fields.Get("name", "the user"),
			fields.Get("company", "N/A"),
			fields.Get("industry", "General"),
			fields.Get("tone", "Professional"),
			fields.Get("experience", "N/A"),
			fields.Get("skills", "N/A"),
		), nil
	case template.Designs:
		return fmt.Sprintf(
			"Create a %s design template for %q. Company/Brand: %s. Description: %s. Colors: %s. Target Audience: %s. Call to Action: %s. "+
				"Provide HTML/CSS structure with placeholder variables and responsive design.",
			fields.Get("style", "modern"),
			fields.Get("title", "Design"),
			fields.Get("company", "N/A"),
			fields.Get("description", "N/A"),
			fields.Get("colors", "Professional colors"),
			fields.Get("target_audience", "General"),
			fields.Get("call_to_action", "Learn More"),
		), nil
	case template.Web:
		return fmt.Sprintf(
			"Create a %s website template for %q. Company: %s. Description: %s. Industry: %s. Features: %s. Target Audience: %s. "+
				"Include HTML structure with placeholder variables, responsive design, and modern UI components.",
			fields.Get("style", "modern"),
			fields.Get("siteName", "Website"),
			fields.Get("company", "N/A"),
			fields.Get("description", "N/A"),
			fields.Get("industry", "General"),
			fields.Get("features", "Standard features"),
			fields.Get("target_audience", "General"),
		), nil
	case template.Presentations:
		return fmt.Sprintf(
			"Create a %s presentation template titled %q. Company: %s. Audience: %s. Duration: %s minutes. Key Points: %s. Tone: %s. "+
				"Include slide structure with placeholder variables and speaker notes.",
			fields.Get("purpose", "professional"),
			fields.Get("title", "Presentation"),
			fields.Get("company", "N/A"),
			fields.Get("audience", "General"),
			fields.Get("duration", "N/A"),
			fields.Get("key_points", "Standard content"),
			fields.Get("tone", "Professional"),
		), nil
	case template.Email:
		return fmt.Sprintf(
			"Create a %s email template with subject %q. Company: %s. Audience: %s. Tone: %s. Call to Action: %s. Pain Points: %s. "+
				"Include HTML email structure with placeholder variables and mobile-responsive design.",
			fields.Get("purpose", "professional"),
			fields.Get("subject", "Email"),
			fields.Get("company", "N/A"),
			fields.Get("audience", "General"),
			fields.Get("tone", "Professional"),
			fields.Get("call_to_action", "Learn More"),
			fields.Get("pain_points", "General challenges"),
		), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedCategory, c)
}

// Generic renders an instruction string for categories without a
// specialized template, embedding the raw field bag as key: value lines.
func Generic(c template.Category, fields template.Values) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a professional %s template with the following information:\n", c)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s: %s\n", k, fields.Get(k, "N/A"))
	}

	sb.WriteString("\nGenerate a complete, professional template with proper formatting, sections, and placeholder variables like {{name}}, {{company}}, etc.")
	return sb.String()
}

// System derives the system instruction for a generation call from the
// selected model's description.
func System(c template.Category, modelDescription, purpose string) string {
	if purpose == "" {
		purpose = "general"
	}
	return fmt.Sprintf(
		"You are an expert %s template creator. %s. Generate professional, high-quality content that is ready to use. Focus on %s aspects.",
		c, modelDescription, purpose,
	)
}

// Enhance asks a model to enrich an existing template-creation prompt.
func Enhance(current string) string {
	return fmt.Sprintf(
		"Enhance this template creation prompt to be more detailed and specific. Original prompt: %q. "+
			"Make it more comprehensive and include specific formatting instructions.",
		current,
	)
}

// DesignImages returns the three image prompts generated for a design
// template's preview art.
func DesignImages(fields template.Values) []string {
	title := fields.Get("title", "Design")
	style := fields.Get("style", "modern")
	return []string{
		fmt.Sprintf("%s design for %q with %s", style, title, fields.Get("colors", "professional colors")),
		fmt.Sprintf("Modern %s layout for %s targeting %s", style, title, fields.Get("target_audience", "general audience")),
		fmt.Sprintf("Creative %s visual for %q with clean typography", style, title),
	}
}

// InsightQuery builds the web search query used to surface audience pain
// points.
func InsightQuery(audience string) string {
	return fmt.Sprintf("%s social media pain points problems challenges", audience)
}

// InsightExtraction asks a model to distill search snippets into five pain
// points, one per line.
func InsightExtraction(audience string, snippets []string) string {
	return fmt.Sprintf(
		"Analyze these search results about %s and extract 5 key pain points or challenges they face on social media: %s. Return as a simple list.",
		audience, strings.Join(snippets, " "),
	)
}
