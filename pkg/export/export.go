// Package export writes generated template content to disk in the
// supported output formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is an export output format.
type Format string

const (
	HTML Format = "html"
	PDF  Format = "pdf"
	PNG  Format = "png"
	DOCX Format = "docx"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case HTML, PDF, PNG, DOCX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, 'Segoe UI', sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; color: #1a1a1a; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Write serializes content into dir under name.<ext> and returns the
// written path. HTML is wrapped in a minimal styled shell; every other
// format is written as plain text, with docx mapped to a .txt file.
func Write(dir, name string, format Format, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	var path string
	var data []byte
	switch format {
	case HTML:
		path = filepath.Join(dir, name+".html")
		data = []byte(fmt.Sprintf(htmlShell, name, content))
	case DOCX:
		// Rich DOCX packaging is out of scope; ship plain text.
		path = filepath.Join(dir, name+".txt")
		data = []byte(content)
	default:
		path = filepath.Join(dir, name+"."+string(format))
		data = []byte(content)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
