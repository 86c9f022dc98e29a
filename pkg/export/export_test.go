package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"html", HTML, false},
		{"HTML", HTML, false},
		{"  pdf ", PDF, false},
		{"png", PNG, false},
		{"docx", DOCX, false},
		{"markdown", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "welcome-email", HTML, "<h1>Hello</h1>")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "welcome-email.html" {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("HTML export missing document shell")
	}
	if !strings.Contains(out, "<title>welcome-email</title>") {
		t.Error("HTML export missing title")
	}
	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Error("HTML export missing content")
	}
}

func TestWriteDOCXFallsBackToText(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "contract", DOCX, "Terms and conditions")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "contract.txt" {
		t.Errorf("docx export should write a .txt file, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "Terms and conditions" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWritePlainFormats(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{PDF, PNG} {
		path, err := Write(dir, "asset", f, "raw")
		if err != nil {
			t.Fatalf("Write(%s): %v", f, err)
		}
		want := "asset." + string(f)
		if filepath.Base(path) != want {
			t.Errorf("Write(%s) path = %s, want %s", f, filepath.Base(path), want)
		}
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := Write(dir, "doc", HTML, "x"); err != nil {
		t.Fatalf("Write into missing directory: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("export directory not created: %v", err)
	}
}
