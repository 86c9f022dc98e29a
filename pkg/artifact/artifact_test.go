package artifact

import (
	"testing"

	"github.com/craftkit/stencil/pkg/template"
)

func TestNew(t *testing.T) {
	a := New("Dear {{name}}", "mistral-small", template.Email, "make an email")

	if a.ID == "" {
		t.Error("artifact has no ID")
	}
	if a.Hash == "" {
		t.Error("artifact has no hash")
	}
	if a.CreatedAt.IsZero() {
		t.Error("artifact has no timestamp")
	}
	if a.Fallback {
		t.Error("new artifact should not be marked fallback")
	}
}

func TestHashDependsOnContentAndModel(t *testing.T) {
	a := New("content", "mistral-small", template.Email, "p")
	b := New("content", "mistral-small", template.Email, "p")
	c := New("content", "qwen3", template.Email, "p")

	if a.Hash != b.Hash {
		t.Error("identical content/model/category should hash equally")
	}
	if a.Hash == c.Hash {
		t.Error("different model keys should hash differently")
	}
}

func TestVariables(t *testing.T) {
	a := New("Hi {{name}} from {{company}}", "kimi-dev", template.Documents, "p")
	vars := a.Variables()
	if len(vars) != 2 {
		t.Fatalf("got %d variables, want 2", len(vars))
	}
}

func TestWithMetadataDoesNotMutate(t *testing.T) {
	a := New("content", "kimi-dev", template.Documents, "p")
	b := a.WithMetadata("source", "test")

	if _, ok := a.Metadata["source"]; ok {
		t.Error("original artifact metadata was mutated")
	}
	if b.Metadata["source"] != "test" {
		t.Error("copy is missing the new metadata entry")
	}
	if a.ID != b.ID || a.Hash != b.Hash {
		t.Error("metadata copy changed identity fields")
	}
}
