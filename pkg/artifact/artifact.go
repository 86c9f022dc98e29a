// Package artifact defines the immutable output of a generation call.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/craftkit/stencil/pkg/template"
)

// Artifact is one generated template body, paired with the model key that
// produced it and the category it was generated for. Artifacts are owned
// transiently by the caller until persisted.
type Artifact struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	ModelKey  string            `json:"model_key"`
	Category  template.Category `json:"category"`
	Prompt    string            `json:"prompt"`
	Fallback  bool              `json:"fallback,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Hash      string            `json:"hash"`
}

// New creates an artifact with a computed content hash.
func New(content, modelKey string, category template.Category, promptText string) *Artifact {
	a := &Artifact{
		ID:        uuid.NewString(),
		Content:   content,
		ModelKey:  modelKey,
		Category:  category,
		Prompt:    promptText,
		Metadata:  make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
	a.Hash = a.computeHash()
	return a
}

// Variables extracts the {{name}} placeholder markers left in the content.
func (a *Artifact) Variables() []template.Variable {
	return template.ExtractVariables(a.Content)
}

// WithMetadata returns a copy of the artifact with one extra metadata entry.
func (a *Artifact) WithMetadata(key, value string) *Artifact {
	meta := make(map[string]string, len(a.Metadata)+1)
	for k, v := range a.Metadata {
		meta[k] = v
	}
	meta[key] = value

	copied := *a
	copied.Metadata = meta
	return &copied
}

func (a *Artifact) computeHash() string {
	h := sha256.New()
	h.Write([]byte(a.Content))
	h.Write([]byte(a.ModelKey))
	h.Write([]byte(a.Category))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
