// Package catalog defines the static registry of AI text-generation models
// available for template creation.
package catalog

// Descriptor describes one model backend: its identity, the provider-side
// model ID used on the wire, and the use-case tags it is suited for.
type Descriptor struct {
	Key             string
	DisplayName     string
	ProviderModelID string
	Description     string
	Tags            []string
}

// Catalog is an ordered, immutable set of model descriptors.
// Definition order matters: selection ties break on the earlier entry.
type Catalog struct {
	entries []Descriptor
	byKey   map[string]int
}

// New builds a catalog from descriptors, preserving their order.
func New(entries ...Descriptor) *Catalog {
	c := &Catalog{
		entries: entries,
		byKey:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		c.byKey[e.Key] = i
	}
	return c
}

// Entries returns the descriptors in definition order.
func (c *Catalog) Entries() []Descriptor {
	out := make([]Descriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the descriptor for a key.
func (c *Catalog) Lookup(key string) (Descriptor, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Descriptor{}, false
	}
	return c.entries[i], true
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DefaultKey is the global fallback model used when no category-specific
// choice applies.
const DefaultKey = "llama-nemotron"

// Default returns the global fallback descriptor.
func (c *Catalog) Default() Descriptor {
	if d, ok := c.Lookup(DefaultKey); ok {
		return d
	}
	// A catalog without the global default is a configuration error;
	// fall back to the first entry so selection stays total.
	return c.entries[0]
}

// Builtin returns the standard ten-model catalog.
func Builtin() *Catalog {
	return New(
		Descriptor{
			Key:             "mistral-small",
			DisplayName:     "Mistral Small",
			ProviderModelID: "mistralai/mistral-small-3.2-24b-instruct:free",
			Description:     "Excellent for copywriting and marketing content",
			Tags:            []string{"email", "marketing", "copywriting", "social-media"},
		},
		Descriptor{
			Key:             "kimi-dev",
			DisplayName:     "Kimi Dev 72B",
			ProviderModelID: "moonshotai/kimi-dev-72b:free",
			Description:     "Advanced reasoning for complex document templates",
			Tags:            []string{"documents", "contracts", "reports", "technical"},
		},
		Descriptor{
			Key:             "deepcoder",
			DisplayName:     "DeepCoder 14B",
			ProviderModelID: "agentica-org/deepcoder-14b-preview:free",
			Description:     "Specialized for web templates and code generation",
			Tags:            []string{"web", "html", "css", "landing-pages"},
		},
		Descriptor{
			Key:             "kimi-vl",
			DisplayName:     "Kimi VL",
			ProviderModelID: "moonshotai/kimi-vl-a3b-thinking:free",
			Description:     "Visual understanding for design templates",
			Tags:            []string{"design", "visual", "layout", "graphics"},
		},
		Descriptor{
			Key:             "qwen3",
			DisplayName:     "Qwen3 235B",
			ProviderModelID: "qwen/qwen3-235b-a22b:free",
			Description:     "Excellent for presentations and structured content",
			Tags:            []string{"presentations", "slides", "structured", "business"},
		},
		Descriptor{
			Key:             "deepseek-r1",
			DisplayName:     "DeepSeek R1 Chimera",
			ProviderModelID: "tngtech/deepseek-r1t2-chimera:free",
			Description:     "Advanced reasoning for complex workflows",
			Tags:            []string{"workflow", "logic", "complex-reasoning"},
		},
		Descriptor{
			Key:             "llama-nemotron",
			DisplayName:     "Llama Nemotron Ultra",
			ProviderModelID: "nvidia/llama-3.1-nemotron-ultra-253b-v1:free",
			Description:     "High-performance model for premium templates",
			Tags:            []string{"premium", "high-quality", "professional"},
		},
		Descriptor{
			Key:             "gemma-3n",
			DisplayName:     "Gemma 3N",
			ProviderModelID: "google/gemma-3n-e4b-it:free",
			Description:     "Creative content generation",
			Tags:            []string{"creative", "storytelling", "content"},
		},
		Descriptor{
			Key:             "mai-ds",
			DisplayName:     "MAI DS R1",
			ProviderModelID: "microsoft/mai-ds-r1:free",
			Description:     "Microsoft specialized model for business templates",
			Tags:            []string{"business", "enterprise", "professional"},
		},
		Descriptor{
			Key:             "qwq-32b",
			DisplayName:     "QwQ 32B",
			ProviderModelID: "arliai/qwq-32b-arliai-rpr-v1:free",
			Description:     "Advanced reasoning and problem solving",
			Tags:            []string{"problem-solving", "analysis", "reasoning"},
		},
	)
}
