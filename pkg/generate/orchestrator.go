// Package generate sequences model selection, prompt construction, and the
// external generation boundaries, with a single fallback on failure.
package generate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/craftkit/stencil/pkg/adapter"
	"github.com/craftkit/stencil/pkg/artifact"
	"github.com/craftkit/stencil/pkg/catalog"
	"github.com/craftkit/stencil/pkg/prompt"
	"github.com/craftkit/stencil/pkg/router"
	"github.com/craftkit/stencil/pkg/template"
)

// ErrGenerationFailed signals that both the primary and the fallback
// generation calls failed. No further retries are attempted.
var ErrGenerationFailed = errors.New("generation failed")

// Options configures one generation request.
type Options struct {
	// UseAdvancedModel routes through the specialized model boundary.
	// When false the request goes straight to the standard boundary and
	// is never upgraded.
	UseAdvancedModel bool

	// ModelKey pins a catalog model. Keys absent from the catalog are
	// ignored and selection falls back to the router.
	ModelKey string

	Purpose   string
	MaxTokens int

	// Temperature and TopP apply to the primary call only; the fallback
	// boundary accepts a prompt and a token cap, nothing more.
	Temperature float64
	TopP        float64
}

// Orchestrator composes the router, the prompt builder, and the external
// boundaries. It holds no mutable state; one instance serves all callers.
type Orchestrator struct {
	router   *router.Router
	advanced adapter.TextGenerator
	standard adapter.TextGenerator
	images   adapter.ImageGenerator
	log      *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithImages sets the image-generation boundary.
func WithImages(ig adapter.ImageGenerator) Option {
	return func(o *Orchestrator) {
		o.images = ig
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// New creates an orchestrator over the advanced and standard text
// boundaries.
func New(r *router.Router, advanced, standard adapter.TextGenerator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		router:   r,
		advanced: advanced,
		standard: standard,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// attemptState is the two-branch retry machine: primary, then fallback,
// then done or failed. Exactly one call per state.
type attemptState int

const (
	statePrimary attemptState = iota
	stateFallback
)

// Generate picks a model, builds the category prompt, and invokes the
// primary boundary; on failure it retries exactly once on the standard
// boundary with the original prompt. Both failing surfaces
// ErrGenerationFailed.
func (o *Orchestrator) Generate(ctx context.Context, c template.Category, fields template.Values, opts Options) (*artifact.Artifact, error) {
	if opts.Purpose == "" {
		opts.Purpose = "general"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2000
	}
	if opts.Temperature <= 0 {
		opts.Temperature = 0.7
	}
	if opts.TopP <= 0 {
		opts.TopP = 0.9
	}

	model := o.resolveModel(c, opts)

	text, err := prompt.Build(c, fields)
	if errors.Is(err, prompt.ErrUnsupportedCategory) {
		text = prompt.Generic(c, fields)
	} else if err != nil {
		return nil, err
	}

	state := statePrimary
	if !opts.UseAdvancedModel {
		state = stateFallback
	}

	var lastErr error
	for ; state <= stateFallback; state++ {
		switch state {
		case statePrimary:
			resp, callErr := o.advanced.Generate(ctx, adapter.Request{
				Model:       model.ProviderModelID,
				System:      prompt.System(c, model.Description, opts.Purpose),
				Prompt:      text,
				MaxTokens:   opts.MaxTokens,
				Temperature: opts.Temperature,
				TopP:        opts.TopP,
			})
			if callErr == nil {
				return artifact.New(resp.Content, model.Key, c, text), nil
			}
			lastErr = callErr
			o.log.Warn("primary generation failed, falling back",
				zap.String("model", model.Key),
				zap.String("category", string(c)),
				zap.Bool("transient", adapter.IsTransient(callErr)),
				zap.Error(callErr))

		case stateFallback:
			// The original prompt is reused; nothing is rebuilt here.
			resp, callErr := o.standard.Generate(ctx, adapter.Request{
				Prompt:    text,
				MaxTokens: opts.MaxTokens,
			})
			if callErr == nil {
				a := artifact.New(resp.Content, o.standard.Name(), c, text)
				a.Fallback = true
				return a, nil
			}
			lastErr = callErr
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
}

// Enhance asks the standard boundary to enrich a prompt, returning the
// original unchanged when the call fails.
func (o *Orchestrator) Enhance(ctx context.Context, text string) string {
	resp, err := o.standard.Generate(ctx, adapter.Request{
		Prompt:    prompt.Enhance(text),
		MaxTokens: 500,
	})
	if err != nil || resp.Content == "" {
		o.log.Debug("prompt enhancement failed", zap.Error(err))
		return text
	}
	return resp.Content
}

// resolveModel honors an explicit catalog key when present, otherwise
// defers to the router.
func (o *Orchestrator) resolveModel(c template.Category, opts Options) catalog.Descriptor {
	if opts.ModelKey != "" {
		if found, ok := o.router.Catalog().Lookup(opts.ModelKey); ok {
			return found
		}
		o.log.Debug("unknown model key, using automatic selection",
			zap.String("model_key", opts.ModelKey))
	}
	return o.router.Select(string(c), opts.Purpose)
}
