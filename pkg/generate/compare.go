package generate

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/craftkit/stencil/pkg/adapter"
	"github.com/craftkit/stencil/pkg/prompt"
	"github.com/craftkit/stencil/pkg/template"
)

// ModelResult pairs one comparison output with the model that produced it.
type ModelResult struct {
	ModelKey string
	Content  string
}

// CompareModels fires one generation call per requested catalog key
// concurrently and returns only the successful results, in no particular
// order. Failed calls are dropped silently; an empty slice means every
// call failed. Unknown keys are skipped up front.
func (o *Orchestrator) CompareModels(ctx context.Context, text string, c template.Category, keys []string) []ModelResult {
	targets := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := o.router.Catalog().Lookup(key); ok {
			targets = append(targets, key)
		} else {
			o.log.Debug("skipping unknown model key", zap.String("model_key", key))
		}
	}
	if len(targets) == 0 {
		selected := o.router.Select(string(c), "general")
		targets = append(targets, selected.Key)
	}

	var (
		mu      sync.Mutex
		results []ModelResult
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, key := range targets {
		d, _ := o.router.Catalog().Lookup(key)
		g.Go(func() error {
			resp, err := o.advanced.Generate(gctx, adapter.Request{
				Model:       d.ProviderModelID,
				System:      prompt.System(c, d.Description, "general"),
				Prompt:      text,
				MaxTokens:   1500,
				Temperature: 0.7,
				TopP:        0.9,
			})
			if err != nil {
				// Best-effort fan-out: losing one model is not an error.
				o.log.Debug("comparison call failed",
					zap.String("model_key", d.Key),
					zap.Bool("transient", adapter.IsTransient(err)),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			results = append(results, ModelResult{ModelKey: d.Key, Content: resp.Content})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// DesignImages generates the three preview images for a design template
// concurrently, dropping any prompt whose call failed.
func (o *Orchestrator) DesignImages(ctx context.Context, fields template.Values) []adapter.Image {
	if o.images == nil {
		return nil
	}

	prompts := prompt.DesignImages(fields)
	var (
		mu     sync.Mutex
		images []adapter.Image
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range prompts {
		g.Go(func() error {
			out, err := o.images.GenerateImages(gctx, adapter.ImageRequest{
				Prompt:  p,
				Size:    "1024x1024",
				Quality: "high",
				Count:   1,
			})
			if err != nil {
				o.log.Debug("image generation failed", zap.String("prompt", p), zap.Error(err))
				return nil
			}
			mu.Lock()
			images = append(images, out...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return images
}
