package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/craftkit/stencil/pkg/adapter"
	"github.com/craftkit/stencil/pkg/template"
)

// selectiveFailAdapter fails calls for one model ID and succeeds otherwise.
type selectiveFailAdapter struct {
	failModel string
}

func (a *selectiveFailAdapter) Name() string { return "selective" }

func (a *selectiveFailAdapter) Generate(_ context.Context, req adapter.Request) (*adapter.Response, error) {
	if req.Model == a.failModel {
		return nil, errors.New("model unavailable")
	}
	return &adapter.Response{Content: "content from " + req.Model}, nil
}

func TestCompareModels_DropsFailedCalls(t *testing.T) {
	o := newTestOrchestrator(
		&selectiveFailAdapter{failModel: "qwen/qwen3-235b-a22b:free"},
		adapter.NewMockAdapter(),
	)

	results := o.CompareModels(context.Background(), "prompt", template.Documents,
		[]string{"kimi-dev", "qwen3"})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ModelKey != "kimi-dev" {
		t.Errorf("surviving result = %q, want kimi-dev", results[0].ModelKey)
	}
}

func TestCompareModels_AllFail(t *testing.T) {
	o := newTestOrchestrator(adapter.NewFailingAdapter(nil), adapter.NewMockAdapter())

	results := o.CompareModels(context.Background(), "prompt", template.Documents,
		[]string{"kimi-dev", "qwen3"})
	if len(results) != 0 {
		t.Errorf("got %d results, want 0 when every call fails", len(results))
	}
}

func TestCompareModels_SkipsUnknownKeys(t *testing.T) {
	advanced := adapter.NewMockAdapter()
	o := newTestOrchestrator(advanced, adapter.NewMockAdapter())

	results := o.CompareModels(context.Background(), "prompt", template.Documents,
		[]string{"kimi-dev", "not-a-model"})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ModelKey != "kimi-dev" {
		t.Errorf("result model = %q, want kimi-dev", results[0].ModelKey)
	}
	if advanced.Calls() != 1 {
		t.Errorf("advanced called %d times, want 1 (unknown key skipped)", advanced.Calls())
	}
}

func TestCompareModels_EmptyKeysUseSelection(t *testing.T) {
	advanced := adapter.NewMockAdapter()
	o := newTestOrchestrator(advanced, adapter.NewMockAdapter())

	results := o.CompareModels(context.Background(), "prompt", template.Email, nil)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ModelKey != "mistral-small" {
		t.Errorf("result model = %q, want the category's selection", results[0].ModelKey)
	}
}

func TestDesignImages_DropsFailures(t *testing.T) {
	images := &adapter.MockImageAdapter{
		Images: []adapter.Image{{URL: "https://images.invalid/a.png"}},
	}
	o := newTestOrchestrator(adapter.NewMockAdapter(), adapter.NewMockAdapter(),
		WithImages(images))

	out := o.DesignImages(context.Background(), template.Values{
		"title": "Summer Sale", "style": "Bold",
	})
	// Three prompts, one canned image each.
	if len(out) != 3 {
		t.Errorf("got %d images, want 3", len(out))
	}
}

func TestDesignImages_NoBoundaryConfigured(t *testing.T) {
	o := newTestOrchestrator(adapter.NewMockAdapter(), adapter.NewMockAdapter())
	if out := o.DesignImages(context.Background(), template.Values{}); out != nil {
		t.Errorf("expected nil without an image boundary, got %v", out)
	}
}
