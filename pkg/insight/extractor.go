package insight

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/craftkit/stencil/pkg/adapter"
	"github.com/craftkit/stencil/pkg/prompt"
)

const maxPainPoints = 5

// Extractor searches the web for an audience's pain points and distills
// them with a text-generation pass.
type Extractor struct {
	searcher Searcher
	textGen  adapter.TextGenerator
	log      *zap.Logger
}

// NewExtractor creates an extractor over a searcher and a text boundary.
func NewExtractor(s Searcher, tg adapter.TextGenerator, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{searcher: s, textGen: tg, log: log}
}

// PainPoints returns up to five pain points for the audience. News
// snippets come first, then at most five organic snippets. An audience
// with no search hits yields nil without calling the model.
func (e *Extractor) PainPoints(ctx context.Context, audience string) ([]string, error) {
	query := prompt.InsightQuery(audience)

	newsResp, err := e.searcher.Search(ctx, query, News, 10)
	if err != nil {
		return nil, fmt.Errorf("news search failed: %w", err)
	}
	organicResp, err := e.searcher.Search(ctx, query, Organic, 10)
	if err != nil {
		return nil, fmt.Errorf("organic search failed: %w", err)
	}

	var snippets []string
	for _, r := range newsResp.News {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}
	organic := organicResp.Organic
	if len(organic) > 5 {
		organic = organic[:5]
	}
	for _, r := range organic {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}

	if len(snippets) == 0 {
		e.log.Debug("no snippets found for audience", zap.String("audience", audience))
		return nil, nil
	}

	resp, err := e.textGen.Generate(ctx, adapter.Request{
		Prompt:    prompt.InsightExtraction(audience, snippets),
		MaxTokens: 300,
	})
	if err != nil {
		return nil, fmt.Errorf("insight extraction failed: %w", err)
	}

	var points []string
	for _, line := range strings.Split(resp.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		points = append(points, line)
		if len(points) == maxPainPoints {
			break
		}
	}
	return points, nil
}
