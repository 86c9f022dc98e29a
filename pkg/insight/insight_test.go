package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftkit/stencil/pkg/adapter"
)

func newSerperServer(t *testing.T, organic, news []serperResult) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		var req serperRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Q)

		resp := serperResponse{}
		switch r.URL.Path {
		case "/news":
			resp.News = news
		default:
			resp.Organic = organic
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestSerperClient_Search(t *testing.T) {
	srv := newSerperServer(t,
		[]serperResult{{Title: "a", Link: "https://a", Snippet: "organic snippet"}},
		[]serperResult{{Title: "b", Link: "https://b", Snippet: "news snippet"}},
	)
	defer srv.Close()

	c := NewSerperClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))

	organic, err := c.Search(context.Background(), "query", Organic, 10)
	require.NoError(t, err)
	require.Len(t, organic.Organic, 1)
	assert.Equal(t, "organic snippet", organic.Organic[0].Snippet)

	news, err := c.Search(context.Background(), "query", News, 10)
	require.NoError(t, err)
	require.Len(t, news.News, 1)
	assert.Equal(t, "news snippet", news.News[0].Snippet)
}

func TestSerperClient_RequiresAPIKey(t *testing.T) {
	c := NewSerperClient(WithAPIKey(""))

	assert.False(t, c.Available())
	_, err := c.Search(context.Background(), "query", Organic, 10)
	assert.Error(t, err)
}

func TestSerperClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewSerperClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "query", Organic, 10)
	assert.ErrorContains(t, err, "status 429")
}

// staticTextGen returns fixed content for every request.
type staticTextGen struct{ content string }

func (s staticTextGen) Name() string { return "static" }

func (s staticTextGen) Generate(_ context.Context, _ adapter.Request) (*adapter.Response, error) {
	return &adapter.Response{Content: s.content}, nil
}

func TestExtractor_PainPoints(t *testing.T) {
	organic := make([]serperResult, 7)
	for i := range organic {
		organic[i] = serperResult{Snippet: "organic"}
	}
	srv := newSerperServer(t, organic, []serperResult{{Snippet: "news"}})
	defer srv.Close()

	searcher := NewSerperClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	ext := NewExtractor(searcher, staticTextGen{
		content: "1. Too many tools\n\n2. No engagement\n3. Algorithm changes\n4. Time pressure\n5. Burnout\n6. Extra point",
	}, nil)

	points, err := ext.PainPoints(context.Background(), "startup founders")
	require.NoError(t, err)
	require.Len(t, points, 5, "pain points are capped at five")
	assert.Equal(t, "1. Too many tools", points[0])
	assert.NotContains(t, points, "6. Extra point")
}

func TestExtractor_NoSnippets(t *testing.T) {
	srv := newSerperServer(t, nil, nil)
	defer srv.Close()

	searcher := NewSerperClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	ext := NewExtractor(searcher, adapter.NewFailingAdapter(nil), nil)

	points, err := ext.PainPoints(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, points, "no snippets should short-circuit before the model call")
}

func TestExtractor_ModelFailure(t *testing.T) {
	srv := newSerperServer(t, []serperResult{{Snippet: "s"}}, nil)
	defer srv.Close()

	searcher := NewSerperClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	ext := NewExtractor(searcher, adapter.NewFailingAdapter(nil), nil)

	_, err := ext.PainPoints(context.Background(), "audience")
	assert.ErrorContains(t, err, "insight extraction failed")
}
