package adapter

import (
	"context"
	"fmt"
	"sync"
)

// MockAdapter returns deterministic responses for local runs and tests.
// Responses are keyed by model ID first, then by prompt.
type MockAdapter struct {
	mu              sync.Mutex
	responses       map[string]string
	defaultResponse string
	err             error
	calls           int
	lastReq         Request
}

// NewMockAdapter creates a mock adapter with a default response.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{
		responses:       make(map[string]string),
		defaultResponse: "mock response:",
	}
}

// NewFailingAdapter creates a mock adapter that always errors.
func NewFailingAdapter(err error) *MockAdapter {
	if err == nil {
		err = fmt.Errorf("mock adapter failure")
	}
	return &MockAdapter{
		responses:       make(map[string]string),
		defaultResponse: "mock response:",
		err:             err,
	}
}

// Respond registers a canned response for a model ID or prompt.
func (a *MockAdapter) Respond(key, response string) *MockAdapter {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[key] = response
	return a
}

// Calls returns the number of Generate invocations so far.
func (a *MockAdapter) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// LastRequest returns the most recent request passed to Generate.
func (a *MockAdapter) LastRequest() Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastReq
}

// Name returns the adapter identifier.
func (a *MockAdapter) Name() string {
	return "mock"
}

// Generate returns a deterministic response for the request.
func (a *MockAdapter) Generate(_ context.Context, req Request) (*Response, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.lastReq = req

	if a.err != nil {
		return nil, a.err
	}
	if response, ok := a.responses[req.Model]; ok {
		return &Response{Content: response}, nil
	}
	if response, ok := a.responses[req.Prompt]; ok {
		return &Response{Content: response}, nil
	}
	return &Response{Content: fmt.Sprintf("%s\n%s", a.defaultResponse, req.Prompt)}, nil
}

// MockImageAdapter returns canned images, or an error when set.
type MockImageAdapter struct {
	Images []Image
	Err    error
}

// Name returns the adapter identifier.
func (a *MockImageAdapter) Name() string {
	return "mock-image"
}

// GenerateImages returns the canned image list.
func (a *MockImageAdapter) GenerateImages(_ context.Context, req ImageRequest) ([]Image, error) {
	if a.Err != nil {
		return nil, a.Err
	}
	if len(a.Images) > 0 {
		return a.Images, nil
	}
	return []Image{{URL: "https://images.invalid/" + req.Prompt}}, nil
}
