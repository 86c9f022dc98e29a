// Package adapter holds the external-call boundaries: text generation,
// image generation, and the provider clients implementing them.
package adapter

import "context"

// Request carries one text-generation call.
type Request struct {
	// Model is the provider-side model ID; empty means the adapter's
	// fixed default.
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Response is the text returned by a generation call.
type Response struct {
	Content string
}

// TextGenerator is the boundary for text-generation providers.
type TextGenerator interface {
	// Generate sends a request to the provider and returns its content.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name returns the adapter's identifier.
	Name() string
}

// Image is one generated image reference.
type Image struct {
	URL      string
	MIMEType string
	Data     []byte
}

// ImageRequest carries one image-generation call.
type ImageRequest struct {
	Prompt  string
	Size    string
	Quality string
	Count   int
}

// ImageGenerator is the boundary for image-generation providers.
type ImageGenerator interface {
	GenerateImages(ctx context.Context, req ImageRequest) ([]Image, error)
	Name() string
}
