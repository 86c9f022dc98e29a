package adapter

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleAdapter implements both TextGenerator and ImageGenerator through
// the Gemini API. Image generation backs the design-template preview art.
type GoogleAdapter struct {
	client     *genai.Client
	imageModel string
}

// NewGoogleAdapter creates a new Google Gemini adapter.
func NewGoogleAdapter(apiKey string) (*GoogleAdapter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &GoogleAdapter{
		client:     client,
		imageModel: "imagen-3.0-generate-002",
	}, nil
}

// Name returns the adapter identifier.
func (a *GoogleAdapter) Name() string {
	return "google"
}

// Generate sends a prompt to Gemini.
func (a *GoogleAdapter) Generate(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var cfg *genai.GenerateContentConfig
	if req.System != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		}
	}

	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("google API error: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &AdapterError{Err: fmt.Errorf("google returned no candidates")}
	}

	var content string
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
	}

	return &Response{Content: content}, nil
}

// GenerateImages produces preview images for a prompt via Imagen.
func (a *GoogleAdapter) GenerateImages(ctx context.Context, req ImageRequest) ([]Image, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	resp, err := a.client.Models.GenerateImages(ctx, a.imageModel, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
	})
	if err != nil {
		return nil, fmt.Errorf("google image API error: %w", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, &AdapterError{Err: fmt.Errorf("google returned no images")}
	}

	images := make([]Image, 0, len(resp.GeneratedImages))
	for _, g := range resp.GeneratedImages {
		if g.Image == nil {
			continue
		}
		images = append(images, Image{
			URL:      g.Image.GCSURI,
			MIMEType: g.Image.MIMEType,
			Data:     g.Image.ImageBytes,
		})
	}
	return images, nil
}
