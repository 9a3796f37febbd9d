// Package captions asks a generative model for a caption suggestion based
// on a post's images. The boundary contract is text in, text out: failures
// are reported as a readable fallback message, never as an error.
package captions

import (
	"context"
	"fmt"
	"strings"

	"github.com/arypfer/Proty-Content-Calendar/app/models"

	"google.golang.org/genai"
)

// FallbackMessage is returned whenever a suggestion cannot be produced.
const FallbackMessage = "Caption suggestion is unavailable right now. Please write a caption manually."

const defaultModel = "gemini-2.0-flash"

const prompt = "Write one engaging social media caption for a post made of these images. Reply with the caption text only."

// Suggester produces a caption suggestion for an ordered image carousel.
// Callers only invoke it with at least one image present.
type Suggester interface {
	Suggest(ctx context.Context, images []models.Image) string
}

// GenAISuggester generates captions using Google's Gemini API.
type GenAISuggester struct {
	client *genai.Client
	model  string
}

// NewGenAISuggester creates a new Gemini-backed suggester.
func NewGenAISuggester(ctx context.Context, apiKey, model string) (*GenAISuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAISuggester{
		client: client,
		model:  model,
	}, nil
}

// Suggest builds one multimodal request from the images in carousel order.
// Any failure, including an empty response, collapses to FallbackMessage.
func (s *GenAISuggester) Suggest(ctx context.Context, images []models.Image) string {
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return FallbackMessage
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return FallbackMessage
	}
	return text
}

// DisabledSuggester stands in when no API key is configured.
type DisabledSuggester struct{}

func (DisabledSuggester) Suggest(ctx context.Context, images []models.Image) string {
	return FallbackMessage
}
