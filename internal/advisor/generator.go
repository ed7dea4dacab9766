package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generator produces a persona-styled reply from a system prompt and a
// user prompt. Implementations are expected to be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GeminiGenerator calls the Gemini API to render advice text.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	contents, config := buildRequest(systemPrompt, userPrompt)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

// buildRequest assembles the contents and config for one generation call.
// The persona prompt rides in SystemInstruction; the contents list carries
// only user-role content, the two roles the API accepts being user and model.
func buildRequest(systemPrompt, userPrompt string) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: userPrompt}}},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	return contents, config
}

// MockGenerator is a canned Generator for tests.
type MockGenerator struct {
	Reply string
	Err   error

	Calls         int
	LastSystem    string
	LastUserInput string
}

func (m *MockGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.Calls++
	m.LastSystem = systemPrompt
	m.LastUserInput = userPrompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
