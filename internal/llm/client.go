package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over text-completion providers. Implementations
// must be safe for concurrent use; each call is independent and stateless.
type Client interface {
	// GenerateJSON sends a prompt expecting a strict-JSON object response,
	// sampled at the given temperature. The returned string is the raw JSON
	// text with any markdown code fences stripped.
	GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a client for the configured provider endpoint
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiClient(ctx, cfg)
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

var _ Client = (*GeminiClient)(nil)

func newGeminiClient(ctx context.Context, cfg *Config) (*GeminiClient, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		// Managed-endpoint mode: same client, different host. The API version
		// is part of the endpoint path contract.
		endpoint := cfg.Endpoint
		if cfg.APIVersion != "" {
			endpoint = strings.TrimSuffix(endpoint, "/") + "/" + cfg.APIVersion
		}
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: cfg}, nil
}

// GenerateJSON generates a JSON object response at the given temperature
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	model := c.client.GenerativeModel(c.config.ModelName())
	model.SetTemperature(temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse concatenates the text parts of the first candidate
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
