package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface on top of the
// Gemini API.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (CompletionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateCourse asks Gemini for an itinerary. JSON response mode is tried
// first; when that call fails the request is reissued once in plain-text
// mode, since some models reject the MIME-type constraint. Generation
// settings favor diversity so repeated requests for the same traveler
// produce different courses.
func (c *GeminiCompletionClient) GenerateCourse(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.9)
	m.SetTopK(40)
	m.SetTopP(0.95)
	m.SetMaxOutputTokens(4096)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m.ResponseMIMEType = "application/json"
	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		m.ResponseMIMEType = ""
		resp, err = m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("%w: gemini: %v", ErrAIUnavailable, err)
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no content", ErrAIResponseShape)
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}
