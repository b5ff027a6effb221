package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the single seam between the course pipeline
// and whichever text-generation provider is configured.
type CompletionClientInterface interface {
	// GenerateCourse submits an itinerary prompt and returns the raw model
	// text, which is expected (but not guaranteed) to contain JSON.
	GenerateCourse(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewCompletionClient builds a provider client from config. A missing API
// key is not a startup error: the returned client fails each generation
// call with ErrAIUnavailable, so the rest of the service keeps serving and
// /api/check-env can report the gap.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		if apiKey == "" {
			return unconfiguredCompletionClient{provider: "gemini"}, nil
		}
		return NewGeminiCompletionClient(apiKey, model)
	case "openai":
		if apiKey == "" {
			return unconfiguredCompletionClient{provider: "openai"}, nil
		}
		return NewOpenAICompletionClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s. Use 'gemini' or 'openai'", provider)
	}
}

// unconfiguredCompletionClient stands in when no API key is set.
type unconfiguredCompletionClient struct {
	provider string
}

func (u unconfiguredCompletionClient) GenerateCourse(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %s api key not configured", ErrAIUnavailable, u.provider)
}

func (u unconfiguredCompletionClient) Close() error {
	return nil
}
