package course_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"jejuquiz/internal/api/controllers"
	"jejuquiz/internal/datasets"
	"jejuquiz/internal/services"
	"jejuquiz/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideCourseService,
	ProvideCourseController)

// CompletionConfig holds configuration for the generative-AI client.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates the AI client chosen by AI_PROVIDER.
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	client, err := utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	return client, nil
}

func ProvideCourseService(
	store *datasets.Store,
	aiClient utils.CompletionClientInterface,
) services.CourseServiceInterface {
	return services.NewCourseService(store, aiClient)
}

func ProvideCourseController(
	courseService services.CourseServiceInterface,
) *controllers.CourseController {
	return controllers.NewCourseController(courseService)
}

func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Println("GEMINI_API_KEY is not set; course generation will answer 500 until it is configured")
		}
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Println("OPENAI_API_KEY is not set; course generation will answer 500 until it is configured")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
