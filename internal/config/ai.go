package config

import "os"

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Vision is for per-section screenshot scoring (multimodal)
	Vision string `json:"vision"`

	// Refine is for the follow-up score refinement pass (text only)
	Refine string `json:"refine"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`

	// MaxImagesPerRequest caps screenshots per oracle call. Requests over
	// the cap are rejected, never silently truncated.
	MaxImagesPerRequest int `json:"maxImagesPerRequest"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Vision: getEnvOrDefault("GEMINI_MODEL_VISION", "gemini-2.0-flash"),
			Refine: getEnvOrDefault("GEMINI_MODEL_REFINE", "gemini-2.0-flash"),
		},
		TimeoutMS:           60000, // vision calls carry images, allow a minute
		MaxImagesPerRequest: 10,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
