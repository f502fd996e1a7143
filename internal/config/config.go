package config

import "os"

type Config struct {
	Port string

	GeminiAPIKey string
	ModelName    string

	// UseMockLLM swaps the Gemini client for the canned mock (useful for dev).
	UseMockLLM bool

	// GatewayURL is where the CLI front end finds the relay.
	GatewayURL string

	// MaxUploadMemory bounds in-memory multipart parsing on the relay.
	MaxUploadMemory int64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	return &Config{
		Port: getEnv("CHATBOT_PORT", "8080"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("CHATBOT_MODEL_NAME", "gemini-2.5-flash"),

		UseMockLLM: getBoolEnv("CHATBOT_USE_MOCK_LLM", false),

		GatewayURL: getEnv("CHATBOT_GATEWAY_URL", "http://localhost:8080"),

		MaxUploadMemory: 10 << 20,
	}
}
