package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	OpenAI      OpenAIConfig
	AzureOpenAI AzureOpenAIConfig
	Gemini      GeminiConfig
	Zhipu       ZhipuConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type AzureOpenAIConfig struct {
	APIKey     string
	Endpoint   string
	Deployment string
	APIVersion string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ZhipuConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o"),
		},
		AzureOpenAI: AzureOpenAIConfig{
			APIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			Endpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			Deployment: getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
			APIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		},
		Zhipu: ZhipuConfig{
			APIKey:  getEnv("ZHIPU_API_KEY", ""),
			BaseURL: getEnv("ZHIPU_BASE_URL", "https://open.bigmodel.cn/api/paas/v4"),
			Model:   getEnv("ZHIPU_MODEL", "glm-4v"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
