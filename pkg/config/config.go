// Package config loads API keys and generation settings from the config
// file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	OpenRouterAPIKey string
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	GoogleAPIKey     string
	SerperAPIKey     string
	DBPath           string
	Generation       GenerationConfig
	ConfigDir        string
}

// GenerationConfig carries the sampling defaults for generation calls.
type GenerationConfig struct {
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
	TopP        float64 `yaml:"top_p,omitempty"`
}

// FileConfig represents the structure of ~/.stencil/config.yaml
type FileConfig struct {
	APIKeys    APIKeysConfig    `yaml:"api_keys"`
	DBPath     string           `yaml:"db_path,omitempty"`
	Generation GenerationConfig `yaml:"generation,omitempty"`
}

// APIKeysConfig holds API key configuration from file.
type APIKeysConfig struct {
	OpenRouter string `yaml:"openrouter"`
	OpenAI     string `yaml:"openai"`
	Anthropic  string `yaml:"anthropic"`
	Google     string `yaml:"google"`
	Serper     string `yaml:"serper"`
}

// Load reads configuration from .env, the config file, and environment
// variables. Environment variables take precedence over file configuration.
func Load() (*Config, error) {
	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	fileConfig := loadFileConfig(filepath.Join(configDir, "config.yaml"))

	cfg := &Config{
		OpenRouterAPIKey: getEnvOrDefault("OPENROUTER_API_KEY", fileConfig.APIKeys.OpenRouter),
		OpenAIAPIKey:     getEnvOrDefault("OPENAI_API_KEY", fileConfig.APIKeys.OpenAI),
		AnthropicAPIKey:  getEnvOrDefault("ANTHROPIC_API_KEY", fileConfig.APIKeys.Anthropic),
		GoogleAPIKey:     getEnvOrDefault("GOOGLE_API_KEY", fileConfig.APIKeys.Google),
		SerperAPIKey:     getEnvOrDefault("SERPER_API_KEY", fileConfig.APIKeys.Serper),
		DBPath:           getEnvOrDefault("STENCIL_DB_PATH", fileConfig.DBPath),
		Generation:       fileConfig.Generation,
		ConfigDir:        configDir,
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(configDir, "stencil.db")
	}
	applyGenerationDefaults(&cfg.Generation)

	return cfg, nil
}

// HasProvider returns true if the API key for the given provider is
// configured.
func (c *Config) HasProvider(name string) bool {
	switch name {
	case "openrouter":
		return c.OpenRouterAPIKey != ""
	case "openai":
		return c.OpenAIAPIKey != ""
	case "anthropic":
		return c.AnthropicAPIKey != ""
	case "google":
		return c.GoogleAPIKey != ""
	case "serper":
		return c.SerperAPIKey != ""
	default:
		return false
	}
}

func applyGenerationDefaults(g *GenerationConfig) {
	if g.MaxTokens <= 0 {
		g.MaxTokens = 2000
	}
	if g.Temperature <= 0 {
		g.Temperature = 0.7
	}
	if g.TopP <= 0 {
		g.TopP = 0.9
	}
}

// loadFileConfig reads the config file, returning empty config if not found.
func loadFileConfig(path string) *FileConfig {
	cfg := &FileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, cfg) // Ignore parse errors, use defaults
	return cfg
}

// getEnvOrDefault returns the environment variable value if set,
// otherwise returns the default value.
func getEnvOrDefault(envVar, defaultValue string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultValue
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".stencil")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
