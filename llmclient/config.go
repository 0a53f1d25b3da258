package llmclient

import (
	"github.com/caarlos0/env/v11"
)

// EnvAPIKey is the environment variable that supplies the backend API key.
const EnvAPIKey = "AIFALLBACK_API_KEY"

// DefaultBaseURL points at an OpenAI-compatible completion service.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Config holds client settings sourced from the process environment.
type Config struct {
	APIKey  string `env:"AIFALLBACK_API_KEY"`
	BaseURL string `env:"AIFALLBACK_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model   string `env:"AIFALLBACK_MODEL"`
}

// LoadConfig reads Config from the environment. A missing API key is not an
// error here; it surfaces as a ConfigurationError on first use so callers
// that never trigger recovery pay nothing.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

// CredentialSource supplies the backend API key. Abstracting the lookup
// keeps process-wide environment state out of the client so tests can
// substitute deterministic configuration.
type CredentialSource interface {
	APIKey() (string, error)
}

// StaticCredentials is a fixed API key.
type StaticCredentials string

func (s StaticCredentials) APIKey() (string, error) {
	if s == "" {
		return "", missingKeyError()
	}
	return string(s), nil
}

// EnvCredentials reads the API key from the environment on each use.
type EnvCredentials struct{}

func (EnvCredentials) APIKey() (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", &ConfigurationError{SDKError: SDKError{
			Message: "cannot read environment configuration",
			Cause:   err,
		}}
	}
	if cfg.APIKey == "" {
		return "", missingKeyError()
	}
	return cfg.APIKey, nil
}

func missingKeyError() error {
	return &ConfigurationError{SDKError: SDKError{
		Message: EnvAPIKey + " environment variable not set",
	}}
}
