package mailjet

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is the Mailjet v3.1 API root. The send endpoint is
// DefaultBaseURL + "/send".
const DefaultBaseURL = "https://api.mailjet.com/v3.1"

// Config holds Mailjet provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey     string `env:"MAILJET_API_KEY"`
	PrivateKey string `env:"MAILJET_PRIVATE_KEY"`
	// BaseURL overrides the API root, primarily for tests.
	// Empty means DefaultBaseURL.
	BaseURL string `env:"MAILJET_BASE_URL"`
}

// Validate checks that both API credentials are present.
// It returns a *ConfigError naming the blank key; no network calls are
// made with an invalid config.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.PrivateKey, validation.Required),
	)
	if err != nil {
		return &ConfigError{Config: c, Err: err}
	}
	return nil
}

// baseURL returns the configured API root or the default.
func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}
