package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvExtractorAPIKey          = "GLEANER_EXTRACTOR_API_KEY"
	EnvExtractorBaseURL         = "GLEANER_EXTRACTOR_BASE_URL"
	EnvExtractorModel           = "GLEANER_EXTRACTOR_MODEL"
	EnvExtractorTimeout         = "GLEANER_EXTRACTOR_TIMEOUT"
	EnvExtractorMaxRetries      = "GLEANER_EXTRACTOR_MAX_RETRIES"
	EnvExtractorMaxInputTokens  = "GLEANER_EXTRACTOR_MAX_INPUT_TOKENS"
	EnvExtractorMaxOutputTokens = "GLEANER_EXTRACTOR_MAX_OUTPUT_TOKENS"
	EnvExtractorTemperature     = "GLEANER_EXTRACTOR_TEMPERATURE"
)

// ExtractorConfig holds settings for the metadata extraction service client.
// An empty APIKey leaves the client unconfigured; analysis then runs entirely
// on the offline fallback path.
type ExtractorConfig struct {
	APIKey          string  `toml:"api_key"`
	BaseURL         string  `toml:"base_url"`
	Model           string  `toml:"model"`
	Timeout         string  `toml:"timeout"`
	MaxRetries      int     `toml:"max_retries"`
	MaxInputTokens  int     `toml:"max_input_tokens"`
	MaxOutputTokens int     `toml:"max_output_tokens"`
	Temperature     float32 `toml:"temperature"`
}

// Configured reports whether credentials are present for remote calls.
func (c *ExtractorConfig) Configured() bool {
	return c.APIKey != ""
}

// TimeoutDuration returns the per-attempt timeout as a time.Duration.
func (c *ExtractorConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ExtractorConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ExtractorConfig) Merge(overlay *ExtractorConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxRetries != 0 {
		c.MaxRetries = overlay.MaxRetries
	}
	if overlay.MaxInputTokens != 0 {
		c.MaxInputTokens = overlay.MaxInputTokens
	}
	if overlay.MaxOutputTokens != 0 {
		c.MaxOutputTokens = overlay.MaxOutputTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
}

func (c *ExtractorConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-5"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.MaxInputTokens == 0 {
		c.MaxInputTokens = 2048
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 500
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
}

func (c *ExtractorConfig) loadEnv() {
	if v := os.Getenv(EnvExtractorAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvExtractorBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvExtractorModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvExtractorTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvExtractorMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv(EnvExtractorMaxInputTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxInputTokens = n
		}
	}
	if v := os.Getenv(EnvExtractorMaxOutputTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxOutputTokens = n
		}
	}
	if v := os.Getenv(EnvExtractorTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 32); err == nil {
			c.Temperature = float32(t)
		}
	}
}

func (c *ExtractorConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be positive")
	}
	if c.MaxInputTokens < 1 {
		return fmt.Errorf("max_input_tokens must be positive")
	}
	if c.MaxOutputTokens < 1 {
		return fmt.Errorf("max_output_tokens must be positive")
	}
	return nil
}
