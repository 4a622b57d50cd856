package config

import (
	"fmt"
	"os"

	"github.com/PRagan/gleaner/pkg/formatting"
	"github.com/PRagan/gleaner/pkg/middleware"
	"github.com/PRagan/gleaner/pkg/openapi"
	"github.com/PRagan/gleaner/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "GLEANER_CORS_ENABLED",
	Origins:          "GLEANER_CORS_ORIGINS",
	AllowedMethods:   "GLEANER_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "GLEANER_CORS_ALLOWED_HEADERS",
	AllowCredentials: "GLEANER_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "GLEANER_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "GLEANER_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "GLEANER_PAGINATION_MAX_PAGE_SIZE",
}

var docsEnv = &openapi.ConfigEnv{
	Title:       "GLEANER_DOCS_TITLE",
	Description: "GLEANER_DOCS_DESCRIPTION",
}

// APIConfig holds API routing, CORS, pagination, and docs settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
	Docs        openapi.Config        `toml:"docs"`
}

// MaxBodySizeBytes returns the request body cap as a byte count.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.Docs.Finalize(docsEnv); err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.Docs.Merge(&overlay.Docs)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("GLEANER_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("GLEANER_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
