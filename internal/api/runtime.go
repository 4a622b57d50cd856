package api

import (
	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/internal/infrastructure"
	"github.com/PRagan/gleaner/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Extractor  config.ExtractorConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Extractor:  cfg.Extractor,
		Pagination: cfg.API.Pagination,
	}
}
