package api

import (
	"net/http"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Analyses.Handler(cfg.API.MaxBodySizeBytes()).Routes(),
	)
}
