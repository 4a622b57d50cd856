package main

import (
	"encoding/json"
	"net/http"

	"github.com/PRagan/gleaner/internal/api"
	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/internal/infrastructure"
	"github.com/PRagan/gleaner/pkg/middleware"
	"github.com/PRagan/gleaner/pkg/module"
)

type Modules struct {
	API  *module.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	docsModule, err := api.NewDocsModule(cfg)
	if err != nil {
		return nil, err
	}
	docsModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Docs)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
