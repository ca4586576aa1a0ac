package main

import (
	"fmt"
	"os"

	"github.com/porticoapp/portico"
	"github.com/porticoapp/portico/api"
	"github.com/porticoapp/portico/assets"
	"github.com/porticoapp/portico/config"
)

// buildRouter assembles the route table and asset resolver from config and
// returns the shared Router both adapters run behind. The returned cleanup
// closes the static root; initialization is side-effect-free beyond opening
// it, so recycled serverless instances can repeat it safely.
func buildRouter(cfg *config.Config) (*portico.Router, func(), error) {
	registry := portico.NewRegistry()
	if err := api.RegisterRoutes(registry); err != nil {
		return nil, nil, fmt.Errorf("build router: %w", err)
	}

	root, err := os.OpenRoot(cfg.Static.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("build router: open static root %s: %w", cfg.Static.Path, err)
	}
	cleanup := func() { _ = root.Close() }

	resolver, err := assets.NewResolver(root, cfg.Static.Entry)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build router: %w", err)
	}

	router, err := portico.NewRouter(registry, resolver)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build router: %w", err)
	}

	return router, cleanup, nil
}
