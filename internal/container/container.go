// Package container assembles the dependency injection container.
package container

import (
	"siteforge/internal/app"
	"siteforge/internal/config"
	"siteforge/internal/db"
	"siteforge/internal/handler"
	"siteforge/internal/render"
	"siteforge/internal/router"
	"siteforge/internal/services"
	"siteforge/internal/store"
	"siteforge/internal/tools"

	"go.uber.org/dig"
)

// BuildContainer creates and configures the dig container with all
// application constructors registered.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		config.NewManager,
		db.NewDB,
		store.NewStore,
		render.NewRegistry,
		render.NewRenderer,
		services.NewBusinessService,
		services.NewConfigService,
		services.NewUploadService,
		tools.NewDispatcher,
		handler.NewServer,
		router.NewRouter,
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}
