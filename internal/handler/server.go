// Package handler provides HTTP handlers for the application
package handler

import (
	"siteforge/internal/registry"
	"siteforge/internal/render"
	"siteforge/internal/services"
	"siteforge/internal/tools"
	"siteforge/internal/types"

	"go.uber.org/dig"
	"gorm.io/gorm"
)

// Server holds the handler dependencies. Fields are exported so tests
// can assemble a Server with only the pieces they need.
type Server struct {
	DB              *gorm.DB
	ConfigManager   types.ConfigManager
	BusinessService *services.BusinessService
	ConfigService   *services.ConfigService
	UploadService   *services.UploadService
	Dispatcher      *tools.Dispatcher
	Renderer        *render.Renderer
	Registry        *registry.Registry
}

// ServerParams defines the dependencies for the Server.
type ServerParams struct {
	dig.In
	DB              *gorm.DB
	ConfigManager   types.ConfigManager
	BusinessService *services.BusinessService
	ConfigService   *services.ConfigService
	UploadService   *services.UploadService
	Dispatcher      *tools.Dispatcher
	Renderer        *render.Renderer
	Registry        *registry.Registry
}

// NewServer creates a new Server instance with injected dependencies.
func NewServer(params ServerParams) *Server {
	return &Server{
		DB:              params.DB,
		ConfigManager:   params.ConfigManager,
		BusinessService: params.BusinessService,
		ConfigService:   params.ConfigService,
		UploadService:   params.UploadService,
		Dispatcher:      params.Dispatcher,
		Renderer:        params.Renderer,
		Registry:        params.Registry,
	}
}
