package handler

import (
	"encoding/json"
	"strconv"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"
	"siteforge/internal/response"
	"siteforge/internal/siteconfig"
	"siteforge/internal/tools"

	"github.com/gin-gonic/gin"
)

// findBusiness resolves the :slug route param to a business record.
// Returns nil after writing the error response when the lookup fails.
func (s *Server) findBusiness(c *gin.Context) *models.Business {
	business, err := s.BusinessService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if HandleServiceError(c, err) {
		return nil
	}
	return business
}

// ConfigResponse pairs a configuration document with its business summary.
type ConfigResponse struct {
	Config   *siteconfig.SiteConfig `json:"config"`
	Business models.BusinessSummary `json:"business"`
}

// GetConfig returns the draft configuration for a business, creating the
// default document on first access.
// GET /api/sites/:slug/config
func (s *Server) GetConfig(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	cfg, err := s.ConfigService.GetOrCreateSiteConfig(c.Request.Context(), business)
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, ConfigResponse{Config: cfg, Business: business.Summary()})
}

// PutConfig validates and saves a full replacement configuration.
// PUT /api/sites/:slug/config
func (s *Server) PutConfig(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	var cfg siteconfig.SiteConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	saved, err := s.ConfigService.SaveSiteConfig(c.Request.Context(), business.ID, &cfg, "full config update")
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, ConfigResponse{Config: saved, Business: business.Summary()})
}

// PatchRequest names one patch operation and its arguments.
type PatchRequest struct {
	Action  string          `json:"action" binding:"required"`
	Payload json.RawMessage `json:"payload"`
}

// PatchConfig applies one named patch operation to the draft via the
// tool dispatcher, so the HTTP API and the editing agent share one
// mutation path.
// PATCH /api/sites/:slug/config
func (s *Server) PatchConfig(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	var req PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, err := s.Dispatcher.Execute(c.Request.Context(), business, tools.Call{
		Name: req.Action,
		Args: req.Payload,
	})
	if HandleServiceError(c, err) {
		return
	}

	if result.Config != nil {
		response.Success(c, ConfigResponse{Config: result.Config, Business: business.Summary()})
		return
	}
	response.Success(c, result.Data)
}

// Publish copies the draft configuration to the published site.
// POST /api/sites/:slug/publish
func (s *Server) Publish(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	if err := s.ConfigService.PublishSiteConfig(c.Request.Context(), business.ID); HandleServiceError(c, err) {
		return
	}

	response.Success(c, gin.H{"published": true})
}

// GetHistory returns recent configuration snapshots, newest first.
// GET /api/sites/:slug/history
func (s *Server) GetHistory(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := s.ConfigService.History(c.Request.Context(), business.ID, limit)
	if HandleServiceError(c, err) {
		return
	}

	response.Success(c, entries)
}

// ListSites returns summaries of all businesses.
// GET /api/sites
func (s *Server) ListSites(c *gin.Context) {
	businesses, err := s.BusinessService.List(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}

	summaries := make([]models.BusinessSummary, 0, len(businesses))
	for i := range businesses {
		summaries = append(summaries, businesses[i].Summary())
	}
	response.Success(c, summaries)
}

// SectionCatalogue returns metadata for every known section kind,
// implemented and not, for the editor's "add section" picker.
// GET /api/sections
func (s *Server) SectionCatalogue(c *gin.Context) {
	response.Success(c, s.Registry.AllMetadata())
}

// ToolCatalog returns the specs of the agent tool surface.
// GET /api/tools
func (s *Server) ToolCatalog(c *gin.Context) {
	response.Success(c, s.Dispatcher.Catalog())
}
