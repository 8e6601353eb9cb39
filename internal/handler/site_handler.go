package handler

import (
	"errors"
	"net/http"
	"strings"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"
	"siteforge/internal/render"
	"siteforge/internal/siteconfig"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// pageSlugFromParam normalizes the wildcard page param: "/" and ""
// resolve to the home page, everything else loses its surrounding slashes.
func pageSlugFromParam(c *gin.Context) string {
	page := strings.TrimPrefix(c.Param("page"), "/")
	return strings.TrimSuffix(page, "/")
}

// RenderSite serves the public site for a business: the published
// configuration when one exists, otherwise the draft, otherwise a
// generated default so a brand-new tenant always has a working site.
// GET /s/:slug and GET /s/:slug/*page
func (s *Server) RenderSite(c *gin.Context) {
	business, err := s.BusinessService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		var apiErr *app_errors.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusNotFound {
			c.String(http.StatusNotFound, "site not found")
			return
		}
		logrus.WithError(err).WithField("slug", c.Param("slug")).Error("Failed to load business for public site")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	cfg, fromStore := s.ConfigService.GetPublishedOrDefault(c.Request.Context(), business)
	if !fromStore {
		logrus.WithField("slug", business.Slug).Warn("Serving generated default site")
	}

	s.renderConfiguredPage(c, cfg, business.Summary(), render.Options{})
}

// PreviewSite serves the draft configuration in editing mode, for the
// admin console's live preview.
// GET /api/sites/:slug/preview/*page
func (s *Server) PreviewSite(c *gin.Context) {
	business := s.findBusiness(c)
	if business == nil {
		return
	}

	cfg, err := s.ConfigService.GetOrCreateSiteConfig(c.Request.Context(), business)
	if HandleServiceError(c, err) {
		return
	}

	s.renderConfiguredPage(c, cfg, business.Summary(), render.Options{Editing: true})
}

func (s *Server) renderConfiguredPage(c *gin.Context, cfg *siteconfig.SiteConfig, business models.BusinessSummary, opts render.Options) {
	pageSlug := pageSlugFromParam(c)
	if cfg.FindPage(pageSlug) == nil {
		c.String(http.StatusNotFound, "page not found")
		return
	}

	basePath := "/s/" + business.Slug
	html, err := s.Renderer.RenderDocument(cfg, pageSlug, business, basePath, opts)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"slug": business.Slug,
			"page": pageSlug,
		}).Error("Page render failed")
		c.String(http.StatusInternalServerError, "render error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
