// Package router wires the HTTP routes: the admin API, the public site
// renderer, and uploaded assets.
package router

import (
	"net/http"
	"time"

	"siteforge/internal/handler"
	"siteforge/internal/middleware"
	"siteforge/internal/services"
	"siteforge/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all middleware and routes registered.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	uploadService *services.UploadService,
) *gin.Engine {
	if !configManager.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestBodySizeLimit(configManager.GetUploadConfig().MaxSizeBytes * 2))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, configManager)
	registerSiteRoutes(router, serverHandler, uploadService)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers the authenticated admin API
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server, configManager types.ConfigManager) {
	api := router.Group("/api")
	api.Use(middleware.Auth(configManager.GetAuthConfig()))

	api.GET("/sections", serverHandler.SectionCatalogue)
	api.GET("/tools", serverHandler.ToolCatalog)

	sites := api.Group("/sites")
	{
		sites.GET("", serverHandler.ListSites)
		sites.GET("/:slug/config", serverHandler.GetConfig)
		sites.PUT("/:slug/config", serverHandler.PutConfig)
		sites.PATCH("/:slug/config", serverHandler.PatchConfig)
		sites.POST("/:slug/publish", serverHandler.Publish)
		sites.GET("/:slug/history", serverHandler.GetHistory)
		sites.POST("/:slug/images", serverHandler.UploadImage)
		sites.GET("/:slug/preview", serverHandler.PreviewSite)
		sites.GET("/:slug/preview/*page", serverHandler.PreviewSite)
	}
}

// registerSiteRoutes registers the public rendered sites and uploaded assets
func registerSiteRoutes(router *gin.Engine, serverHandler *handler.Server, uploadService *services.UploadService) {
	public := router.Group("")
	public.Use(gzip.Gzip(gzip.DefaultCompression))
	public.GET("/s/:slug", serverHandler.RenderSite)
	public.GET("/s/:slug/*page", serverHandler.RenderSite)

	router.Use(middleware.StaticCache())
	router.Use(static.Serve(uploadService.PublicPath(), static.LocalFile(uploadService.Dir(), false)))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}
