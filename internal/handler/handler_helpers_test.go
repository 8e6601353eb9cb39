package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"siteforge/internal/models"
	"siteforge/internal/render"
	"siteforge/internal/services"
	"siteforge/internal/store"
	"siteforge/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer builds a Server over an in-memory database, plus a router
// exposing the handler routes it needs
func setupServer(t *testing.T) (*Server, *gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		PrepareStmt: false,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Business{},
		&models.SiteConfigRow{},
		&models.SiteConfigHistory{},
	)
	require.NoError(t, err)

	memStore := store.NewMemoryStore()
	t.Cleanup(func() { memStore.Close() })

	configService := services.NewConfigService(db, memStore)
	reg := render.NewRegistry()

	server := &Server{
		DB:              db,
		BusinessService: services.NewBusinessService(db),
		ConfigService:   configService,
		Dispatcher:      tools.NewDispatcher(configService),
		Renderer:        render.NewRenderer(reg),
		Registry:        reg,
	}

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/sections", server.SectionCatalogue)
		api.GET("/tools", server.ToolCatalog)
		api.GET("/sites", server.ListSites)
		sites := api.Group("/sites/:slug")
		{
			sites.GET("/config", server.GetConfig)
			sites.PUT("/config", server.PutConfig)
			sites.PATCH("/config", server.PatchConfig)
			sites.POST("/publish", server.Publish)
			sites.GET("/history", server.GetHistory)
			sites.GET("/preview", server.PreviewSite)
			sites.GET("/preview/*page", server.PreviewSite)
		}
	}
	router.GET("/s/:slug", server.RenderSite)
	router.GET("/s/:slug/*page", server.RenderSite)

	return server, router, db
}

// seedBusiness inserts a business record for handler tests
func seedBusiness(t *testing.T, db *gorm.DB, slug string) *models.Business {
	business := &models.Business{
		ID:          uuid.NewString(),
		Slug:        slug,
		Name:        "acme plumbing",
		City:        "springfield",
		State:       "IL",
		Phone:       "(217) 555-0199",
		Industry:    "plumbing",
		Rating:      4.7,
		ReviewCount: 52,
	}
	require.NoError(t, db.Create(business).Error)
	return business
}

// doJSON performs a request with an optional JSON body
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// mustJSON marshals a value into a raw message
func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, 0, envelope.Code)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// errorCode extracts the code field of an error envelope
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Code
}
