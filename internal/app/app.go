// Package app provides the main application logic and lifecycle management.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"siteforge/internal/db"
	"siteforge/internal/models"
	"siteforge/internal/store"
	"siteforge/internal/types"
	"siteforge/internal/utils"
	"siteforge/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

// App holds the HTTP engine and shared resources and manages the
// application lifecycle.
type App struct {
	engine        *gin.Engine
	configManager types.ConfigManager
	storage       store.Store
	db            *gorm.DB
	httpServer    *http.Server
}

// AppParams defines the dependencies for the App.
type AppParams struct {
	dig.In
	Engine        *gin.Engine
	ConfigManager types.ConfigManager
	Storage       store.Store
	DB            *gorm.DB
}

// NewApp is the constructor for App, with dependencies injected by dig.
func NewApp(params AppParams) *App {
	return &App{
		engine:        params.Engine,
		configManager: params.ConfigManager,
		storage:       params.Storage,
		db:            params.DB,
	}
}

// Start runs the application, it is a non-blocking call.
func (a *App) Start() error {
	// Master node performs initialization
	if a.configManager.IsMaster() {
		logrus.Info("Starting as Master Node.")

		if err := a.storage.Clear(); err != nil {
			return fmt.Errorf("cache cleanup failed: %w", err)
		}

		if err := a.db.AutoMigrate(
			&models.Business{},
			&models.SiteConfigRow{},
			&models.SiteConfigHistory{},
		); err != nil {
			return fmt.Errorf("database auto-migration failed: %w", err)
		}
		logrus.Info("Database auto-migration completed.")

		if utils.ParseBoolean(os.Getenv("SEED_DEMO_DATA"), false) {
			if err := a.seedDemoData(); err != nil {
				logrus.WithError(err).Warn("Failed to seed demo data")
			}
		}
	} else {
		logrus.Info("Starting as Slave Node.")
	}

	a.configManager.DisplayServerConfig()

	serverConfig := a.configManager.GetEffectiveServerConfig()
	a.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
		Handler:        a.engine,
		ReadTimeout:    time.Duration(serverConfig.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(serverConfig.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(serverConfig.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logrus.Infof("SiteForge started successfully on Version: %s", version.Version)
		logrus.Infof("Server address: http://%s:%d", serverConfig.Host, serverConfig.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server startup failed: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the application.
func (a *App) Stop(ctx context.Context) {
	logrus.Info("Shutting down server...")

	httpShutdownStart := time.Now()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logrus.Debug("HTTP server graceful shutdown timed out, forcing remaining connections to close.")
		if closeErr := a.httpServer.Close(); closeErr != nil {
			logrus.Errorf("Error forcing HTTP server to close: %v", closeErr)
		}
	}
	logrus.Infof("HTTP server has been shut down. (took %v)", time.Since(httpShutdownStart))

	if err := a.storage.Close(); err != nil {
		logrus.Errorf("Error closing cache store: %v", err)
	}
	if err := db.Close(a.db); err != nil {
		logrus.Errorf("Error closing database: %v", err)
	}

	logrus.Info("Shutdown complete.")
}

// seedDemoData inserts a sample business so a fresh install has a site
// to look at. Runs only when SEED_DEMO_DATA is enabled and is skipped
// when any business already exists.
func (a *App) seedDemoData() error {
	var count int64
	if err := a.db.Model(&models.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := models.Business{
		ID:           uuid.NewString(),
		Slug:         "summit-plumbing",
		Name:         "Summit Plumbing",
		City:         "Denver",
		State:        "CO",
		Phone:        "(303) 555-0137",
		Email:        "office@summitplumbing.example",
		Industry:     "plumbing",
		PrimaryColor: "#1e3a5f",
		AccentColor:  "#e8833a",
		Rating:       4.8,
		ReviewCount:  127,
	}
	if err := a.db.Create(&demo).Error; err != nil {
		return err
	}
	logrus.WithField("slug", demo.Slug).Info("Seeded demo business")
	return nil
}
