// Package config provides environment-based configuration management.
package config

import (
	"fmt"
	"os"
	"strings"

	"siteforge/internal/types"
	"siteforge/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Constants for default configuration values
const (
	DefaultPort                    = 3001
	DefaultHost                    = "0.0.0.0"
	DefaultReadTimeout             = 60
	DefaultWriteTimeout            = 120
	DefaultIdleTimeout             = 120
	DefaultGracefulShutdownTimeout = 10
	DefaultMaxConcurrentRequests   = 100
	DefaultUploadMaxSizeMB         = 10
	MinAuthKeyLength               = 16
)

// Manager implements types.ConfigManager backed by environment variables.
type Manager struct {
	serverConfig      types.ServerConfig
	authConfig        types.AuthConfig
	corsConfig        types.CORSConfig
	performanceConfig types.PerformanceConfig
	logConfig         types.LogConfig
	databaseConfig    types.DatabaseConfig
	uploadConfig      types.UploadConfig
	redisDSN          string
	isMaster          bool
	debugMode         bool
}

// NewManager creates a configuration manager, loading .env if present.
func NewManager() (types.ConfigManager, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Debug("No .env file loaded")
	}

	m := &Manager{}
	if err := m.ReloadConfig(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReloadConfig re-reads all configuration from the environment.
func (m *Manager) ReloadConfig() error {
	m.serverConfig = types.ServerConfig{
		Port:                    utils.ParseInteger(os.Getenv("PORT"), DefaultPort),
		Host:                    utils.GetEnvOrDefault("HOST", DefaultHost),
		ReadTimeout:             utils.ParseInteger(os.Getenv("SERVER_READ_TIMEOUT"), DefaultReadTimeout),
		WriteTimeout:            utils.ParseInteger(os.Getenv("SERVER_WRITE_TIMEOUT"), DefaultWriteTimeout),
		IdleTimeout:             utils.ParseInteger(os.Getenv("SERVER_IDLE_TIMEOUT"), DefaultIdleTimeout),
		GracefulShutdownTimeout: utils.ParseInteger(os.Getenv("SERVER_GRACEFUL_SHUTDOWN_TIMEOUT"), DefaultGracefulShutdownTimeout),
	}
	m.isMaster = !utils.ParseBoolean(os.Getenv("IS_SLAVE"), false)
	m.serverConfig.IsMaster = m.isMaster
	m.debugMode = utils.ParseBoolean(os.Getenv("DEBUG_MODE"), false)

	m.authConfig = types.AuthConfig{
		Key: os.Getenv("AUTH_KEY"),
	}

	m.corsConfig = types.CORSConfig{
		Enabled:          utils.ParseBoolean(os.Getenv("ENABLE_CORS"), true),
		AllowedOrigins:   utils.ParseArray(os.Getenv("ALLOWED_ORIGINS"), []string{"*"}),
		AllowedMethods:   utils.ParseArray(os.Getenv("ALLOWED_METHODS"), []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders:   utils.ParseArray(os.Getenv("ALLOWED_HEADERS"), []string{"*"}),
		AllowCredentials: utils.ParseBoolean(os.Getenv("ALLOW_CREDENTIALS"), false),
	}

	m.performanceConfig = types.PerformanceConfig{
		MaxConcurrentRequests: utils.ParseInteger(os.Getenv("MAX_CONCURRENT_REQUESTS"), DefaultMaxConcurrentRequests),
	}

	m.logConfig = types.LogConfig{
		Level:      strings.ToLower(utils.GetEnvOrDefault("LOG_LEVEL", "info")),
		Format:     strings.ToLower(utils.GetEnvOrDefault("LOG_FORMAT", "text")),
		EnableFile: utils.ParseBoolean(os.Getenv("LOG_ENABLE_FILE"), false),
		FilePath:   utils.GetEnvOrDefault("LOG_FILE_PATH", "./data/logs/app.log"),
	}

	m.databaseConfig = types.DatabaseConfig{
		DSN: utils.GetEnvOrDefault("DATABASE_DSN", "./data/siteforge.db"),
	}

	maxSizeMB := utils.ParseInteger64(os.Getenv("UPLOAD_MAX_SIZE_MB"), DefaultUploadMaxSizeMB)
	m.uploadConfig = types.UploadConfig{
		Dir:          utils.GetEnvOrDefault("UPLOAD_DIR", "./data/uploads"),
		PublicPath:   utils.GetEnvOrDefault("UPLOAD_PUBLIC_PATH", "/uploads"),
		MaxSizeBytes: maxSizeMB << 20,
	}

	m.redisDSN = os.Getenv("REDIS_DSN")

	return nil
}

// Validate checks configuration consistency.
func (m *Manager) Validate() error {
	if m.authConfig.Key == "" {
		return fmt.Errorf("AUTH_KEY is required")
	}
	if len(m.authConfig.Key) < MinAuthKeyLength {
		return fmt.Errorf("AUTH_KEY must be at least %d characters", MinAuthKeyLength)
	}
	if m.serverConfig.Port < 1 || m.serverConfig.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", m.serverConfig.Port)
	}
	if m.performanceConfig.MaxConcurrentRequests < 1 {
		return fmt.Errorf("MAX_CONCURRENT_REQUESTS must be positive")
	}
	if m.uploadConfig.MaxSizeBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE_MB must be positive")
	}
	return nil
}

// IsMaster returns whether this instance runs migrations and seeds.
func (m *Manager) IsMaster() bool { return m.isMaster }

// IsDebugMode returns whether debug-only behavior is enabled.
func (m *Manager) IsDebugMode() bool { return m.debugMode }

// GetAuthConfig returns authentication configuration.
func (m *Manager) GetAuthConfig() types.AuthConfig { return m.authConfig }

// GetCORSConfig returns CORS configuration.
func (m *Manager) GetCORSConfig() types.CORSConfig { return m.corsConfig }

// GetPerformanceConfig returns performance configuration.
func (m *Manager) GetPerformanceConfig() types.PerformanceConfig { return m.performanceConfig }

// GetLogConfig returns logging configuration.
func (m *Manager) GetLogConfig() types.LogConfig { return m.logConfig }

// GetDatabaseConfig returns database configuration.
func (m *Manager) GetDatabaseConfig() types.DatabaseConfig { return m.databaseConfig }

// GetUploadConfig returns upload configuration.
func (m *Manager) GetUploadConfig() types.UploadConfig { return m.uploadConfig }

// GetEffectiveServerConfig returns the resolved server configuration.
func (m *Manager) GetEffectiveServerConfig() types.ServerConfig { return m.serverConfig }

// GetRedisDSN returns the Redis DSN, empty when the memory store should be used.
func (m *Manager) GetRedisDSN() string { return m.redisDSN }

// DisplayServerConfig logs the effective configuration at startup.
func (m *Manager) DisplayServerConfig() {
	logrus.Info("=== Server Configuration ===")
	logrus.Infof("Listen: %s:%d", m.serverConfig.Host, m.serverConfig.Port)
	logrus.Infof("Role: %s", map[bool]string{true: "master", false: "slave"}[m.isMaster])
	logrus.Infof("Database: %s", maskDSN(m.databaseConfig.DSN))
	if m.redisDSN != "" {
		logrus.Infof("Cache store: redis (%s)", maskDSN(m.redisDSN))
	} else {
		logrus.Info("Cache store: memory")
	}
	logrus.Infof("Uploads: %s (served at %s, max %d MB)",
		m.uploadConfig.Dir, m.uploadConfig.PublicPath, m.uploadConfig.MaxSizeBytes>>20)
	logrus.Infof("Log level: %s, format: %s", m.logConfig.Level, m.logConfig.Format)
	logrus.Info("============================")
}

// maskDSN hides credentials embedded in a DSN before logging it.
func maskDSN(dsn string) string {
	if at := strings.LastIndex(dsn, "@"); at != -1 {
		if scheme := strings.Index(dsn, "://"); scheme != -1 && scheme < at {
			return dsn[:scheme+3] + "***" + dsn[at:]
		}
		return "***" + dsn[at:]
	}
	return dsn
}
