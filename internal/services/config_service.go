// Package services holds the business logic behind the HTTP and agent surfaces.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"
	"siteforge/internal/siteconfig"
	"siteforge/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	publishedCachePrefix = "published_config:"
	publishedCacheTTL    = 5 * time.Minute
)

// ConfigService implements the site configuration store: fetch,
// create-if-absent, save with versioning and history snapshots, publish,
// and the targeted patch operations. Every mutation path funnels through
// SaveSiteConfig so nothing bypasses validation and versioning.
type ConfigService struct {
	db    *gorm.DB
	cache store.Store
}

// NewConfigService constructs a ConfigService.
func NewConfigService(db *gorm.DB, cache store.Store) *ConfigService {
	return &ConfigService{db: db, cache: cache}
}

// getRow fetches the draft or published row for a business.
func (s *ConfigService) getRow(ctx context.Context, tx *gorm.DB, businessID string, draft bool) (*models.SiteConfigRow, error) {
	var row models.SiteConfigRow
	err := tx.WithContext(ctx).
		Where("business_id = ? AND is_draft = ?", businessID, draft).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func decodeConfig(raw datatypes.JSON) (*siteconfig.SiteConfig, error) {
	var cfg siteconfig.SiteConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("stored config is corrupt: %w", err)
	}
	return &cfg, nil
}

func encodeConfig(cfg *siteconfig.SiteConfig) (datatypes.JSON, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// GetSiteConfig fetches the current draft or published document.
// Returns (nil, nil) when no row exists; the caller decides whether to
// fall back to a generated default.
func (s *ConfigService) GetSiteConfig(ctx context.Context, businessID string, draft bool) (*siteconfig.SiteConfig, error) {
	row, err := s.getRow(ctx, s.db, businessID, draft)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeConfig(row.Config)
}

// GetOrCreateSiteConfig fetches the draft document, creating it from the
// default generator when absent. Safe under concurrent first access: a
// duplicate-insert on the (business_id, is_draft) constraint means
// another caller created the row first, so it is re-fetched and returned
// instead of surfacing the conflict.
func (s *ConfigService) GetOrCreateSiteConfig(ctx context.Context, business *models.Business) (*siteconfig.SiteConfig, error) {
	row, err := s.getRow(ctx, s.db, business.ID, true)
	if err == nil {
		return decodeConfig(row.Config)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cfg := siteconfig.GenerateDefault(business)
	raw, err := encodeConfig(cfg)
	if err != nil {
		return nil, err
	}

	newRow := models.SiteConfigRow{
		BusinessID: business.ID,
		IsDraft:    true,
		Version:    1,
		Config:     raw,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRow).Error; err != nil {
			return err
		}
		return tx.Create(&models.SiteConfigHistory{
			SiteConfigID:      newRow.ID,
			Config:            raw,
			Version:           1,
			ChangeType:        models.ChangeTypeSave,
			ChangeDescription: "initial default configuration",
		}).Error
	})
	if err != nil {
		if app_errors.IsDuplicateKeyError(err) {
			// Lost the creation race; the winner's row is authoritative.
			logrus.WithField("business_id", business.ID).Debug("Concurrent config creation detected, re-fetching")
			existing, fetchErr := s.getRow(ctx, s.db, business.ID, true)
			if fetchErr != nil {
				return nil, fetchErr
			}
			return decodeConfig(existing.Config)
		}
		return nil, err
	}

	return cfg, nil
}

// SaveSiteConfig validates the full document, increments its version,
// overwrites the draft row, and appends a history snapshot. The write is
// transactional: validation failure or any storage error leaves the
// stored state untouched.
func (s *ConfigService) SaveSiteConfig(ctx context.Context, businessID string, cfg *siteconfig.SiteConfig, changeDescription string) (*siteconfig.SiteConfig, error) {
	if err := siteconfig.Validate(cfg); err != nil {
		return nil, app_errors.NewValidationError(err.Error())
	}

	var saved *siteconfig.SiteConfig
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.getRow(ctx, tx, businessID, true)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First save without a prior create: persist as version 1.
			row = &models.SiteConfigRow{BusinessID: businessID, IsDraft: true, Version: 0}
		} else if err != nil {
			return err
		}

		next := *cfg
		next.Version = row.Version + 1
		raw, err := encodeConfig(&next)
		if err != nil {
			return err
		}

		row.Version = next.Version
		row.Config = raw
		if err := tx.Save(row).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.SiteConfigHistory{
			SiteConfigID:      row.ID,
			Config:            raw,
			Version:           next.Version,
			ChangeType:        models.ChangeTypeSave,
			ChangeDescription: changeDescription,
		}).Error; err != nil {
			return err
		}

		saved = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// PublishSiteConfig copies the current draft document into the published
// row, stamps published_at, and appends a publish-tagged history
// snapshot. Fails with ErrNoDraftConfig when no draft exists.
func (s *ConfigService) PublishSiteConfig(ctx context.Context, businessID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		draft, err := s.getRow(ctx, tx, businessID, true)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return app_errors.ErrNoDraftConfig
		}
		if err != nil {
			return err
		}

		now := time.Now()
		published, err := s.getRow(ctx, tx, businessID, false)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			published = &models.SiteConfigRow{
				BusinessID: businessID,
				IsDraft:    false,
			}
		} else if err != nil {
			return err
		}

		published.Version = draft.Version
		published.Config = draft.Config
		published.PublishedAt = &now
		if err := tx.Save(published).Error; err != nil {
			return err
		}

		return tx.Create(&models.SiteConfigHistory{
			SiteConfigID:      draft.ID,
			Config:            draft.Config,
			Version:           draft.Version,
			ChangeType:        models.ChangeTypePublish,
			ChangeDescription: "published",
		}).Error
	})
	if err != nil {
		return err
	}

	s.invalidatePublished(businessID)
	return nil
}

// History returns the most recent history snapshots for a business's
// draft row, newest first.
func (s *ConfigService) History(ctx context.Context, businessID string, limit int) ([]models.SiteConfigHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	draft, err := s.getRow(ctx, s.db, businessID, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.SiteConfigHistory{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []models.SiteConfigHistory
	err = s.db.WithContext(ctx).
		Where("site_config_id = ?", draft.ID).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// GetPublishedOrDefault resolves the document to serve to site visitors.
// It prefers the cached published document, then the published row, then
// the draft (creating it on first access), and finally a generated
// default when storage is unavailable. The second return value reports
// whether the document came from the store; a generated fallback is
// explicit in the contract rather than hidden in error handling.
func (s *ConfigService) GetPublishedOrDefault(ctx context.Context, business *models.Business) (*siteconfig.SiteConfig, bool) {
	cacheKey := publishedCachePrefix + business.ID
	if cached, err := s.cache.Get(cacheKey); err == nil {
		if cfg, err := decodeConfig(cached); err == nil {
			return cfg, true
		}
		// A corrupt cache entry is dropped and resolved from the store.
		s.cache.Delete(cacheKey)
	}

	row, err := s.getRow(ctx, s.db, business.ID, false)
	if err == nil {
		if cfg, decodeErr := decodeConfig(row.Config); decodeErr == nil {
			if err := s.cache.Set(cacheKey, row.Config, publishedCacheTTL); err != nil {
				logrus.WithError(err).Debug("Failed to cache published config")
			}
			return cfg, true
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).WithField("business_id", business.ID).
			Warn("Storage unavailable for published config, serving generated default")
		return siteconfig.GenerateDefault(business), false
	}

	// No published row yet: serve the draft, creating it on first access.
	cfg, err := s.GetOrCreateSiteConfig(ctx, business)
	if err != nil {
		logrus.WithError(err).WithField("business_id", business.ID).
			Warn("Failed to load draft config, serving generated default")
		return siteconfig.GenerateDefault(business), false
	}
	return cfg, true
}

func (s *ConfigService) invalidatePublished(businessID string) {
	if err := s.cache.Delete(publishedCachePrefix + businessID); err != nil {
		logrus.WithError(err).WithField("business_id", businessID).
			Warn("Failed to invalidate published config cache")
	}
}
