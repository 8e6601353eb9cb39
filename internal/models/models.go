// Package models defines the persisted entities for the site configuration engine.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Business corresponds to the businesses table.
// Owned by the CRM side of the platform; the config engine reads it as
// render context and to seed default configurations, and never mutates it.
type Business struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Slug         string    `gorm:"type:varchar(255);not null;unique" json:"slug"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	City         string    `gorm:"type:varchar(255)" json:"city"`
	State        string    `gorm:"type:varchar(64)" json:"state"`
	Phone        string    `gorm:"type:varchar(64)" json:"phone"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	Industry     string    `gorm:"type:varchar(128)" json:"industry"`
	PrimaryColor string    `gorm:"type:varchar(32)" json:"primary_color"`
	AccentColor  string    `gorm:"type:varchar(32)" json:"accent_color"`
	LogoURL      string    `gorm:"type:varchar(500)" json:"logo_url"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	ReviewCount  int       `gorm:"default:0" json:"review_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SiteConfigRow corresponds to the site_configs table.
// Exactly one draft row and at most one published row may exist per
// business, enforced by the unique index over (business_id, is_draft).
type SiteConfigRow struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID  string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_site_configs_business_draft" json:"business_id"`
	IsDraft     bool           `gorm:"not null;uniqueIndex:idx_site_configs_business_draft" json:"is_draft"`
	Version     int            `gorm:"not null;default:1" json:"version"`
	Config      datatypes.JSON `gorm:"type:json;not null" json:"config"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName overrides the default pluralization.
func (SiteConfigRow) TableName() string { return "site_configs" }

// History change-type constants.
const (
	ChangeTypeSave    = "save"
	ChangeTypePublish = "publish"
)

// SiteConfigHistory corresponds to the site_config_history table.
// Rows are append-only snapshots taken at every save and publish; they
// are never updated or deleted and form the audit/rollback log.
type SiteConfigHistory struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SiteConfigID      uint           `gorm:"not null;index" json:"site_config_id"`
	Config            datatypes.JSON `gorm:"type:json;not null" json:"config"`
	Version           int            `gorm:"not null" json:"version"`
	ChangeType        string         `gorm:"type:varchar(20);not null;default:'save'" json:"change_type"`
	ChangeDescription string         `gorm:"type:varchar(512)" json:"change_description"`
	CreatedAt         time.Time      `json:"created_at"`
}

// TableName overrides the default pluralization.
func (SiteConfigHistory) TableName() string { return "site_config_history" }

// BusinessSummary is the read-only projection returned alongside configs.
type BusinessSummary struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

// Summary builds the read-only projection of a business.
func (b *Business) Summary() BusinessSummary {
	return BusinessSummary{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		City:        b.City,
		State:       b.State,
		Phone:       b.Phone,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
	}
}
