package services

import (
	"context"
	"errors"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"

	"gorm.io/gorm"
)

// BusinessService looks up business records for the admin and public
// surfaces.
type BusinessService struct {
	db *gorm.DB
}

// NewBusinessService constructs a BusinessService.
func NewBusinessService(db *gorm.DB) *BusinessService {
	return &BusinessService{db: db}
}

// GetByID fetches a business by its primary key.
func (s *BusinessService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	var business models.Business
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&business).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, app_errors.NewNotFoundError("business not found")
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// GetBySlug fetches a business by its public site slug.
func (s *BusinessService) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var business models.Business
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&business).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, app_errors.NewNotFoundError("site not found")
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// List returns all businesses, newest first.
func (s *BusinessService) List(ctx context.Context) ([]models.Business, error) {
	var businesses []models.Business
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&businesses).Error
	return businesses, err
}

// Create inserts a business record.
func (s *BusinessService) Create(ctx context.Context, business *models.Business) error {
	err := s.db.WithContext(ctx).Create(business).Error
	if app_errors.IsDuplicateKeyError(err) {
		return app_errors.NewAPIError(app_errors.ErrDuplicateResource, "a business with this slug already exists")
	}
	return err
}
