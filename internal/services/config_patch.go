package services

import (
	"context"
	"encoding/json"
	"fmt"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"
	"siteforge/internal/siteconfig"
)

// mutateDraft loads the draft document (creating it when absent), applies
// fn, and saves the result when fn reports a change. All targeted patch
// operations go through here so they share the create-on-first-touch,
// validate, version-bump, and history behavior of SaveSiteConfig.
func (s *ConfigService) mutateDraft(ctx context.Context, business *models.Business, description string, fn func(cfg *siteconfig.SiteConfig) (bool, error)) (*siteconfig.SiteConfig, error) {
	cfg, err := s.GetOrCreateSiteConfig(ctx, business)
	if err != nil {
		return nil, err
	}
	changed, err := fn(cfg)
	if err != nil {
		return nil, err
	}
	if !changed {
		return cfg, nil
	}
	return s.SaveSiteConfig(ctx, business.ID, cfg, description)
}

// UpdateSection applies a partial update to one section. A missing page
// or section id is a no-op, not an error; the unchanged document is
// returned so callers can still inspect the current state.
func (s *ConfigService) UpdateSection(ctx context.Context, business *models.Business, pageSlug, sectionID string, patch siteconfig.SectionPatch) (*siteconfig.SiteConfig, error) {
	desc := fmt.Sprintf("updated section %s on page %q", sectionID, pageSlug)
	return s.mutateDraft(ctx, business, desc, func(cfg *siteconfig.SiteConfig) (bool, error) {
		page := cfg.FindPage(pageSlug)
		if page == nil {
			return false, nil
		}
		section := page.FindSection(sectionID)
		if section == nil {
			return false, nil
		}
		if err := section.ApplyPatch(patch); err != nil {
			return false, err
		}
		return true, nil
	})
}

// AddSection inserts a section into a page at the given position, or
// appends when position is nil or out of range. A section without an id
// gets a fresh generated one. The target page must exist.
func (s *ConfigService) AddSection(ctx context.Context, business *models.Business, pageSlug string, section siteconfig.SectionConfig, position *int) (*siteconfig.SiteConfig, error) {
	if section.Type == "" {
		return nil, app_errors.NewValidationError("section type is required")
	}
	if section.ID == "" {
		section.ID = siteconfig.NewSectionID(section.Type)
	}
	if section.Content == nil {
		section.Content = siteconfig.DefaultContent(section.Type)
	}

	desc := fmt.Sprintf("added %s section to page %q", section.Type, pageSlug)
	return s.mutateDraft(ctx, business, desc, func(cfg *siteconfig.SiteConfig) (bool, error) {
		page := cfg.FindPage(pageSlug)
		if page == nil {
			return false, app_errors.NewNotFoundError(fmt.Sprintf("page %q not found", pageSlug))
		}
		if page.FindSection(section.ID) != nil {
			return false, app_errors.NewValidationError(fmt.Sprintf("section id %q already exists on page %q", section.ID, pageSlug))
		}

		idx := len(page.Sections)
		if position != nil && *position >= 0 && *position < len(page.Sections) {
			idx = *position
		}
		page.Sections = append(page.Sections, siteconfig.SectionConfig{})
		copy(page.Sections[idx+1:], page.Sections[idx:])
		page.Sections[idx] = section
		return true, nil
	})
}

// RemoveSection deletes a section from a page. A missing page or section
// is a no-op.
func (s *ConfigService) RemoveSection(ctx context.Context, business *models.Business, pageSlug, sectionID string) (*siteconfig.SiteConfig, error) {
	desc := fmt.Sprintf("removed section %s from page %q", sectionID, pageSlug)
	return s.mutateDraft(ctx, business, desc, func(cfg *siteconfig.SiteConfig) (bool, error) {
		page := cfg.FindPage(pageSlug)
		if page == nil {
			return false, nil
		}
		for i := range page.Sections {
			if page.Sections[i].ID == sectionID {
				page.Sections = append(page.Sections[:i], page.Sections[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	})
}

// ReorderSections rearranges a page's sections to match the given id
// order. Unknown ids in the order are ignored; sections the order does
// not mention keep their relative order and move to the end, so a stale
// editor view reorders what it knows about without dropping anything.
func (s *ConfigService) ReorderSections(ctx context.Context, business *models.Business, pageSlug string, order []string) (*siteconfig.SiteConfig, error) {
	desc := fmt.Sprintf("reordered sections on page %q", pageSlug)
	return s.mutateDraft(ctx, business, desc, func(cfg *siteconfig.SiteConfig) (bool, error) {
		page := cfg.FindPage(pageSlug)
		if page == nil {
			return false, app_errors.NewNotFoundError(fmt.Sprintf("page %q not found", pageSlug))
		}

		byID := make(map[string]int, len(page.Sections))
		for i := range page.Sections {
			byID[page.Sections[i].ID] = i
		}

		reordered := make([]siteconfig.SectionConfig, 0, len(page.Sections))
		placed := make(map[string]struct{}, len(order))
		for _, id := range order {
			if _, done := placed[id]; done {
				continue
			}
			if i, ok := byID[id]; ok {
				reordered = append(reordered, page.Sections[i])
				placed[id] = struct{}{}
			}
		}
		for i := range page.Sections {
			if _, done := placed[page.Sections[i].ID]; !done {
				reordered = append(reordered, page.Sections[i])
			}
		}

		page.Sections = reordered
		return true, nil
	})
}

// UpdateTheme deep-merges a partial theme onto the draft's theme.
func (s *ConfigService) UpdateTheme(ctx context.Context, business *models.Business, partial json.RawMessage) (*siteconfig.SiteConfig, error) {
	return s.mutateDraft(ctx, business, "updated theme", func(cfg *siteconfig.SiteConfig) (bool, error) {
		merged, err := siteconfig.MergeTheme(cfg.Theme, partial)
		if err != nil {
			return false, app_errors.NewValidationError(err.Error())
		}
		cfg.Theme = merged
		return true, nil
	})
}

// UpdateHeader deep-merges a partial header config onto the draft's
// global header.
func (s *ConfigService) UpdateHeader(ctx context.Context, business *models.Business, partial json.RawMessage) (*siteconfig.SiteConfig, error) {
	return s.mutateDraft(ctx, business, "updated header", func(cfg *siteconfig.SiteConfig) (bool, error) {
		merged, err := mergeGlobal(cfg.Globals.Header, partial)
		if err != nil {
			return false, err
		}
		cfg.Globals.Header = merged
		return true, nil
	})
}

// UpdateFooter deep-merges a partial footer config onto the draft's
// global footer.
func (s *ConfigService) UpdateFooter(ctx context.Context, business *models.Business, partial json.RawMessage) (*siteconfig.SiteConfig, error) {
	return s.mutateDraft(ctx, business, "updated footer", func(cfg *siteconfig.SiteConfig) (bool, error) {
		merged, err := mergeGlobal(cfg.Globals.Footer, partial)
		if err != nil {
			return false, err
		}
		cfg.Globals.Footer = merged
		return true, nil
	})
}

// mergeGlobal deep-merges a raw partial onto a typed globals value.
func mergeGlobal[T any](current T, partial json.RawMessage) (T, error) {
	var zero T
	currentRaw, err := json.Marshal(current)
	if err != nil {
		return zero, err
	}
	merged, err := siteconfig.MergeJSON(currentRaw, partial)
	if err != nil {
		return zero, app_errors.NewValidationError(err.Error())
	}
	var result T
	if err := json.Unmarshal(merged, &result); err != nil {
		return zero, app_errors.NewValidationError(err.Error())
	}
	return result, nil
}
