package siteconfig

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a document for structural validity: version, theme,
// and a non-empty pages list must all be present, page slugs must be
// unique, section ids must be unique within their page, and enum
// fields must hold known values. Every write path runs this gate before
// touching storage, so the renderer never sees an invalid document.
func Validate(cfg *SiteConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s", describeFieldError(verrs[0]))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	slugs := make(map[string]struct{}, len(cfg.Pages))
	for i := range cfg.Pages {
		page := &cfg.Pages[i]
		if _, dup := slugs[page.Slug]; dup {
			return fmt.Errorf("duplicate page slug %q", page.Slug)
		}
		slugs[page.Slug] = struct{}{}

		ids := make(map[string]struct{}, len(page.Sections))
		for j := range page.Sections {
			id := page.Sections[j].ID
			if _, dup := ids[id]; dup {
				return fmt.Errorf("duplicate section id %q on page %q", id, page.Slug)
			}
			ids[id] = struct{}{}
		}
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", fe.Namespace())
	case "min":
		return fmt.Sprintf("field %s must have at least %s entries", fe.Namespace(), fe.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("field %s failed %s validation", fe.Namespace(), fe.Tag())
	}
}
