// Package tools exposes configuration mutations as a uniform set of
// named operations. The HTTP PATCH endpoint and the AI editing agent
// both go through this dispatcher, so every mutation path shares the
// same argument shaping, validation, and versioning.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	app_errors "siteforge/internal/errors"
	"siteforge/internal/models"
	"siteforge/internal/services"
	"siteforge/internal/siteconfig"
)

// Call is one named operation with raw JSON arguments.
type Call struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Result is the outcome of a tool call. Config carries the resulting
// draft document for mutations; Data carries operation-specific payloads
// for reads.
type Result struct {
	Config *siteconfig.SiteConfig `json:"config,omitempty"`
	Data   any                    `json:"data,omitempty"`
}

// Spec describes one tool for catalogue output, in the shape agent
// frameworks expect: a name, a human description, and a JSON schema
// sketch of the arguments.
type Spec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Args        map[string]any `json:"args"`
}

type toolFunc func(ctx context.Context, business *models.Business, args json.RawMessage) (*Result, error)

type tool struct {
	spec Spec
	run  toolFunc
}

// Dispatcher routes tool calls to the config service.
type Dispatcher struct {
	configService *services.ConfigService
	tools         map[string]tool
}

// NewDispatcher constructs a Dispatcher with every tool registered.
func NewDispatcher(configService *services.ConfigService) *Dispatcher {
	d := &Dispatcher{
		configService: configService,
		tools:         make(map[string]tool),
	}
	d.registerAll()
	return d
}

// Execute runs one named tool for a business. Unknown names are a
// validation error listing the available tools.
func (d *Dispatcher) Execute(ctx context.Context, business *models.Business, call Call) (*Result, error) {
	t, ok := d.tools[call.Name]
	if !ok {
		return nil, app_errors.NewValidationError(fmt.Sprintf(
			"unknown action %q, expected one of %v", call.Name, d.names()))
	}
	return t.run(ctx, business, call.Args)
}

// Catalog returns the specs of all registered tools, sorted by name.
func (d *Dispatcher) Catalog() []Spec {
	specs := make([]Spec, 0, len(d.tools))
	for _, t := range d.tools {
		specs = append(specs, t.spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

func (d *Dispatcher) names() []string {
	names := make([]string, 0, len(d.tools))
	for name := range d.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Dispatcher) register(spec Spec, run toolFunc) {
	d.tools[spec.Name] = tool{spec: spec, run: run}
}

func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return app_errors.NewValidationError("missing arguments")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return app_errors.NewAPIError(app_errors.ErrInvalidJSON, "invalid arguments: "+err.Error())
	}
	return nil
}

func (d *Dispatcher) registerAll() {
	d.register(Spec{
		Name:        "get_config",
		Description: "Fetch the current draft configuration, creating the default when none exists.",
		Args:        map[string]any{},
	}, func(ctx context.Context, business *models.Business, _ json.RawMessage) (*Result, error) {
		cfg, err := d.configService.GetOrCreateSiteConfig(ctx, business)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "update_section",
		Description: "Apply a partial update to one section; content and styles deep-merge onto the existing values.",
		Args: map[string]any{
			"page_slug":  "string, empty for the home page",
			"section_id": "string, required",
			"patch":      "object with optional type, enabled, content, styles",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			PageSlug  string                  `json:"page_slug"`
			SectionID string                  `json:"section_id"`
			Patch     siteconfig.SectionPatch `json:"patch"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.SectionID == "" {
			return nil, app_errors.NewValidationError("section_id is required")
		}
		cfg, err := d.configService.UpdateSection(ctx, business, args.PageSlug, args.SectionID, args.Patch)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "add_section",
		Description: "Insert a new section into a page at an optional position; appended when position is omitted.",
		Args: map[string]any{
			"page_slug": "string, empty for the home page",
			"section":   "object with type (required), optional id, enabled, content, styles",
			"position":  "integer index, optional",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			PageSlug string                   `json:"page_slug"`
			Section  siteconfig.SectionConfig `json:"section"`
			Position *int                     `json:"position"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		cfg, err := d.configService.AddSection(ctx, business, args.PageSlug, args.Section, args.Position)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "remove_section",
		Description: "Delete a section from a page; removing a missing section is not an error.",
		Args: map[string]any{
			"page_slug":  "string, empty for the home page",
			"section_id": "string, required",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			PageSlug  string `json:"page_slug"`
			SectionID string `json:"section_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.SectionID == "" {
			return nil, app_errors.NewValidationError("section_id is required")
		}
		cfg, err := d.configService.RemoveSection(ctx, business, args.PageSlug, args.SectionID)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "reorder_sections",
		Description: "Rearrange a page's sections to match the given id order; ids not mentioned move to the end.",
		Args: map[string]any{
			"page_slug": "string, empty for the home page",
			"order":     "array of section ids",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			PageSlug string   `json:"page_slug"`
			Order    []string `json:"order"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if len(args.Order) == 0 {
			return nil, app_errors.NewValidationError("order must list at least one section id")
		}
		cfg, err := d.configService.ReorderSections(ctx, business, args.PageSlug, args.Order)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "update_theme",
		Description: "Deep-merge a partial theme onto the current theme; unmentioned tokens are preserved.",
		Args: map[string]any{
			"theme": "partial theme object (colors, fonts, borderRadius)",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			Theme json.RawMessage `json:"theme"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if len(args.Theme) == 0 {
			return nil, app_errors.NewValidationError("theme is required")
		}
		cfg, err := d.configService.UpdateTheme(ctx, business, args.Theme)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "update_header",
		Description: "Deep-merge a partial header config onto the global header.",
		Args: map[string]any{
			"header": "partial header object (showPhone, showCta, ctaText, menuItems)",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			Header json.RawMessage `json:"header"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if len(args.Header) == 0 {
			return nil, app_errors.NewValidationError("header is required")
		}
		cfg, err := d.configService.UpdateHeader(ctx, business, args.Header)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "update_footer",
		Description: "Deep-merge a partial footer config onto the global footer.",
		Args: map[string]any{
			"footer": "partial footer object (variant, columns, bottomText, showSocialLinks)",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			Footer json.RawMessage `json:"footer"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if len(args.Footer) == 0 {
			return nil, app_errors.NewValidationError("footer is required")
		}
		cfg, err := d.configService.UpdateFooter(ctx, business, args.Footer)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "set_section_image",
		Description: "Attach an already-uploaded image URL to a content field of one section.",
		Args: map[string]any{
			"page_slug":  "string, empty for the home page",
			"section_id": "string, required",
			"field":      "content field name, e.g. backgroundImage",
			"url":        "public image URL returned by the upload endpoint",
		},
	}, func(ctx context.Context, business *models.Business, raw json.RawMessage) (*Result, error) {
		var args struct {
			PageSlug  string `json:"page_slug"`
			SectionID string `json:"section_id"`
			Field     string `json:"field"`
			URL       string `json:"url"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.SectionID == "" || args.Field == "" || args.URL == "" {
			return nil, app_errors.NewValidationError("section_id, field and url are required")
		}
		patch := siteconfig.SectionPatch{Content: map[string]any{args.Field: args.URL}}
		cfg, err := d.configService.UpdateSection(ctx, business, args.PageSlug, args.SectionID, patch)
		if err != nil {
			return nil, err
		}
		return &Result{Config: cfg}, nil
	})

	d.register(Spec{
		Name:        "publish_config",
		Description: "Copy the current draft to the published site.",
		Args:        map[string]any{},
	}, func(ctx context.Context, business *models.Business, _ json.RawMessage) (*Result, error) {
		if err := d.configService.PublishSiteConfig(ctx, business.ID); err != nil {
			return nil, err
		}
		return &Result{Data: map[string]any{"published": true}}, nil
	})
}
