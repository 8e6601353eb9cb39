// Package registry maps section kinds to render capabilities and metadata.
package registry

import (
	"io"
	"sort"

	"siteforge/internal/models"
	"siteforge/internal/siteconfig"
)

// RenderData carries the render-time context supplied to every section
// renderer: flattened theme variables, the business being rendered, the
// base path for internal links, and whether an editor is viewing.
type RenderData struct {
	ThemeVars map[string]string
	Business  models.BusinessSummary
	BasePath  string
	Editing   bool
}

// RenderFunc renders one section into w. Implementations must not fail
// on a structurally valid section; content they cannot interpret is
// rendered best-effort.
type RenderFunc func(w io.Writer, section *siteconfig.SectionConfig, data *RenderData) error

// Metadata describes a section kind for catalogue and editor UIs.
type Metadata struct {
	Type           string         `json:"type"`
	Label          string         `json:"label"`
	Icon           string         `json:"icon,omitempty"`
	Implemented    bool           `json:"implemented"`
	DefaultContent map[string]any `json:"default_content,omitempty"`
}

type entry struct {
	renderer RenderFunc
	metadata Metadata
}

// Registry is the section-kind directory. It is constructed and fully
// populated at startup, then passed by reference to the renderer and
// admin tooling; it is read-only during request handling, so lookups
// need no locking.
type Registry struct {
	entries map[string]entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register associates a section kind with a renderer and metadata.
// Registering the same kind again replaces the previous entry, so
// repeated registration is harmless.
func (r *Registry) Register(sectionType string, renderer RenderFunc, metadata Metadata) {
	metadata.Type = sectionType
	metadata.Implemented = renderer != nil
	r.entries[sectionType] = entry{renderer: renderer, metadata: metadata}
}

// RegisterMetadataOnly records a known-but-unimplemented kind so the
// catalogue can surface it as "coming soon".
func (r *Registry) RegisterMetadataOnly(sectionType string, metadata Metadata) {
	r.Register(sectionType, nil, metadata)
}

// Get returns the renderer for a section kind, or nil when none is
// registered. Absence is not an error; it signals the caller to fall
// back to the generic renderer.
func (r *Registry) Get(sectionType string) RenderFunc {
	return r.entries[sectionType].renderer
}

// Has reports whether a renderer is registered for the kind.
func (r *Registry) Has(sectionType string) bool {
	return r.entries[sectionType].renderer != nil
}

// AvailableTypes returns metadata for kinds with an implemented
// renderer, sorted by type for stable output.
func (r *Registry) AvailableTypes() []Metadata {
	result := make([]Metadata, 0, len(r.entries))
	for _, e := range r.entries {
		if e.renderer != nil {
			result = append(result, e.metadata)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}

// AllMetadata returns metadata for every known kind, implemented or
// not, sorted by type for stable output.
func (r *Registry) AllMetadata() []Metadata {
	result := make([]Metadata, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e.metadata)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}
