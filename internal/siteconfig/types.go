// Package siteconfig defines the site configuration document: theme tokens,
// global header/footer settings, pages, and sections. It also carries the
// structural validation, the deep-merge primitive used by all partial
// updates, and the default configuration generator.
package siteconfig

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// SchemaVersion is the version stamped into newly generated documents.
// The field then acts as a revision counter, incremented on every save.
const SchemaVersion = 1

// HomeSlug is the page slug denoting the home page.
const HomeSlug = ""

// SiteConfig is the root configuration document for one business's site.
type SiteConfig struct {
	Version int          `json:"version" validate:"required,min=1"`
	Theme   *ThemeConfig `json:"theme" validate:"required"`
	Globals Globals      `json:"globals"`
	Pages   []PageConfig `json:"pages" validate:"required,min=1,dive"`
}

// ThemeConfig holds the design tokens applied across all pages.
type ThemeConfig struct {
	Colors       ThemeColors `json:"colors"`
	Fonts        ThemeFonts  `json:"fonts"`
	BorderRadius string      `json:"borderRadius" validate:"omitempty,oneof=none sm md lg xl"`
}

// ThemeColors is the color token set.
type ThemeColors struct {
	Primary       string `json:"primary"`
	PrimaryDark   string `json:"primaryDark"`
	PrimaryLight  string `json:"primaryLight"`
	Accent        string `json:"accent"`
	AccentHover   string `json:"accentHover"`
	AccentMuted   string `json:"accentMuted"`
	AccentLight   string `json:"accentLight"`
	Background    string `json:"background"`
	BackgroundAlt string `json:"backgroundAlt"`
	Text          string `json:"text"`
	TextMuted     string `json:"textMuted"`
}

// ThemeFonts is the font token pair.
type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Globals holds cross-page settings.
type Globals struct {
	Header HeaderConfig `json:"header"`
	Footer FooterConfig `json:"footer"`
}

// HeaderConfig configures the shared site header.
type HeaderConfig struct {
	ShowPhone bool       `json:"showPhone"`
	ShowCTA   bool       `json:"showCta"`
	CTAText   string     `json:"ctaText"`
	MenuItems []MenuItem `json:"menuItems"`
}

// MenuItem is one entry in the header navigation.
type MenuItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Footer variant constants.
const (
	FooterVariantMinimal  = "minimal"
	FooterVariantStandard = "standard"
	FooterVariantExpanded = "expanded"
)

// Footer column type constants.
const (
	FooterColumnLinks   = "links"
	FooterColumnContact = "contact"
	FooterColumnHours   = "hours"
	FooterColumnText    = "text"
)

// FooterConfig configures the shared site footer.
type FooterConfig struct {
	Variant         string         `json:"variant" validate:"omitempty,oneof=minimal standard expanded"`
	Columns         []FooterColumn `json:"columns" validate:"dive"`
	BottomText      string         `json:"bottomText,omitempty"`
	ShowSocialLinks bool           `json:"showSocialLinks"`
}

// FooterColumn is one column of the footer, typed by its content kind.
type FooterColumn struct {
	Type  string         `json:"type" validate:"required,oneof=links contact hours text"`
	Title string         `json:"title,omitempty"`
	Links []MenuItem     `json:"links,omitempty"`
	Text  string         `json:"text,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

// PageConfig is one page of the site, identified by its slug.
// The empty slug denotes the home page.
type PageConfig struct {
	Slug     string          `json:"slug"`
	Title    string          `json:"title"`
	Sections []SectionConfig `json:"sections" validate:"dive"`
}

// SectionConfig is one discrete block of a page. Disabled sections are
// retained in the document but skipped at render time. Content is an
// open payload keyed by Type so unknown kinds survive round-trips.
type SectionConfig struct {
	ID      string         `json:"id" validate:"required"`
	Type    string         `json:"type" validate:"required"`
	Enabled bool           `json:"enabled"`
	Content map[string]any `json:"content,omitempty"`
	Styles  map[string]any `json:"styles,omitempty"`
}

// Closed set of section kinds with dedicated renderers.
const (
	KindHero        = "hero"
	KindTrustBar    = "trust-bar"
	KindServices    = "services"
	KindReviews     = "reviews"
	KindCTA         = "cta"
	KindContactForm = "contact-form"
	KindServiceArea = "service-area"
	KindFAQ         = "faq"
	KindGallery     = "gallery"
	KindTextBlock   = "text-block"
	KindFeatures    = "features"
)

// KnownKinds lists the closed section-kind catalogue in display order.
var KnownKinds = []string{
	KindHero,
	KindTrustBar,
	KindServices,
	KindReviews,
	KindCTA,
	KindContactForm,
	KindServiceArea,
	KindFAQ,
	KindGallery,
	KindTextBlock,
	KindFeatures,
}

var knownKindSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(KnownKinds))
	for _, k := range KnownKinds {
		set[k] = struct{}{}
	}
	return set
}()

// IsKnownKind reports whether t belongs to the closed section-kind set.
// Anything else is an open kind (AI-generated or future) that renders
// through the generic fallback.
func IsKnownKind(t string) bool {
	_, ok := knownKindSet[t]
	return ok
}

// Kind returns the section's kind for dispatch, normalizing open kinds
// to an empty string so callers can switch exhaustively over the closed
// set with a single unknown branch.
func (s *SectionConfig) Kind() string {
	if IsKnownKind(s.Type) {
		return s.Type
	}
	return ""
}

// NewSectionID generates a unique, sortable section identifier.
func NewSectionID(sectionType string) string {
	id := strings.ToLower(ulid.Make().String())
	if sectionType == "" {
		return "section-" + id
	}
	return sectionType + "-" + id
}

// FindPage returns the page with the given slug, or nil.
func (c *SiteConfig) FindPage(slug string) *PageConfig {
	for i := range c.Pages {
		if c.Pages[i].Slug == slug {
			return &c.Pages[i]
		}
	}
	return nil
}

// FindSection returns the section with the given id on the page, or nil.
func (p *PageConfig) FindSection(id string) *SectionConfig {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// EnabledSections returns the page's enabled sections in editorial order.
func (p *PageConfig) EnabledSections() []SectionConfig {
	enabled := make([]SectionConfig, 0, len(p.Sections))
	for _, s := range p.Sections {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled
}
