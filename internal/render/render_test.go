package render

import (
	"strings"
	"testing"

	"siteforge/internal/models"
	"siteforge/internal/siteconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() models.BusinessSummary {
	return models.BusinessSummary{
		ID:    "biz-1",
		Slug:  "acme",
		Name:  "Acme Plumbing",
		City:  "Springfield",
		State: "IL",
		Phone: "(217) 555-0199",
	}
}

func testRenderer() *Renderer {
	return NewRenderer(NewRegistry())
}

// TestRenderPage_SkipsDisabledSections tests enabled filtering and ordering
func TestRenderPage_SkipsDisabledSections(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Slug: siteconfig.HomeSlug,
		Sections: []siteconfig.SectionConfig{
			{ID: "cta-1", Type: siteconfig.KindCTA, Enabled: true, Content: map[string]any{"headline": "First"}},
			{ID: "cta-2", Type: siteconfig.KindCTA, Enabled: false, Content: map[string]any{"headline": "Hidden"}},
			{ID: "cta-3", Type: siteconfig.KindCTA, Enabled: true, Content: map[string]any{"headline": "Last"}},
		},
	}

	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "/s/acme", Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "First")
	assert.NotContains(t, html, "Hidden")
	assert.Contains(t, html, "Last")
	assert.Less(t, strings.Index(html, "First"), strings.Index(html, "Last"))
}

// TestRenderPage_UnknownKindUsesGenericRenderer tests the open-kind fallback
func TestRenderPage_UnknownKindUsesGenericRenderer(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Slug: siteconfig.HomeSlug,
		Sections: []siteconfig.SectionConfig{
			{
				ID:      "custom-1",
				Type:    "ai-generated-banner",
				Enabled: true,
				Content: map[string]any{
					"headline": "Custom Thing",
					"points":   []any{"one", "two"},
				},
			},
		},
	}

	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "section-generic")
	assert.Contains(t, html, `data-type="ai-generated-banner"`)
	assert.Contains(t, html, "<h2>Custom Thing</h2>")
	assert.Contains(t, html, "<li>one</li>")
}

// TestRenderPage_GenericEscapesContent tests that untrusted content is escaped
func TestRenderPage_GenericEscapesContent(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Sections: []siteconfig.SectionConfig{
			{
				ID:      "custom-1",
				Type:    "injected",
				Enabled: true,
				Content: map[string]any{"headline": `<script>alert("x")</script>`},
			},
		},
	}

	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

// TestRenderPage_EmptyPage tests the zero-enabled-sections contract
func TestRenderPage_EmptyPage(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Sections: []siteconfig.SectionConfig{{ID: "a", Type: siteconfig.KindCTA, Enabled: false}},
	}

	// Public visitors see nothing
	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	require.NoError(t, err)
	assert.Equal(t, "", html)

	// Editors see an explicit placeholder
	html, err = testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{Editing: true})
	require.NoError(t, err)
	assert.Contains(t, html, "empty-page")
}

// TestRenderPage_NilArgumentsAreErrors tests the programmer-error contract
func TestRenderPage_NilArgumentsAreErrors(t *testing.T) {
	t.Parallel()

	r := testRenderer()
	_, err := r.RenderPage(nil, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	assert.Error(t, err)

	_, err = r.RenderPage(&siteconfig.PageConfig{}, nil, testSummary(), "", Options{})
	assert.Error(t, err)
}

// TestRenderPage_MalformedContentDegradesToGeneric tests per-section tolerance
func TestRenderPage_MalformedContentDegradesToGeneric(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Sections: []siteconfig.SectionConfig{
			{
				ID:      "hero-1",
				Type:    siteconfig.KindHero,
				Enabled: true,
				// headline should be a string; the typed decode fails
				Content: map[string]any{"headline": map[string]any{"unexpected": true}},
			},
			{ID: "cta-1", Type: siteconfig.KindCTA, Enabled: true, Content: map[string]any{"headline": "Still Here"}},
		},
	}

	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	require.NoError(t, err)
	// The malformed hero degraded instead of taking down the page
	assert.Contains(t, html, "Still Here")
	assert.Contains(t, html, "section-generic")
}

// TestRenderDocument tests full-page assembly
func TestRenderDocument(t *testing.T) {
	t.Parallel()

	business := &models.Business{
		ID: "biz-1", Slug: "acme", Name: "acme plumbing",
		City: "springfield", State: "IL", Phone: "(217) 555-0199",
		Industry: "plumbing",
	}
	cfg := siteconfig.GenerateDefault(business)

	html, err := testRenderer().RenderDocument(cfg, siteconfig.HomeSlug, testSummary(), "/s/acme", Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, ":root {")
	assert.Contains(t, html, "--color-primary: "+cfg.Theme.Colors.Primary)
	assert.Contains(t, html, "site-header")
	assert.Contains(t, html, "site-footer")
	// Header links carry the base path
	assert.Contains(t, html, `href="/s/acme/about"`)
	// Hero section made it into the body
	assert.Contains(t, html, "section-hero")
}

// TestRenderDocument_UnknownPage tests the missing-page error
func TestRenderDocument_UnknownPage(t *testing.T) {
	t.Parallel()

	cfg := &siteconfig.SiteConfig{
		Version: 1,
		Theme:   siteconfig.DefaultTheme(),
		Pages:   []siteconfig.PageConfig{{Slug: siteconfig.HomeSlug}},
	}
	_, err := testRenderer().RenderDocument(cfg, "missing", testSummary(), "", Options{})
	assert.Error(t, err)
}

// TestSectionStylesRenderedInline tests the style attribute path
func TestSectionStylesRenderedInline(t *testing.T) {
	t.Parallel()

	page := &siteconfig.PageConfig{
		Sections: []siteconfig.SectionConfig{
			{
				ID:      "cta-1",
				Type:    siteconfig.KindCTA,
				Enabled: true,
				Content: map[string]any{"headline": "Styled"},
				Styles:  map[string]any{"paddingTop": "6rem"},
			},
		},
	}

	html, err := testRenderer().RenderPage(page, siteconfig.DefaultTheme(), testSummary(), "", Options{})
	require.NoError(t, err)
	assert.Contains(t, html, `style="padding-top: 6rem"`)
}
