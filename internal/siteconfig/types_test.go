package siteconfig

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSectionID tests id generation
func TestNewSectionID(t *testing.T) {
	t.Parallel()

	id := NewSectionID(KindHero)
	assert.True(t, strings.HasPrefix(id, "hero-"))
	assert.Equal(t, id, strings.ToLower(id))

	assert.True(t, strings.HasPrefix(NewSectionID(""), "section-"))

	seen := make(map[string]struct{})
	for range 100 {
		seen[NewSectionID(KindCTA)] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

// TestIsKnownKind tests the closed kind set
func TestIsKnownKind(t *testing.T) {
	t.Parallel()

	for _, kind := range KnownKinds {
		assert.True(t, IsKnownKind(kind), kind)
	}
	assert.False(t, IsKnownKind("ai-generated-banner"))
	assert.False(t, IsKnownKind(""))
}

// TestSectionKind tests open-kind normalization
func TestSectionKind(t *testing.T) {
	t.Parallel()

	known := SectionConfig{Type: KindFAQ}
	assert.Equal(t, KindFAQ, known.Kind())

	open := SectionConfig{Type: "mystery"}
	assert.Equal(t, "", open.Kind())
}

// TestFindPageAndSection tests the lookup helpers
func TestFindPageAndSection(t *testing.T) {
	t.Parallel()

	cfg := &SiteConfig{Pages: []PageConfig{
		{Slug: HomeSlug, Sections: []SectionConfig{{ID: "a", Enabled: true}, {ID: "b"}}},
		{Slug: "contact"},
	}}

	home := cfg.FindPage(HomeSlug)
	require.NotNil(t, home)
	assert.Nil(t, cfg.FindPage("missing"))

	assert.NotNil(t, home.FindSection("a"))
	assert.Nil(t, home.FindSection("z"))

	// Mutations through the returned pointer land in the document
	home.FindSection("a").Enabled = false
	assert.False(t, cfg.Pages[0].Sections[0].Enabled)
}

// TestEnabledSections tests render-order filtering
func TestEnabledSections(t *testing.T) {
	t.Parallel()

	page := PageConfig{Sections: []SectionConfig{
		{ID: "a", Enabled: true},
		{ID: "b", Enabled: false},
		{ID: "c", Enabled: true},
	}}

	enabled := page.EnabledSections()
	require.Len(t, enabled, 2)
	assert.Equal(t, "a", enabled[0].ID)
	assert.Equal(t, "c", enabled[1].ID)
}
