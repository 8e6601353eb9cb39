package siteconfig

import (
	"testing"

	"siteforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness() *models.Business {
	return &models.Business{
		ID:          "biz-1",
		Slug:        "acme-plumbing",
		Name:        "acme plumbing",
		City:        "springfield",
		State:       "IL",
		Phone:       "(217) 555-0199",
		Industry:    "plumbing",
		Rating:      4.8,
		ReviewCount: 120,
	}
}

// TestGenerateDefault_ProducesValidDocument tests the generator's core contract
func TestGenerateDefault_ProducesValidDocument(t *testing.T) {
	t.Parallel()

	cfg := GenerateDefault(testBusiness())
	require.NoError(t, Validate(cfg))
	assert.Equal(t, SchemaVersion, cfg.Version)

	require.NotNil(t, cfg.FindPage(HomeSlug))
	require.NotNil(t, cfg.FindPage("about"))
	require.NotNil(t, cfg.FindPage("contact"))
}

// TestGenerateDefault_HomePageSectionOrder tests the canonical home layout
func TestGenerateDefault_HomePageSectionOrder(t *testing.T) {
	t.Parallel()

	cfg := GenerateDefault(testBusiness())
	home := cfg.FindPage(HomeSlug)
	require.NotNil(t, home)

	types := make([]string, 0, len(home.Sections))
	for _, s := range home.Sections {
		assert.True(t, s.Enabled)
		assert.NotEmpty(t, s.ID)
		types = append(types, s.Type)
	}
	assert.Equal(t, []string{KindHero, KindTrustBar, KindServices, KindReviews, KindCTA, KindContactForm}, types)
}

// TestGenerateDefault_BrandColorsOverlayTheme tests branding overlay
func TestGenerateDefault_BrandColorsOverlayTheme(t *testing.T) {
	t.Parallel()

	business := testBusiness()
	business.PrimaryColor = "#0a0a0a"
	business.AccentColor = "#ff6600"

	cfg := GenerateDefault(business)
	assert.Equal(t, "#0a0a0a", cfg.Theme.Colors.Primary)
	assert.Equal(t, "#ff6600", cfg.Theme.Colors.Accent)
	// Tokens without a branding override keep the baseline
	assert.Equal(t, DefaultTheme().Colors.Background, cfg.Theme.Colors.Background)
}

// TestGenerateDefault_IndustryServices tests industry-aware starter content
func TestGenerateDefault_IndustryServices(t *testing.T) {
	t.Parallel()

	plumber := GenerateDefault(testBusiness())
	home := plumber.FindPage(HomeSlug)
	var services *SectionConfig
	for i := range home.Sections {
		if home.Sections[i].Type == KindServices {
			services = &home.Sections[i]
		}
	}
	require.NotNil(t, services)
	require.NotNil(t, services.Content["services"], "services content should carry a service list")

	assert.Equal(t, "Drain Cleaning", defaultServices(testBusiness())[0].Name)

	// An unrecognized industry gets generic placeholders
	other := testBusiness()
	other.Industry = "taxidermy"
	generic := defaultServices(other)
	require.Len(t, generic, 3)
	assert.Equal(t, "Service One", generic[0].Name)
}

// TestGenerateDefault_RatingTrustItem tests the conditional rating badge
func TestGenerateDefault_RatingTrustItem(t *testing.T) {
	t.Parallel()

	rated := GenerateDefault(testBusiness())
	trust := rated.FindPage(HomeSlug).Sections[1]
	require.Equal(t, KindTrustBar, trust.Type)
	items := trust.Content["items"].([]any)
	assert.Contains(t, items[0], "4.8")

	unrated := testBusiness()
	unrated.Rating = 3.9
	cfg := GenerateDefault(unrated)
	items = cfg.FindPage(HomeSlug).Sections[1].Content["items"].([]any)
	for _, item := range items {
		assert.NotContains(t, item, "3.9")
	}
}

// TestGenerateDefault_TitleCasesNames tests copy normalization
func TestGenerateDefault_TitleCasesNames(t *testing.T) {
	t.Parallel()

	cfg := GenerateDefault(testBusiness())
	home := cfg.FindPage(HomeSlug)
	assert.Equal(t, "Acme Plumbing", home.Title)

	hero := home.Sections[0]
	assert.Contains(t, hero.Content["headline"], "Springfield")
}

// TestGenerateDefault_DoesNotMutateBusiness tests generator purity
func TestGenerateDefault_DoesNotMutateBusiness(t *testing.T) {
	t.Parallel()

	business := testBusiness()
	before := *business
	_ = GenerateDefault(business)
	assert.Equal(t, before, *business)
}
