package siteconfig

import (
	"fmt"
	"strings"

	"siteforge/internal/models"
	"siteforge/internal/utils"
)

// servicesAnchorID is the fragment target of the default hero's
// secondary call to action.
const servicesAnchorID = "services"

// DefaultTheme returns the baseline theme applied when a business has no
// stored customization. Business branding colors overlay these tokens.
func DefaultTheme() *ThemeConfig {
	return &ThemeConfig{
		Colors: ThemeColors{
			Primary:       "#1e3a5f",
			PrimaryDark:   "#14283f",
			PrimaryLight:  "#2d5585",
			Accent:        "#e8833a",
			AccentHover:   "#d97328",
			AccentMuted:   "#f2b183",
			AccentLight:   "#fdf0e4",
			Background:    "#ffffff",
			BackgroundAlt: "#f5f7fa",
			Text:          "#1a202c",
			TextMuted:     "#64748b",
		},
		Fonts: ThemeFonts{
			Heading: "Inter",
			Body:    "Inter",
		},
		BorderRadius: "md",
	}
}

// GenerateDefault produces a complete, valid configuration document for
// a business with no stored customization. It is a pure function: no
// I/O, no external calls, deterministic aside from generated section
// ids. This is the fallback that keeps the public site rendering when
// persistence is unavailable.
func GenerateDefault(business *models.Business) *SiteConfig {
	theme := DefaultTheme()
	if business.PrimaryColor != "" {
		theme.Colors.Primary = business.PrimaryColor
	}
	if business.AccentColor != "" {
		theme.Colors.Accent = business.AccentColor
	}

	name := utils.TitleCase(business.Name)
	city := utils.TitleCase(business.City)
	location := city
	if business.State != "" {
		if location != "" {
			location += ", " + business.State
		} else {
			location = business.State
		}
	}

	return &SiteConfig{
		Version: SchemaVersion,
		Theme:   theme,
		Globals: Globals{
			Header: HeaderConfig{
				ShowPhone: business.Phone != "",
				ShowCTA:   true,
				CTAText:   "Get a Free Quote",
				MenuItems: []MenuItem{
					{Label: "Home", Href: "/"},
					{Label: "About", Href: "/about"},
					{Label: "Contact", Href: "/contact"},
				},
			},
			Footer: FooterConfig{
				Variant: FooterVariantStandard,
				Columns: []FooterColumn{
					{Type: FooterColumnContact, Title: "Contact Us"},
					{Type: FooterColumnHours, Title: "Hours"},
					{Type: FooterColumnLinks, Title: "Quick Links", Links: []MenuItem{
						{Label: "Home", Href: "/"},
						{Label: "About", Href: "/about"},
						{Label: "Contact", Href: "/contact"},
					}},
				},
				BottomText:      fmt.Sprintf("© %s. All rights reserved.", name),
				ShowSocialLinks: false,
			},
		},
		Pages: []PageConfig{
			defaultHomePage(business, name, city, location),
			defaultAboutPage(business, name, location),
			defaultContactPage(business, name),
		},
	}
}

func defaultHomePage(business *models.Business, name, city, location string) PageConfig {
	headline := name
	if city != "" {
		industry := business.Industry
		if industry == "" {
			industry = "Services"
		}
		headline = fmt.Sprintf("%s in %s", utils.TitleCase(industry), city)
	}

	subheadline := fmt.Sprintf("%s is your trusted local choice", name)
	if location != "" {
		subheadline += " in " + location
	}
	subheadline += "."

	trustItems := []string{"Licensed & Insured", "Free Estimates", "Locally Owned"}
	if business.Rating >= 4.5 && business.ReviewCount > 0 {
		trustItems = append([]string{fmt.Sprintf("%.1f★ Rated (%d reviews)", business.Rating, business.ReviewCount)}, trustItems...)
	}

	ctaHeadline := "Ready to Get Started?"
	if business.Phone != "" {
		ctaHeadline = fmt.Sprintf("Call %s today or request a free quote online.", business.Phone)
	}

	return PageConfig{
		Slug:  HomeSlug,
		Title: name,
		Sections: []SectionConfig{
			{
				ID:      NewSectionID(KindHero),
				Type:    KindHero,
				Enabled: true,
				Content: ContentToMap(HeroContent{
					Headline:    headline,
					Subheadline: subheadline,
					PrimaryCTA:  &CTAButton{Text: "Get a Free Quote", Href: "/contact"},
					SecondaryCTA: &CTAButton{
						Text: "Our Services",
						Href: "#services",
					},
				}),
			},
			{
				ID:      NewSectionID(KindTrustBar),
				Type:    KindTrustBar,
				Enabled: true,
				Content: ContentToMap(TrustBarContent{Items: trustItems}),
			},
			{
				// Stable id so the hero's "#services" fragment link
				// resolves on the default home page.
				ID:      servicesAnchorID,
				Type:    KindServices,
				Enabled: true,
				Content: ContentToMap(ServicesContent{
					Headline: "Our Services",
					Services: defaultServices(business),
				}),
			},
			{
				ID:      NewSectionID(KindReviews),
				Type:    KindReviews,
				Enabled: true,
				Content: ContentToMap(ReviewsContent{
					Headline: "What Our Customers Say",
					Reviews:  []ReviewItem{},
				}),
			},
			{
				ID:      NewSectionID(KindCTA),
				Type:    KindCTA,
				Enabled: true,
				Content: ContentToMap(CTAContent{
					Headline: ctaHeadline,
					Button:   &CTAButton{Text: "Contact Us", Href: "/contact"},
				}),
			},
			{
				ID:      NewSectionID(KindContactForm),
				Type:    KindContactForm,
				Enabled: true,
				Content: ContentToMap(ContactFormContent{
					Headline:   "Get in Touch",
					SubmitText: "Send Message",
					Fields:     defaultFormFields(),
				}),
			},
		},
	}
}

func defaultAboutPage(business *models.Business, name, location string) PageConfig {
	body := fmt.Sprintf("%s is a locally owned and operated business", name)
	if location != "" {
		body += " serving " + location + " and the surrounding area"
	}
	body += ". We take pride in quality work, honest pricing, and treating every customer like a neighbor."

	return PageConfig{
		Slug:  "about",
		Title: "About " + name,
		Sections: []SectionConfig{
			{
				ID:      NewSectionID(KindTextBlock),
				Type:    KindTextBlock,
				Enabled: true,
				Content: ContentToMap(TextBlockContent{
					Headline: "About " + name,
					Body:     body,
				}),
			},
			{
				ID:      NewSectionID(KindFeatures),
				Type:    KindFeatures,
				Enabled: true,
				Content: ContentToMap(FeaturesContent{
					Headline: "Why Choose Us",
					Features: []FeatureItem{
						{Title: "Experienced", Description: "Years of hands-on experience you can rely on."},
						{Title: "Responsive", Description: "Fast scheduling and clear communication."},
						{Title: "Guaranteed", Description: "We stand behind every job we do."},
					},
				}),
			},
		},
	}
}

func defaultContactPage(business *models.Business, name string) PageConfig {
	headline := "Contact " + name
	if business.Phone != "" {
		headline = fmt.Sprintf("Contact %s — %s", name, business.Phone)
	}

	return PageConfig{
		Slug:  "contact",
		Title: "Contact " + name,
		Sections: []SectionConfig{
			{
				ID:      NewSectionID(KindContactForm),
				Type:    KindContactForm,
				Enabled: true,
				Content: ContentToMap(ContactFormContent{
					Headline:   headline,
					SubmitText: "Send Message",
					Fields:     defaultFormFields(),
				}),
			},
		},
	}
}

// defaultServices derives a starter service list from the business's
// industry, falling back to generic placeholders for the editor to fill in.
func defaultServices(business *models.Business) []ServiceItem {
	industry := strings.ToLower(business.Industry)
	switch {
	case strings.Contains(industry, "plumb"):
		return []ServiceItem{
			{Name: "Drain Cleaning", Description: "Fast, thorough drain and sewer cleaning."},
			{Name: "Water Heaters", Description: "Repair and installation for all major brands."},
			{Name: "Leak Repair", Description: "Locate and fix leaks before they cause damage."},
		}
	case strings.Contains(industry, "hvac"), strings.Contains(industry, "heating"), strings.Contains(industry, "cooling"):
		return []ServiceItem{
			{Name: "AC Repair", Description: "Same-day air conditioning diagnostics and repair."},
			{Name: "Furnace Service", Description: "Keep your heat running safely all winter."},
			{Name: "Installations", Description: "Efficient new system installation and replacement."},
		}
	case strings.Contains(industry, "electric"):
		return []ServiceItem{
			{Name: "Panel Upgrades", Description: "Modernize your electrical panel safely."},
			{Name: "Lighting", Description: "Indoor and outdoor lighting installation."},
			{Name: "Troubleshooting", Description: "Find and fix electrical faults fast."},
		}
	case strings.Contains(industry, "roof"):
		return []ServiceItem{
			{Name: "Roof Repair", Description: "Storm damage and leak repair."},
			{Name: "Replacement", Description: "Full tear-off and replacement with quality materials."},
			{Name: "Inspections", Description: "Free inspections and honest assessments."},
		}
	default:
		return []ServiceItem{
			{Name: "Service One", Description: "Describe your most popular service here."},
			{Name: "Service Two", Description: "Describe another service you offer."},
			{Name: "Service Three", Description: "Describe a third service you offer."},
		}
	}
}
