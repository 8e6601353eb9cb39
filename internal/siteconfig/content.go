package siteconfig

import "encoding/json"

// Typed content payload shapes for the closed section kinds. Stored
// documents keep content as open maps; these types give the defaults
// generator and the renderers a concrete shape to work with.

// CTAButton is a call-to-action button target.
type CTAButton struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// HeroContent is the payload for hero sections.
type HeroContent struct {
	Headline        string     `json:"headline"`
	Subheadline     string     `json:"subheadline,omitempty"`
	BackgroundImage string     `json:"backgroundImage,omitempty"`
	PrimaryCTA      *CTAButton `json:"primaryCta,omitempty"`
	SecondaryCTA    *CTAButton `json:"secondaryCta,omitempty"`
}

// TrustBarContent is the payload for trust-bar sections.
type TrustBarContent struct {
	Items []string `json:"items"`
}

// ServiceItem is one entry in a services section.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ServicesContent is the payload for services sections.
type ServicesContent struct {
	Headline string        `json:"headline,omitempty"`
	Services []ServiceItem `json:"services"`
}

// ReviewItem is one entry in a reviews section.
type ReviewItem struct {
	Reviewer string  `json:"reviewer"`
	Rating   float64 `json:"rating"`
	Text     string  `json:"text"`
}

// ReviewsContent is the payload for reviews sections.
type ReviewsContent struct {
	Headline string       `json:"headline,omitempty"`
	Reviews  []ReviewItem `json:"reviews"`
}

// CTAContent is the payload for cta sections.
type CTAContent struct {
	Headline    string     `json:"headline"`
	Subheadline string     `json:"subheadline,omitempty"`
	Button      *CTAButton `json:"button,omitempty"`
}

// FormField is one typed field of a contact form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // text, email, tel, textarea, select
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// ContactFormContent is the payload for contact-form sections.
type ContactFormContent struct {
	Headline   string      `json:"headline,omitempty"`
	SubmitText string      `json:"submitText,omitempty"`
	Fields     []FormField `json:"fields"`
}

// ServiceAreaContent is the payload for service-area sections.
type ServiceAreaContent struct {
	Headline string   `json:"headline,omitempty"`
	Areas    []string `json:"areas"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQContent is the payload for faq sections.
type FAQContent struct {
	Headline string    `json:"headline,omitempty"`
	Items    []FAQItem `json:"items"`
}

// GalleryImage is one image of a gallery section.
type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// GalleryContent is the payload for gallery sections.
type GalleryContent struct {
	Headline string         `json:"headline,omitempty"`
	Images   []GalleryImage `json:"images"`
}

// TextBlockContent is the payload for text-block sections.
type TextBlockContent struct {
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body"`
}

// FeatureItem is one entry in a features section.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// FeaturesContent is the payload for features sections.
type FeaturesContent struct {
	Headline string        `json:"headline,omitempty"`
	Features []FeatureItem `json:"features"`
}

// ContentToMap converts a typed content payload into the open map form
// stored in the document. Marshaling a plain struct cannot fail, so
// errors are swallowed into an empty map.
func ContentToMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// DefaultContent returns an empty-but-shaped content payload for a known
// section kind, used to pre-populate the editor's "add section" picker.
// Unknown kinds get an empty map.
func DefaultContent(sectionType string) map[string]any {
	switch sectionType {
	case KindHero:
		return ContentToMap(HeroContent{
			Headline:   "Your Headline Here",
			PrimaryCTA: &CTAButton{Text: "Get a Free Quote", Href: "/contact"},
		})
	case KindTrustBar:
		return ContentToMap(TrustBarContent{Items: []string{"Licensed & Insured", "Free Estimates"}})
	case KindServices:
		return ContentToMap(ServicesContent{Headline: "Our Services", Services: []ServiceItem{}})
	case KindReviews:
		return ContentToMap(ReviewsContent{Headline: "What Our Customers Say", Reviews: []ReviewItem{}})
	case KindCTA:
		return ContentToMap(CTAContent{
			Headline: "Ready to Get Started?",
			Button:   &CTAButton{Text: "Contact Us", Href: "/contact"},
		})
	case KindContactForm:
		return ContentToMap(ContactFormContent{
			Headline:   "Get in Touch",
			SubmitText: "Send Message",
			Fields:     defaultFormFields(),
		})
	case KindServiceArea:
		return ContentToMap(ServiceAreaContent{Headline: "Areas We Serve", Areas: []string{}})
	case KindFAQ:
		return ContentToMap(FAQContent{Headline: "Frequently Asked Questions", Items: []FAQItem{}})
	case KindGallery:
		return ContentToMap(GalleryContent{Headline: "Our Work", Images: []GalleryImage{}})
	case KindTextBlock:
		return ContentToMap(TextBlockContent{Body: ""})
	case KindFeatures:
		return ContentToMap(FeaturesContent{Headline: "Why Choose Us", Features: []FeatureItem{}})
	default:
		return map[string]any{}
	}
}

func defaultFormFields() []FormField {
	return []FormField{
		{Name: "name", Label: "Name", Type: "text", Required: true},
		{Name: "phone", Label: "Phone", Type: "tel", Required: true},
		{Name: "email", Label: "Email", Type: "email", Required: false},
		{Name: "message", Label: "How can we help?", Type: "textarea", Required: false},
	}
}
