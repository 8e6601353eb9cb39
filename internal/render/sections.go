package render

import (
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"sort"
	"strings"

	"siteforge/internal/registry"
	"siteforge/internal/siteconfig"
)

// sectionData is the execution context handed to every section template.
type sectionData struct {
	ID      string
	Type    string
	Style   string
	Content any
	Render  *registry.RenderData
}

var sectionTemplates = template.Must(template.New("sections").Parse(`
{{define "hero"}}
<section id="{{.ID}}" class="section section-hero" data-type="hero"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.BackgroundImage}}<div class="hero-bg" style="background-image: url('{{.Content.BackgroundImage}}')"></div>{{end}}
  <div class="hero-inner">
    <h1>{{.Content.Headline}}</h1>
    {{if .Content.Subheadline}}<p class="hero-sub">{{.Content.Subheadline}}</p>{{end}}
    <div class="hero-actions">
      {{if .Content.PrimaryCTA}}<a class="btn btn-primary" href="{{.Render.BasePath}}{{.Content.PrimaryCTA.Href}}">{{.Content.PrimaryCTA.Text}}</a>{{end}}
      {{if .Content.SecondaryCTA}}<a class="btn btn-secondary" href="{{.Render.BasePath}}{{.Content.SecondaryCTA.Href}}">{{.Content.SecondaryCTA.Text}}</a>{{end}}
    </div>
  </div>
</section>
{{end}}

{{define "trust-bar"}}
<section id="{{.ID}}" class="section section-trust-bar" data-type="trust-bar"{{if .Style}} style="{{.Style}}"{{end}}>
  <ul class="trust-items">
    {{range .Content.Items}}<li>{{.}}</li>{{end}}
  </ul>
</section>
{{end}}

{{define "services"}}
<section id="{{.ID}}" class="section section-services" data-type="services"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <div class="service-grid">
    {{range .Content.Services}}
    <div class="service-card">
      {{if .Icon}}<span class="service-icon">{{.Icon}}</span>{{end}}
      <h3>{{.Name}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}

{{define "reviews"}}
<section id="{{.ID}}" class="section section-reviews" data-type="reviews"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <div class="review-grid">
    {{range .Content.Reviews}}
    <blockquote class="review-card">
      <p>{{.Text}}</p>
      <footer>{{.Reviewer}} — {{.Rating}}★</footer>
    </blockquote>
    {{end}}
  </div>
</section>
{{end}}

{{define "cta"}}
<section id="{{.ID}}" class="section section-cta" data-type="cta"{{if .Style}} style="{{.Style}}"{{end}}>
  <h2>{{.Content.Headline}}</h2>
  {{if .Content.Subheadline}}<p>{{.Content.Subheadline}}</p>{{end}}
  {{if .Content.Button}}<a class="btn btn-accent" href="{{.Render.BasePath}}{{.Content.Button.Href}}">{{.Content.Button.Text}}</a>{{end}}
</section>
{{end}}

{{define "contact-form"}}
<section id="{{.ID}}" class="section section-contact-form" data-type="contact-form"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <form method="post" action="{{.Render.BasePath}}/leads">
    {{range .Content.Fields}}
    <label>{{.Label}}{{if .Required}} *{{end}}
      {{if eq .Type "textarea"}}<textarea name="{{.Name}}"{{if .Required}} required{{end}}></textarea>
      {{else if eq .Type "select"}}<select name="{{.Name}}"{{if .Required}} required{{end}}>{{range .Options}}<option>{{.}}</option>{{end}}</select>
      {{else}}<input type="{{.Type}}" name="{{.Name}}"{{if .Required}} required{{end}}>{{end}}
    </label>
    {{end}}
    <button type="submit" class="btn btn-primary">{{if .Content.SubmitText}}{{.Content.SubmitText}}{{else}}Submit{{end}}</button>
  </form>
</section>
{{end}}

{{define "service-area"}}
<section id="{{.ID}}" class="section section-service-area" data-type="service-area"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <ul class="area-list">
    {{range .Content.Areas}}<li>{{.}}</li>{{end}}
  </ul>
</section>
{{end}}

{{define "faq"}}
<section id="{{.ID}}" class="section section-faq" data-type="faq"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  {{range .Content.Items}}
  <details class="faq-item">
    <summary>{{.Question}}</summary>
    <p>{{.Answer}}</p>
  </details>
  {{end}}
</section>
{{end}}

{{define "gallery"}}
<section id="{{.ID}}" class="section section-gallery" data-type="gallery"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <div class="gallery-grid">
    {{range .Content.Images}}
    <figure>
      <img src="{{.URL}}" alt="{{.Alt}}" loading="lazy">
      {{if .Caption}}<figcaption>{{.Caption}}</figcaption>{{end}}
    </figure>
    {{end}}
  </div>
</section>
{{end}}

{{define "text-block"}}
<section id="{{.ID}}" class="section section-text-block" data-type="text-block"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <p>{{.Content.Body}}</p>
</section>
{{end}}

{{define "features"}}
<section id="{{.ID}}" class="section section-features" data-type="features"{{if .Style}} style="{{.Style}}"{{end}}>
  {{if .Content.Headline}}<h2>{{.Content.Headline}}</h2>{{end}}
  <div class="feature-grid">
    {{range .Content.Features}}
    <div class="feature-card">
      {{if .Icon}}<span class="feature-icon">{{.Icon}}</span>{{end}}
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </div>
</section>
{{end}}
`))

// decodeContent round-trips a section's open content map into the typed
// payload shape used by its template. Fields the map does not carry stay
// zero; extra fields are dropped from the render but preserved in the
// stored document.
func decodeContent(content map[string]any, out any) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// typedRenderer builds a RenderFunc that decodes content into a fresh
// instance from newContent and executes the named template.
func typedRenderer(name string, newContent func() any) registry.RenderFunc {
	return func(w io.Writer, section *siteconfig.SectionConfig, data *registry.RenderData) error {
		content := newContent()
		if err := decodeContent(section.Content, content); err != nil {
			// Malformed content degrades to the generic renderer
			// rather than breaking the page.
			return RenderGeneric(w, section, data)
		}
		return sectionTemplates.ExecuteTemplate(w, name, sectionData{
			ID:      section.ID,
			Type:    section.Type,
			Style:   styleAttr(section.Styles),
			Content: content,
			Render:  data,
		})
	}
}

// RenderGeneric renders a section's raw content best-effort, without any
// kind-specific schema. Used for AI-generated and not-yet-implemented
// section kinds so they never break the page.
func RenderGeneric(w io.Writer, section *siteconfig.SectionConfig, _ *registry.RenderData) error {
	var b strings.Builder
	style := styleAttr(section.Styles)
	fmt.Fprintf(&b, `<section id="%s" class="section section-generic" data-type="%s"`,
		html.EscapeString(section.ID), html.EscapeString(section.Type))
	if style != "" {
		fmt.Fprintf(&b, ` style="%s"`, html.EscapeString(style))
	}
	b.WriteString(">\n")

	if headline, ok := section.Content["headline"].(string); ok && headline != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(headline))
	}
	writeGenericValue(&b, section.Content, "headline")

	b.WriteString("</section>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// writeGenericValue walks an arbitrary content value and emits plain HTML.
func writeGenericValue(b *strings.Builder, value any, skipKey string) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			if k != skipKey {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch child := v[k].(type) {
			case string:
				if child != "" {
					fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(child))
				}
			case float64, bool:
				fmt.Fprintf(b, "<p>%s: %v</p>\n", html.EscapeString(k), child)
			default:
				writeGenericValue(b, child, "")
			}
		}
	case []any:
		b.WriteString("<ul>\n")
		for _, item := range v {
			switch child := item.(type) {
			case string:
				fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(child))
			default:
				b.WriteString("<li>")
				writeGenericValue(b, child, "")
				b.WriteString("</li>\n")
			}
		}
		b.WriteString("</ul>\n")
	case string:
		if v != "" {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(v))
		}
	}
}

// NewRegistry constructs the section registry with every builtin
// renderer registered. Called once at container build time; the
// registry is read-only afterwards.
func NewRegistry() *registry.Registry {
	r := registry.New()

	builtins := []struct {
		kind       string
		label      string
		icon       string
		newContent func() any
	}{
		{siteconfig.KindHero, "Hero", "image", func() any { return &siteconfig.HeroContent{} }},
		{siteconfig.KindTrustBar, "Trust Bar", "shield", func() any { return &siteconfig.TrustBarContent{} }},
		{siteconfig.KindServices, "Services", "wrench", func() any { return &siteconfig.ServicesContent{} }},
		{siteconfig.KindReviews, "Reviews", "star", func() any { return &siteconfig.ReviewsContent{} }},
		{siteconfig.KindCTA, "Call to Action", "megaphone", func() any { return &siteconfig.CTAContent{} }},
		{siteconfig.KindContactForm, "Contact Form", "mail", func() any { return &siteconfig.ContactFormContent{} }},
		{siteconfig.KindServiceArea, "Service Area", "map", func() any { return &siteconfig.ServiceAreaContent{} }},
		{siteconfig.KindFAQ, "FAQ", "help-circle", func() any { return &siteconfig.FAQContent{} }},
		{siteconfig.KindGallery, "Gallery", "camera", func() any { return &siteconfig.GalleryContent{} }},
		{siteconfig.KindTextBlock, "Text Block", "align-left", func() any { return &siteconfig.TextBlockContent{} }},
		{siteconfig.KindFeatures, "Features", "grid", func() any { return &siteconfig.FeaturesContent{} }},
	}

	for _, b := range builtins {
		r.Register(b.kind, typedRenderer(b.kind, b.newContent), registry.Metadata{
			Label:          b.label,
			Icon:           b.icon,
			DefaultContent: siteconfig.DefaultContent(b.kind),
		})
	}

	return r
}
