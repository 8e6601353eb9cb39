package render

import (
	"fmt"
	"html/template"
	"strings"

	"siteforge/internal/models"
	"siteforge/internal/registry"
	"siteforge/internal/siteconfig"

	"github.com/sirupsen/logrus"
)

// Options tweaks rendering behavior per request.
type Options struct {
	// Editing renders editor affordances such as the empty-page
	// placeholder; it is never set on the public site path.
	Editing bool
}

// Renderer renders pages from a resolved configuration, dispatching each
// section through the injected registry.
type Renderer struct {
	registry *registry.Registry
}

// NewRenderer constructs a Renderer around a populated registry.
func NewRenderer(reg *registry.Registry) *Renderer {
	return &Renderer{registry: reg}
}

// RenderPage renders the sections of one page, in editorial order,
// skipping disabled sections. Sections without a registered renderer
// fall back to the generic renderer; an individual section render
// failure is logged and the section skipped so one bad section never
// takes down the page. Callers must supply a resolved theme and
// business; passing nil is a programmer error, not a runtime condition.
func (r *Renderer) RenderPage(page *siteconfig.PageConfig, theme *siteconfig.ThemeConfig, business models.BusinessSummary, basePath string, opts Options) (string, error) {
	if page == nil {
		return "", fmt.Errorf("render: page is nil")
	}
	if theme == nil {
		return "", fmt.Errorf("render: theme is nil")
	}

	data := &registry.RenderData{
		ThemeVars: ThemeVars(theme),
		Business:  business,
		BasePath:  basePath,
		Editing:   opts.Editing,
	}

	enabled := page.EnabledSections()
	if len(enabled) == 0 {
		if opts.Editing {
			return `<div class="empty-page">No sections yet. Add your first section to get started.</div>`, nil
		}
		return "", nil
	}

	var b strings.Builder
	for i := range enabled {
		section := &enabled[i]
		renderFn := r.registry.Get(section.Type)
		if renderFn == nil {
			renderFn = RenderGeneric
		}
		if err := renderFn(&b, section, data); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"section_id":   section.ID,
				"section_type": section.Type,
				"page_slug":    page.Slug,
			}).Warn("Section render failed, skipping")
		}
	}
	return b.String(), nil
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
{{.CSSVars}}
body { margin: 0; font-family: var(--font-body), sans-serif; color: var(--color-text); background: var(--color-background); }
h1, h2, h3 { font-family: var(--font-heading), sans-serif; }
.section { padding: 3rem 1.5rem; max-width: 72rem; margin: 0 auto; }
.btn { display: inline-block; padding: 0.75rem 1.5rem; border-radius: var(--border-radius); text-decoration: none; }
.btn-primary { background: var(--color-primary); color: var(--color-background); }
.btn-accent { background: var(--color-accent); color: var(--color-background); }
.site-header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 1.5rem; background: var(--color-primary); color: var(--color-background); }
.site-header a { color: inherit; text-decoration: none; margin-left: 1rem; }
.site-footer { padding: 2rem 1.5rem; background: var(--color-primary-dark); color: var(--color-background); }
.site-footer a { color: inherit; }
.footer-columns { display: flex; gap: 2rem; flex-wrap: wrap; }
</style>
</head>
<body>
<header class="site-header">
  <span class="site-name">{{.Business.Name}}</span>
  <nav>
    {{range .Header.MenuItems}}<a href="{{$.BasePath}}{{.Href}}">{{.Label}}</a>{{end}}
    {{if and .Header.ShowPhone .Business.Phone}}<a href="tel:{{.Business.Phone}}">{{.Business.Phone}}</a>{{end}}
    {{if .Header.ShowCTA}}<a class="btn btn-accent" href="{{.BasePath}}/contact">{{.Header.CTAText}}</a>{{end}}
  </nav>
</header>
<main>
{{.Body}}
</main>
<footer class="site-footer footer-{{.Footer.Variant}}">
  {{if ne .Footer.Variant "minimal"}}
  <div class="footer-columns">
    {{range .Footer.Columns}}
    <div class="footer-column footer-column-{{.Type}}">
      {{if .Title}}<h3>{{.Title}}</h3>{{end}}
      {{if eq .Type "links"}}{{range .Links}}<p><a href="{{$.BasePath}}{{.Href}}">{{.Label}}</a></p>{{end}}{{end}}
      {{if eq .Type "contact"}}{{if $.Business.Phone}}<p>{{$.Business.Phone}}</p>{{end}}<p>{{$.Business.City}}{{if $.Business.State}}, {{$.Business.State}}{{end}}</p>{{end}}
      {{if eq .Type "text"}}<p>{{.Text}}</p>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Footer.BottomText}}<p class="footer-bottom">{{.Footer.BottomText}}</p>{{end}}
</footer>
</body>
</html>
`))

type documentData struct {
	Title    string
	CSSVars  template.CSS
	Business models.BusinessSummary
	Header   siteconfig.HeaderConfig
	Footer   siteconfig.FooterConfig
	BasePath string
	Body     template.HTML
}

// RenderDocument renders a complete HTML document for one page: head
// with theme CSS variables, the global header and footer, and the
// page's sections in between.
func (r *Renderer) RenderDocument(cfg *siteconfig.SiteConfig, pageSlug string, business models.BusinessSummary, basePath string, opts Options) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("render: config is nil")
	}
	page := cfg.FindPage(pageSlug)
	if page == nil {
		return "", fmt.Errorf("render: page %q not found", pageSlug)
	}

	body, err := r.RenderPage(page, cfg.Theme, business, basePath, opts)
	if err != nil {
		return "", err
	}

	title := page.Title
	if title == "" {
		title = business.Name
	}

	var b strings.Builder
	err = documentTemplate.Execute(&b, documentData{
		Title:    title,
		CSSVars:  template.CSS(cssVariables(ThemeVars(cfg.Theme))),
		Business: business,
		Header:   cfg.Globals.Header,
		Footer:   cfg.Globals.Footer,
		BasePath: basePath,
		Body:     template.HTML(body),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
