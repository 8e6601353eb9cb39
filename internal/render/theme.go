// Package render turns a resolved site configuration into HTML pages,
// dispatching each section to its registered renderer.
package render

import (
	"fmt"
	"sort"
	"strings"

	"siteforge/internal/siteconfig"
)

// borderRadiusScale maps the border-radius keyword to a concrete rem value.
var borderRadiusScale = map[string]string{
	"none": "0",
	"sm":   "0.25rem",
	"md":   "0.5rem",
	"lg":   "0.75rem",
	"xl":   "1rem",
}

// ThemeVars flattens a theme into render-time style variables: one entry
// per color and font token, plus the border-radius keyword resolved
// through the fixed scale. Unknown radius keywords fall back to "md".
func ThemeVars(theme *siteconfig.ThemeConfig) map[string]string {
	radius, ok := borderRadiusScale[theme.BorderRadius]
	if !ok {
		radius = borderRadiusScale["md"]
	}
	return map[string]string{
		"color-primary":        theme.Colors.Primary,
		"color-primary-dark":   theme.Colors.PrimaryDark,
		"color-primary-light":  theme.Colors.PrimaryLight,
		"color-accent":         theme.Colors.Accent,
		"color-accent-hover":   theme.Colors.AccentHover,
		"color-accent-muted":   theme.Colors.AccentMuted,
		"color-accent-light":   theme.Colors.AccentLight,
		"color-background":     theme.Colors.Background,
		"color-background-alt": theme.Colors.BackgroundAlt,
		"color-text":           theme.Colors.Text,
		"color-text-muted":     theme.Colors.TextMuted,
		"font-heading":         theme.Fonts.Heading,
		"font-body":            theme.Fonts.Body,
		"border-radius":        radius,
	}
}

// cssVariables renders theme vars as a CSS custom-property block for the
// document root, in sorted order for deterministic output.
func cssVariables(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  --%s: %s;\n", k, vars[k])
	}
	b.WriteString("}")
	return b.String()
}

// styleAttr converts a free-form styles map into an inline style string.
// Only scalar values are emitted; camelCase keys become kebab-case CSS
// properties. Returns an empty string for an empty map.
func styleAttr(styles map[string]any) string {
	if len(styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := styles[k].(type) {
		case string:
			parts = append(parts, kebabCase(k)+": "+v)
		case float64:
			parts = append(parts, fmt.Sprintf("%s: %v", kebabCase(k), v))
		case bool:
			// booleans are not valid CSS values; skip
		}
	}
	return strings.Join(parts, "; ")
}

func kebabCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
