package siteconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MergeJSON deep-merges a source JSON object onto a target JSON object
// and returns the result. This is the single merge primitive behind
// every partial update: nested objects merge recursively key-by-key,
// while scalars and arrays replace wholesale. Null source values are
// ignored so a partial update never clears target fields it does not
// mention.
func MergeJSON(target, source []byte) ([]byte, error) {
	if len(target) == 0 {
		target = []byte("{}")
	}
	if len(source) == 0 {
		return target, nil
	}
	if !gjson.ValidBytes(target) {
		return nil, fmt.Errorf("merge target is not valid JSON")
	}
	src := gjson.ParseBytes(source)
	if !src.IsObject() {
		return nil, fmt.Errorf("merge source is not a JSON object")
	}
	return mergeInto(target, "", src)
}

func mergeInto(doc []byte, prefix string, src gjson.Result) ([]byte, error) {
	var err error
	src.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}
		path := escapePathKey(key.String())
		if prefix != "" {
			path = prefix + "." + path
		}
		if value.IsObject() && gjson.GetBytes(doc, path).IsObject() {
			doc, err = mergeInto(doc, path, value)
		} else {
			doc, err = sjson.SetRawBytes(doc, path, []byte(value.Raw))
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// escapePathKey escapes gjson path metacharacters in a literal map key.
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
)

func escapePathKey(key string) string {
	return pathEscaper.Replace(key)
}

// MergeMaps deep-merges source onto target and returns a new map.
// Neither input is mutated.
func MergeMaps(target, source map[string]any) (map[string]any, error) {
	targetRaw, err := json.Marshal(target)
	if err != nil {
		return nil, err
	}
	sourceRaw, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	merged, err := MergeJSON(targetRaw, sourceRaw)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(merged, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SectionPatch is a partial update to a section. Nil fields leave the
// corresponding section fields untouched; Content and Styles deep-merge
// onto the existing payloads.
type SectionPatch struct {
	Type    *string        `json:"type,omitempty"`
	Enabled *bool          `json:"enabled,omitempty"`
	Content map[string]any `json:"content,omitempty"`
	Styles  map[string]any `json:"styles,omitempty"`
}

// ApplyPatch merges a partial update onto a section in place.
func (s *SectionConfig) ApplyPatch(patch SectionPatch) error {
	if patch.Type != nil {
		s.Type = *patch.Type
	}
	if patch.Enabled != nil {
		s.Enabled = *patch.Enabled
	}
	if patch.Content != nil {
		merged, err := MergeMaps(s.Content, patch.Content)
		if err != nil {
			return err
		}
		s.Content = merged
	}
	if patch.Styles != nil {
		merged, err := MergeMaps(s.Styles, patch.Styles)
		if err != nil {
			return err
		}
		s.Styles = merged
	}
	return nil
}

// MergeTheme deep-merges a partial theme onto the current theme and
// returns the result. The partial is expressed as raw JSON so absent
// fields are distinguishable from zero values.
func MergeTheme(current *ThemeConfig, partial json.RawMessage) (*ThemeConfig, error) {
	currentRaw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	merged, err := MergeJSON(currentRaw, partial)
	if err != nil {
		return nil, err
	}
	var result ThemeConfig
	if err := json.Unmarshal(merged, &result); err != nil {
		return nil, fmt.Errorf("merged theme is not valid: %w", err)
	}
	return &result, nil
}
