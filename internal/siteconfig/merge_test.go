package siteconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeJSON_ObjectsMergeRecursively tests the core merge rule
func TestMergeJSON_ObjectsMergeRecursively(t *testing.T) {
	t.Parallel()

	target := []byte(`{"colors":{"primary":"#111111","accent":"#222222"},"fonts":{"body":"Inter"}}`)
	source := []byte(`{"colors":{"primary":"#999999"}}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	colors := result["colors"].(map[string]any)
	assert.Equal(t, "#999999", colors["primary"])
	// Sibling keys in the nested object survive
	assert.Equal(t, "#222222", colors["accent"])
	assert.Equal(t, "Inter", result["fonts"].(map[string]any)["body"])
}

// TestMergeJSON_ArraysReplaceWholesale tests that arrays never merge element-wise
func TestMergeJSON_ArraysReplaceWholesale(t *testing.T) {
	t.Parallel()

	target := []byte(`{"items":["a","b","c"]}`)
	source := []byte(`{"items":["z"]}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	assert.Equal(t, []any{"z"}, result["items"])
}

// TestMergeJSON_NullValuesIgnored tests that null never clears target fields
func TestMergeJSON_NullValuesIgnored(t *testing.T) {
	t.Parallel()

	target := []byte(`{"headline":"Hello","sub":"World"}`)
	source := []byte(`{"headline":null,"sub":"Updated"}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	assert.Equal(t, "Hello", result["headline"])
	assert.Equal(t, "Updated", result["sub"])
}

// TestMergeJSON_ScalarReplacesObject tests type-changing overwrites
func TestMergeJSON_ScalarReplacesObject(t *testing.T) {
	t.Parallel()

	target := []byte(`{"value":{"nested":true}}`)
	source := []byte(`{"value":"flat"}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	assert.Equal(t, "flat", result["value"])
}

// TestMergeJSON_KeysWithMetacharacters tests literal keys containing path syntax
func TestMergeJSON_KeysWithMetacharacters(t *testing.T) {
	t.Parallel()

	target := []byte(`{"a.b":"old","c":1}`)
	source := []byte(`{"a.b":"new"}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	assert.Equal(t, "new", result["a.b"])
	assert.Equal(t, float64(1), result["c"])
}

// TestMergeJSON_KeysWithBackslash tests that a literal backslash in a
// key does not corrupt the write path
func TestMergeJSON_KeysWithBackslash(t *testing.T) {
	t.Parallel()

	target := []byte(`{"keep":true}`)
	source := []byte(`{"a\\b":"new"}`)

	merged, err := MergeJSON(target, source)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(merged, &result))
	assert.Equal(t, "new", result[`a\b`])
	assert.Equal(t, true, result["keep"])
}

// TestMergeJSON_RejectsNonObjectSource tests input validation
func TestMergeJSON_RejectsNonObjectSource(t *testing.T) {
	t.Parallel()

	_, err := MergeJSON([]byte(`{}`), []byte(`["not","an","object"]`))
	require.Error(t, err)
}

// TestApplyPatch tests the section patch semantics
func TestApplyPatch(t *testing.T) {
	t.Parallel()

	section := SectionConfig{
		ID:      "hero-1",
		Type:    KindHero,
		Enabled: true,
		Content: map[string]any{"headline": "Old", "subheadline": "Keep me"},
		Styles:  map[string]any{"paddingTop": "2rem"},
	}

	enabled := false
	err := section.ApplyPatch(SectionPatch{
		Enabled: &enabled,
		Content: map[string]any{"headline": "New"},
		Styles:  map[string]any{"background": "#fff"},
	})
	require.NoError(t, err)

	assert.False(t, section.Enabled)
	assert.Equal(t, KindHero, section.Type)
	assert.Equal(t, "New", section.Content["headline"])
	assert.Equal(t, "Keep me", section.Content["subheadline"])
	assert.Equal(t, "2rem", section.Styles["paddingTop"])
	assert.Equal(t, "#fff", section.Styles["background"])
}

// TestApplyPatch_NilFieldsUntouched tests that an empty patch changes nothing
func TestApplyPatch_NilFieldsUntouched(t *testing.T) {
	t.Parallel()

	section := SectionConfig{ID: "s", Type: KindCTA, Enabled: true, Content: map[string]any{"headline": "x"}}
	require.NoError(t, section.ApplyPatch(SectionPatch{}))
	assert.True(t, section.Enabled)
	assert.Equal(t, "x", section.Content["headline"])
}

// TestMergeTheme tests partial theme merging
func TestMergeTheme(t *testing.T) {
	t.Parallel()

	current := DefaultTheme()
	merged, err := MergeTheme(current, json.RawMessage(`{"colors":{"accent":"#abcdef"},"fonts":{"heading":"Poppins"}}`))
	require.NoError(t, err)

	assert.Equal(t, "#abcdef", merged.Colors.Accent)
	assert.Equal(t, "Poppins", merged.Fonts.Heading)
	// Unmentioned tokens keep their current values
	assert.Equal(t, current.Colors.Primary, merged.Colors.Primary)
	assert.Equal(t, current.Fonts.Body, merged.Fonts.Body)
	assert.Equal(t, current.BorderRadius, merged.BorderRadius)
}
