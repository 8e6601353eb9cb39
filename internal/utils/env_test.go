package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvOrDefault tests environment lookup with fallback
func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("UTILS_TEST_SET", "value")

	assert.Equal(t, "value", GetEnvOrDefault("UTILS_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("UTILS_TEST_UNSET", "fallback"))
}

// TestParseInteger tests int parsing with fallback
func TestParseInteger(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		expected int
	}{
		{"valid", "42", 7, 42},
		{"negative", "-3", 7, -3},
		{"empty", "", 7, 7},
		{"garbage", "abc", 7, 7},
		{"float", "3.5", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInteger(tt.value, tt.fallback))
		})
	}
}

// TestParseInteger64 tests int64 parsing with fallback
func TestParseInteger64(t *testing.T) {
	assert.Equal(t, int64(10737418240), ParseInteger64("10737418240", 1))
	assert.Equal(t, int64(5), ParseInteger64("", 5))
	assert.Equal(t, int64(5), ParseInteger64("not-a-number", 5))
}

// TestParseBoolean tests bool parsing with fallback
func TestParseBoolean(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"mixed case", "TRUE", false, true},
		{"false", "false", true, false},
		{"zero", "0", true, false},
		{"empty", "", true, true},
		{"garbage", "yes", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBoolean(tt.value, tt.fallback))
		})
	}
}

// TestParseArray tests comma-separated list parsing
func TestParseArray(t *testing.T) {
	fallback := []string{"*"}

	assert.Equal(t, []string{"a", "b"}, ParseArray("a,b", fallback))
	assert.Equal(t, []string{"a", "b"}, ParseArray(" a , b ", fallback))
	assert.Equal(t, []string{"a"}, ParseArray("a,,", fallback))
	assert.Equal(t, fallback, ParseArray("", fallback))
	assert.Equal(t, fallback, ParseArray(" , ", fallback))
}
