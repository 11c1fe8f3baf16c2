package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRating(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1, "1.00"},
		{3, "3.00"},
		{5.0 / 3.0, "1.67"},
		{20, "20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRating(tt.value))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())

	err := writeJSON(&buf, make(chan int))
	assert.Error(t, err)
}

func TestGetMaxCriterionWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow clamps to minimum", 40, 15},
		{"standard", 80, 30},
		{"wide", 100, 50},
		{"very wide clamps to maximum", 200, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxCriterionWidth(cfg))
		})
	}

	t.Run("auto detect stays in range", func(t *testing.T) {
		got := GetMaxCriterionWidth(&contract.Config{})
		assert.GreaterOrEqual(t, got, 15)
		assert.LessOrEqual(t, got, 60)
	})
}

// decodeJSON is a small helper for output assertions.
func decodeJSON(t *testing.T, data []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v))
}
