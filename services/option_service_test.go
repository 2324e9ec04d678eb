package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEnum(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"nil", nil, []string{}},
		{"empty string", "", []string{}},
		{"single value", "red", []string{"red"}},
		{"comma separated", "red,green,blue", []string{"red", "green", "blue"}},
		{"spaces trimmed", " red , green ", []string{"red", "green"}},
		{"empty items dropped", "red,,blue,", []string{"red", "blue"}},
		{"string slice", []string{"red", " green "}, []string{"red", "green"}},
		{"any slice", []any{"red", 42, "blue"}, []string{"red", "blue"}},
		{"unsupported type", 42, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEnum(tt.input))
		})
	}
}

func TestUpdateKey(t *testing.T) {
	tests := []struct {
		name string
		dto  OptionDTO
		want string
	}{
		{"no slug leaves the key untouched", OptionDTO{Key: "engine size"}, ""},
		{"slug triggers a rename from key", OptionDTO{Slug: "x", Key: "engine size"}, "engine_size"},
		{"slug used when no key is sent", OptionDTO{Slug: "Engine Size"}, "engine_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, updateKey(tt.dto))
		})
	}
}

func TestIsTrueIsFalse(t *testing.T) {
	assert.True(t, IsTrue(true))
	assert.True(t, IsTrue("true"))
	assert.False(t, IsTrue(false))
	assert.False(t, IsTrue("false"))
	assert.False(t, IsTrue(nil))
	assert.False(t, IsTrue("yes"))

	assert.True(t, IsFalse(false))
	assert.True(t, IsFalse("false"))
	assert.False(t, IsFalse(true))
	assert.False(t, IsFalse("true"))
	// tri-state: unknown values are neither true nor false
	assert.False(t, IsFalse(nil))
	assert.False(t, IsFalse("no"))
}
