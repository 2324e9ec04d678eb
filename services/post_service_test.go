package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		pattern string
	}{
		{"plain term passes through", "pride", "pride"},
		{"regex syntax is kept", "prid[eo]", "prid[eo]"},
		{"alternation is kept", "pride|peugeot", "pride|peugeot"},
		{"invalid regex becomes a literal", "c++", `c\+\+`},
		{"unbalanced bracket becomes a literal", "[pride", `\[pride`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchPattern(tt.search)
			assert.Equal(t, tt.pattern, got.Pattern)
			assert.Equal(t, "i", got.Options)
		})
	}
}
