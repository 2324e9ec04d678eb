package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Cars", "cars"},
		{"spaces to dashes", "Home Appliances", "home-appliances"},
		{"collapses separators", "Heavy   Machinery", "heavy-machinery"},
		{"mixed separators", "real_estate rent", "real-estate-rent"},
		{"trims", "  Laptops  ", "laptops"},
		{"drops punctuation", "TVs & Audio!", "tvs-audio"},
		{"persian kept", "لوازم خانگی", "لوازم-خانگی"},
		{"trailing separator dropped", "phones-", "phones"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to underscores", "Engine Size", "engine_size"},
		{"already normalized", "color", "color"},
		{"keeps underscores", "fuel_type", "fuel_type"},
		{"persian kept", "رنگ بدنه", "رنگ_بدنه"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugifyKey(tt.input))
		})
	}
}
