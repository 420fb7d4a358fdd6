package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Breakfast", "breakfast"},
		{"Quick & Easy", "quick-easy"},
		{"  Late   Night  ", "late-night"},
		{"Crème Brûlée", "creme-brulee"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE", "upper-case"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "creme", RemoveDiacritics("crème"))
	assert.Equal(t, "jalapeno", RemoveDiacritics("jalapeño"))
}
