package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name       string
		categories string
		token      string
		mode       Mode
		want       bool
	}{
		{"all shows everything", "", All, ModeToken, true},
		{"all shows tagged", "web", All, ModeSubstring, true},
		{"exact tag", "branding web", "web", ModeToken, true},
		{"missing tag", "branding web", "print", ModeToken, false},
		{"empty attr", "", "web", ModeToken, false},
		{"token ignores overlap", "graphic-design", "design", ModeToken, false},
		{"substring accepts overlap", "graphic-design", "design", ModeSubstring, true},
		{"substring miss", "branding", "web", ModeSubstring, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.categories, tt.token, tt.mode))
		})
	}
}

func TestTokenMatchImpliesSubstring(t *testing.T) {
	attrs := []string{"", "web", "graphic-design web", "ux ui branding"}
	tokens := []string{"web", "design", "ui", "ux", "branding"}
	for _, a := range attrs {
		for _, tok := range tokens {
			if Matches(a, tok, ModeToken) {
				assert.True(t, Matches(a, tok, ModeSubstring), "%q in %q", tok, a)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, m)

	m, err = ParseMode("substring")
	require.NoError(t, err)
	assert.Equal(t, ModeSubstring, m)

	_, err = ParseMode("fuzzy")
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Graphic Design", Label("graphic-design"))
	assert.Equal(t, "Ux", Label("ux"))
	assert.Equal(t, "Print Media", Label("print_media"))
}
