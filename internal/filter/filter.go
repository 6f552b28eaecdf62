// Package filter decides which project cards a category filter shows.
package filter

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the sentinel token that shows every card
const All = "all"

// Mode selects how a token is compared with a card's tag list
type Mode string

const (
	// ModeToken requires the token to be one of the space-separated tags
	ModeToken Mode = "token"
	// ModeSubstring accepts the token anywhere in the tag string
	ModeSubstring Mode = "substring"

	// DefaultMode is used when no mode is configured
	DefaultMode = ModeSubstring
)

// ParseMode validates a configured mode name. An empty name is
// DefaultMode; an unknown one returns DefaultMode with the error.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeToken, ModeSubstring:
		return Mode(s), nil
	case "":
		return DefaultMode, nil
	}
	return DefaultMode, fmt.Errorf("unknown filter mode %q: must be %s or %s", s, ModeSubstring, ModeToken)
}

// Matches reports whether a card with the given data-categories value is
// visible under token
func Matches(categories, token string, mode Mode) bool {
	if token == All {
		return true
	}
	if categories == "" {
		return false
	}
	if mode == ModeSubstring {
		return strings.Contains(categories, token)
	}
	for _, tag := range strings.Fields(categories) {
		if tag == token {
			return true
		}
	}
	return false
}

// Label turns a tag such as "graphic-design" into "Graphic Design"
func Label(token string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(token, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}
