package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name brings player names reported from different surfaces (web form,
// telegram) to one canonical spelling so that "vasya" and "Vasya " stay
// a single player.
func Name(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return cases.Title(language.Und).String(strings.ToLower(name))
}
