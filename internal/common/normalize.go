package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeUsername canonicalizes a username for storage: trimmed,
// lowercased, with a single leading @ stripped. Uniqueness checks run
// against the normalized form so "@Bob" and "bob" are the same member.
func NormalizeUsername(username string) string {
	u := strings.TrimSpace(username)
	u = strings.TrimPrefix(u, "@")
	return strings.ToLower(u)
}

// CapitalizeName title-cases a free-form full name ("ada lovelace" -> "Ada Lovelace").
// A cases.Caser carries internal transform state and is not safe for
// concurrent use, so one is built per call.
func CapitalizeName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
