// Package domain defines the core types of the agrifinance marketplace:
// the language-preference enumeration used by the preference store and the
// relational reference schema for the future persistence layer.
package domain

import "golang.org/x/text/language"

// Language is a user interface language supported by the marketplace.
// Exactly two values exist; anything else normalizes to LanguageEnglish.
type Language string

const (
	// LanguageEnglish is the primary language and the fallback default.
	LanguageEnglish Language = "english"
	// LanguageChichewa is the secondary language (Chichewa / Nyanja).
	LanguageChichewa Language = "chichewa"
)

// ParseLanguage maps a stored preference value onto the enumeration.
// Only the exact string "chichewa" selects the secondary language; absence,
// corruption, or any other value falls back to English. It never fails.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageChichewa {
		return LanguageChichewa
	}
	return LanguageEnglish
}

// Valid reports whether l is one of the two supported values.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageChichewa
}

// Tag returns the BCP 47 tag for l. Chichewa maps to "ny" (Nyanja).
func (l Language) Tag() language.Tag {
	if l == LanguageChichewa {
		return language.MustParse("ny")
	}
	return language.English
}

// String implements fmt.Stringer.
func (l Language) String() string { return string(l) }
