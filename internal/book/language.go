package book

import (
	"fmt"
	"strings"
)

// Language is the publication language of a book.
type Language string

const (
	LanguageEnglish Language = "ENGLISH"
	LanguageFrench  Language = "FRENCH"
)

// ParseLanguage normalizes a wire value to a Language. Input is matched
// case-insensitively; the empty string defaults to FRENCH.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return LanguageFrench, nil
	case "ENGLISH":
		return LanguageEnglish, nil
	case "FRENCH":
		return LanguageFrench, nil
	default:
		return "", fmt.Errorf("%w: language must be english or french", ErrValidation)
	}
}

// Valid reports whether l is one of the recognized languages.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageFrench
}
