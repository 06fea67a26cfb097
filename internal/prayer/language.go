package prayer

import (
	"fmt"
	"strings"
)

// Language is a directory of prayer texts, named in Latin.
type Language string

const (
	Latina    Language = "latina"
	Anglia    Language = "anglia"
	Germana   Language = "germana"
	Slavonica Language = "slavonica"
)

var languages = []Language{Latina, Anglia, Germana, Slavonica}

// Languages returns the supported languages in fallback order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage accepts a language name in any case.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("unknown language %q (must be one of %s)", s, languageList())
	}
	return l, nil
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	for _, known := range languages {
		if l == known {
			return true
		}
	}
	return false
}

// Next returns the language after l in fallback order, wrapping around.
func (l Language) Next() Language {
	for i, known := range languages {
		if l == known {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}

func (l Language) String() string { return string(l) }

func languageList() string {
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// fallbackOrder returns preferred first, then the remaining languages in
// list order.
func fallbackOrder(preferred Language) []Language {
	order := make([]Language, 0, len(languages))
	if preferred.IsValid() {
		order = append(order, preferred)
	}
	for _, l := range languages {
		if l != preferred {
			order = append(order, l)
		}
	}
	return order
}
