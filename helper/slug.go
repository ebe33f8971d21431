package helper

import (
	"fmt"
	"strings"
)

// translit maps Cyrillic letters to their Latin form. Soft and hard signs
// drop to empty strings.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Transliterate converts Cyrillic text to Latin. Characters outside the
// mapping pass through unchanged.
func Transliterate(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if lat, ok := translit[r]; ok {
			b.WriteString(lat)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify turns arbitrary text into a URL-safe slug: transliterate,
// lower-case, collapse every run of non [a-z0-9] to a single hyphen and trim
// hyphens at both ends. The result may be empty; callers that need a
// guaranteed non-empty slug use SlugifyWithFallback.
func Slugify(s string) string {
	s = Transliterate(s)

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// SlugifyWithFallback falls back to a synthetic id-based slug when the input
// yields nothing slug-worthy.
func SlugifyWithFallback(s string, id uint) string {
	slug := Slugify(s)
	if slug == "" {
		slug = fmt.Sprintf("person-%d", id)
	}
	return slug
}

// SlugifyName builds a person slug from a name pair. Latin names skip
// transliteration inside Slugify (the translit map only touches Cyrillic).
func SlugifyName(firstName, lastName string) string {
	return Slugify(strings.TrimSpace(lastName + " " + firstName))
}
