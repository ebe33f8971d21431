package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"cyrillic name", "Иванов Иван", "ivanov-ivan"},
		{"cyrillic title", "Моя История", "moya-istoriya"},
		{"digraphs", "Жуков", "zhukov"},
		{"shch digraph", "Щедрин", "shchedrin"},
		{"soft sign dropped", "Гоголь", "gogol"},
		{"hard sign dropped", "Подъезд", "podezd"},
		{"latin passthrough", "John Smith", "john-smith"},
		{"mixed punctuation collapses", "Hello,  World!!", "hello-world"},
		{"leading and trailing junk trimmed", "--Привет--", "privet"},
		{"digits kept", "Война 1812", "vojna-1812"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyWithFallback(t *testing.T) {
	assert.Equal(t, "ivanov-ivan", SlugifyWithFallback("Иванов Иван", 42))
	assert.Equal(t, "person-42", SlugifyWithFallback("", 42))
	assert.Equal(t, "person-7", SlugifyWithFallback("***", 7))
}

func TestSlugifyName(t *testing.T) {
	assert.Equal(t, "ivanov-ivan", SlugifyName("Иван", "Иванов"))
	assert.Equal(t, "smith-john", SlugifyName("John", "Smith"))
	assert.Equal(t, "petrov", SlugifyName("", "Петров"))
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "zhizn", Transliterate("Жизнь"))
	assert.Equal(t, "chajkovskij", Transliterate("Чайковский"))
	assert.Equal(t, "abc 123", Transliterate("abc 123"))
}
