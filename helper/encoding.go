package helper

import (
	"golang.org/x/text/encoding/charmap"
)

// The production person/biography tables predate the UTF-8 migration and may
// still hold windows-1251 text. LegacyCodec converts at the repository edge
// so everything above it works on UTF-8 only.
type LegacyCodec struct {
	enabled bool
}

func NewLegacyCodec(enabled bool) *LegacyCodec {
	return &LegacyCodec{enabled: enabled}
}

// Encode converts UTF-8 to windows-1251 for writes. Unmappable runes are
// substituted by the encoder; on conversion failure the original string is
// kept rather than losing the write.
func (c *LegacyCodec) Encode(s string) string {
	if !c.enabled || s == "" {
		return s
	}
	out, err := charmap.Windows1251.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// Decode converts windows-1251 reads back to UTF-8.
func (c *LegacyCodec) Decode(s string) string {
	if !c.enabled || s == "" {
		return s
	}
	out, err := charmap.Windows1251.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
