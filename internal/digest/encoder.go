package digest

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/vvka-141/pqhash/pkg/pqhash"
)

// Encoder turns query text into the bytes handed to a byte-oriented facility.
type Encoder interface {
	Encode(text string) []byte
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(text string) []byte

// Encode calls f(text).
func (f EncoderFunc) Encode(text string) []byte { return f(text) }

var (
	// UTF8 returns the UTF-8 bytes of the text. Go strings already hold them.
	UTF8 Encoder = EncoderFunc(func(text string) []byte { return []byte(text) })

	// Truncating emits one byte per UTF-16 code unit, keeping its low 8 bits.
	// Correct for ASCII only: "é" becomes 0xE9 instead of 0xC3 0xA9, so the
	// digest differs from every UTF-8 based computation of the same text.
	Truncating Encoder = EncoderFunc(truncate)
)

func truncate(text string) []byte {
	units := utf16.Encode([]rune(text))
	buf := make([]byte, len(units))
	for i, u := range units {
		buf[i] = byte(u)
	}
	return buf
}

// ParseEncoder resolves an encoder name. An empty name selects UTF8.
func ParseEncoder(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "truncate", "truncating", "legacy":
		return Truncating, nil
	default:
		return nil, fmt.Errorf("%w: unknown text encoder %q (want utf8 or truncate)", pqhash.ErrInvalidConfig, name)
	}
}
