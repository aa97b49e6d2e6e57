package mirror

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText decodes fetched bytes as UTF-8, falling back to Latin-1 when
// the bytes are not valid UTF-8. Latin-1 maps every byte, so decoding
// never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(text)
}
