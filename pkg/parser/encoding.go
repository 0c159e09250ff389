package parser

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// BOM constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode detects the encoding of the input data, strips any BOM,
// and returns the decoded UTF-8 bytes along with the detected encoding name.
// Inputs that are neither BOM-marked nor valid UTF-8 fall back to Latin-1,
// which never fails since every byte maps to a code point.
func DetectAndDecode(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return data, "utf-8", nil
	}

	if bytes.HasPrefix(data, bomUTF8) {
		return data[3:], "utf-8-bom", nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		decoded, err := decodeUTF16(data[2:], unicode.LittleEndian)
		if err != nil {
			return nil, "", fmt.Errorf("UTF-16 LE decode failed: %w", err)
		}
		return decoded, "utf-16le", nil
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		decoded, err := decodeUTF16(data[2:], unicode.BigEndian)
		if err != nil {
			return nil, "", fmt.Errorf("UTF-16 BE decode failed: %w", err)
		}
		return decoded, "utf-16be", nil
	}

	if utf8.Valid(data) {
		return data, "utf-8", nil
	}

	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, "", fmt.Errorf("Latin-1 decode failed: %w", err)
	}
	return decoded, "latin-1", nil
}

// decodeUTF16 converts BOM-stripped UTF-16 bytes of the given endianness to
// UTF-8. Invalid surrogates become U+FFFD; an odd trailing byte is dropped.
func decodeUTF16(data []byte, endianness unicode.Endianness) ([]byte, error) {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	dec := unicode.UTF16(endianness, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	return out, err
}
