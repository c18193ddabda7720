package cipher

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Base64 Operations

// Base64Encode encodes the UTF-8 bytes of s as padded standard Base64.
// Strings that are not valid UTF-8 are rejected instead of being replaced
// with U+FFFD.
func Base64Encode(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", ErrUnrepresentableInput)
	}
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

// Base64Decode reverses Base64Encode. Surrounding ASCII whitespace is
// ignored; alphabet, padding and the UTF-8 validity of the payload are
// checked.
func Base64Decode(s string) (string, error) {
	decoded, err := base64.StdEncoding.Strict().DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCodecInput, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: decoded data is not valid UTF-8", ErrMalformedCodecInput)
	}
	return string(decoded), nil
}

type base64Cipher struct {
	baseCipher
}

func (c *base64Cipher) Encode(text, _ string) (string, error) {
	return Base64Encode(text)
}

func (c *base64Cipher) Decode(text, _ string) (string, error) {
	return Base64Decode(text)
}
