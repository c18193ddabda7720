package cipher

import (
	"errors"
	"fmt"
)

// Validation errors returned by Transform and the individual ciphers.
// Callers match them with errors.Is.
var (
	ErrUnknownCipher        = errors.New("unknown cipher")
	ErrNumericKeyRequired   = errors.New("caesar requires a numeric key (shift)")
	ErrMissingKey           = errors.New("vigenere requires a key")
	ErrKeyHasNoLetters      = errors.New("vigenere key must contain letters")
	ErrMalformedCodecInput  = errors.New("base64 decode failed")
	ErrUnrepresentableInput = errors.New("base64 encode failed")
)

func unknownCipher(tag string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCipher, tag)
}
