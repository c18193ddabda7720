package cipher

import (
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const alphabetSize = 26

// wrap reduces n into [0, m) for any sign of n.
func wrap(n, m int) int {
	return ((n % m) + m) % m
}

// bandOf returns the first letter of c's case band, or false when c is not
// an ASCII Latin letter.
func bandOf(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A', true
	case c >= 'a' && c <= 'z':
		return 'a', true
	}
	return 0, false
}

func isLatinLetter(r rune) bool {
	return r < 0x80 && isLatinByte(byte(r))
}

func isLatinByte(c byte) bool {
	_, ok := bandOf(c)
	return ok
}

func shiftByte(c byte, shift int) byte {
	base, ok := bandOf(c)
	if !ok {
		return c
	}
	return base + byte(wrap(int(c-base)+shift, alphabetSize))
}

// mapLetters applies fn to every ASCII Latin letter of s. All other bytes,
// including invalid UTF-8, are copied unchanged, so the output has the same
// length as s.
func mapLetters(s string, fn func(byte) byte) string {
	out := []byte(s)
	for i, c := range out {
		if isLatinByte(c) {
			out[i] = fn(c)
		}
	}
	return string(out)
}

// Caesar Operations

// Caesar rotates every Latin letter of s by shift positions within its case
// band. Any integer is accepted; other characters are left unchanged.
func Caesar(s string, shift int) string {
	shift = wrap(shift, alphabetSize)
	return mapLetters(s, func(c byte) byte {
		return shiftByte(c, shift)
	})
}

// CaesarEncode shifts letters forward.
func CaesarEncode(s string, shift int) string {
	return Caesar(s, shift)
}

// CaesarDecode shifts letters backward. The shift is reduced before negation
// so that math.MinInt does not overflow.
func CaesarDecode(s string, shift int) string {
	return Caesar(s, -(shift % alphabetSize))
}

// parseShift reads a caesar key. The empty string is rejected rather than
// treated as a zero shift.
func parseShift(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, ErrNumericKeyRequired
	}
	return n, nil
}

type caesarCipher struct {
	baseCipher
}

func (c *caesarCipher) Encode(text, key string) (string, error) {
	shift, err := parseShift(key)
	if err != nil {
		return "", err
	}
	return CaesarEncode(text, shift), nil
}

func (c *caesarCipher) Decode(text, key string) (string, error) {
	shift, err := parseShift(key)
	if err != nil {
		return "", err
	}
	return CaesarDecode(text, shift), nil
}

// Atbash Operations

// Atbash mirrors every Latin letter within its case band (A<->Z, b<->y).
// It is its own inverse.
func Atbash(s string) string {
	return mapLetters(s, func(c byte) byte {
		base, _ := bandOf(c)
		return base + (alphabetSize - 1 - (c - base))
	})
}

type atbashCipher struct {
	baseCipher
}

func (c *atbashCipher) Encode(text, _ string) (string, error) {
	return Atbash(text), nil
}

func (c *atbashCipher) Decode(text, _ string) (string, error) {
	return Atbash(text), nil
}

// Vigenere Operations

var keyCleaner = runes.Remove(runes.Predicate(func(r rune) bool {
	return !isLatinLetter(r)
}))

// vigenereShifts validates key and returns the per-letter shift stream.
func vigenereShifts(key string) ([]int, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	clean, _, err := transform.String(keyCleaner, key)
	if err != nil || clean == "" {
		return nil, ErrKeyHasNoLetters
	}
	shifts := make([]int, 0, len(clean))
	for _, r := range strings.ToLower(clean) {
		shifts = append(shifts, int(r-'a'))
	}
	return shifts, nil
}

// Vigenere shifts each Latin letter of s by the next letter of key. Only
// letters consume key positions; everything else passes through byte for
// byte.
func Vigenere(s, key string, decode bool) (string, error) {
	shifts, err := vigenereShifts(key)
	if err != nil {
		return "", err
	}

	ki := 0
	return mapLetters(s, func(c byte) byte {
		shift := shifts[ki%len(shifts)]
		if decode {
			shift = -shift
		}
		ki++
		return shiftByte(c, shift)
	}), nil
}

// VigenereEncode enciphers s with key.
func VigenereEncode(s, key string) (string, error) {
	return Vigenere(s, key, false)
}

// VigenereDecode deciphers s with key.
func VigenereDecode(s, key string) (string, error) {
	return Vigenere(s, key, true)
}

type vigenereCipher struct {
	baseCipher
}

func (c *vigenereCipher) Encode(text, key string) (string, error) {
	return VigenereEncode(text, key)
}

func (c *vigenereCipher) Decode(text, key string) (string, error) {
	return VigenereDecode(text, key)
}

// Identity

type noneCipher struct {
	baseCipher
}

func (c *noneCipher) Encode(text, _ string) (string, error) {
	return text, nil
}

func (c *noneCipher) Decode(text, _ string) (string, error) {
	return text, nil
}
