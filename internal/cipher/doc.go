// Package cipher provides the classical text ciphers behind cipherpad and
// the dispatcher that selects them.
//
// # Overview
//
// Every cipher is a pure string-to-string transformation registered under a
// Kind:
//   - none - pass-through
//   - caesar - rotate letters by a numeric shift
//   - atbash - mirror letters (A<->Z), its own inverse
//   - vigenere - shift letters by a repeating alphabetic key
//   - base64 - encode UTF-8 text as standard Base64
//
// These are teaching ciphers. None of them offers any security.
//
// # Quick Start
//
//	out, err := cipher.Transform(cipher.KindCaesar, "HAL", "1", false)
//	// out: "IBM"
//
//	back, err := cipher.Transform(cipher.KindCaesar, out, "1", true)
//	// back: "HAL"
//
// Failures are reported through the sentinel errors in this package:
//
//	_, err := cipher.Transform(cipher.KindVigenere, "Hi", "", false)
//	errors.Is(err, cipher.ErrMissingKey) // true
//
// # Pipelines
//
// Chain several ciphers. Decode runs the steps backwards:
//
//	p := &cipher.Pipeline{Steps: []cipher.Step{
//	    {Cipher: cipher.KindVigenere, Key: "LEMON"},
//	    {Cipher: cipher.KindBase64},
//	}}
//	encoded, _ := p.Encode("attack at dawn")
//	decoded, _ := p.Decode(encoded)
//
// Named pipelines are held in a RecipeBook, which is filled from
// configuration.
//
// # Thread Safety
//
// The registry is built at package initialisation and only read afterwards.
// Ciphers are stateless, so every function here is safe for concurrent use.
package cipher
