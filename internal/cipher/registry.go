package cipher

import "sort"

// registry is the closed set of ciphers. Every Kind returned by Kinds must
// have exactly one entry; registry_test enforces this. The map is never
// written after package initialisation, so concurrent reads need no lock.
var registry = map[Kind]Cipher{
	KindNone: &noneCipher{baseCipher{
		KindValue:        KindNone,
		NameValue:        "None",
		DescriptionValue: "Pass the text through unchanged",
		HelpValue:        "Choose a cipher from the menu. Provide a key when required.",
		KeySpecValue:     KeySpec{Placeholder: "Select a cipher that requires a key"},
	}},
	KindCaesar: &caesarCipher{baseCipher{
		KindValue:        KindCaesar,
		NameValue:        "Caesar",
		DescriptionValue: "Rotate Latin letters by a fixed shift",
		HelpValue:        "Caesar: shift letters by the numeric key (positive or negative).",
		KeySpecValue: KeySpec{
			Required:    true,
			Format:      "base-10 integer, may be negative",
			Placeholder: "Numeric shift, e.g. 3 or -2",
		},
	}},
	KindAtbash: &atbashCipher{baseCipher{
		KindValue:        KindAtbash,
		NameValue:        "Atbash",
		DescriptionValue: "Mirror Latin letters (A<->Z)",
		HelpValue:        "Atbash: a simple substitution (A<->Z). No key required.",
		KeySpecValue:     KeySpec{Placeholder: "Key not required for Atbash"},
	}},
	KindVigenere: &vigenereCipher{baseCipher{
		KindValue:        KindVigenere,
		NameValue:        "Vigenere",
		DescriptionValue: "Shift Latin letters by a repeating alphabetic key",
		HelpValue:        "Vigenere: alphabetic key used to shift letters (non-letters are skipped).",
		KeySpecValue: KeySpec{
			Required:    true,
			Format:      "text containing at least one Latin letter",
			Placeholder: "Alphabetic key, e.g. SECRET",
		},
	}},
	KindBase64: &base64Cipher{baseCipher{
		KindValue:        KindBase64,
		NameValue:        "Base64",
		DescriptionValue: "Encode UTF-8 text as standard Base64",
		HelpValue:        "Base64: encodes/decodes text as printable Base64. No key required.",
		KeySpecValue:     KeySpec{Placeholder: "Key not required for Base64"},
	}},
}

// Lookup returns the cipher registered for kind. Aliases and mixed case are
// accepted.
func Lookup(kind Kind) (Cipher, bool) {
	if c, ok := registry[kind]; ok {
		return c, true
	}
	k, err := ParseKind(string(kind))
	if err != nil {
		return nil, false
	}
	return registry[k], true
}

// List returns all registered ciphers in the order of Kinds.
func List() []Cipher {
	order := make(map[Kind]int, len(registry))
	for i, k := range Kinds() {
		order[k] = i
	}

	ciphers := make([]Cipher, 0, len(registry))
	for _, c := range registry {
		ciphers = append(ciphers, c)
	}
	sort.Slice(ciphers, func(i, j int) bool {
		return order[ciphers[i].Kind()] < order[ciphers[j].Kind()]
	})
	return ciphers
}

// Transform applies the cipher selected by kind to text. decode selects the
// direction. Errors from the cipher are returned unchanged; an unrecognised
// kind fails with ErrUnknownCipher naming the tag.
func Transform(kind Kind, text, key string, decode bool) (string, error) {
	c, ok := Lookup(kind)
	if !ok {
		return "", unknownCipher(string(kind))
	}
	if decode {
		return c.Decode(text, key)
	}
	return c.Encode(text, key)
}

// TransformRequest runs req and packages the outcome as a Result.
func TransformRequest(req Request) Result {
	res := Result{Kind: req.Kind, Direction: DirectionOf(req.Decode)}
	if c, ok := Lookup(req.Kind); ok {
		res.Kind = c.Kind()
	}
	out, err := Transform(req.Kind, req.Text, req.Key, req.Decode)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = out
	return res
}
