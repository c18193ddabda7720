package cipher

import (
	"sort"
	"strings"
)

// Kind identifies one of the supported ciphers.
type Kind string

const (
	KindNone     Kind = "none"
	KindCaesar   Kind = "caesar"
	KindAtbash   Kind = "atbash"
	KindVigenere Kind = "vigenere"
	KindBase64   Kind = "base64"
)

// kindAliases maps the generic algorithm names onto the canonical tags.
var kindAliases = map[string]Kind{
	"shift":             KindCaesar,
	"reciprocal":        KindAtbash,
	"running-key":       KindVigenere,
	"binary-text-codec": KindBase64,
}

// Kinds returns every known cipher kind in display order.
func Kinds() []Kind {
	return []Kind{KindNone, KindCaesar, KindAtbash, KindVigenere, KindBase64}
}

// AliasesOf returns the alternative tags accepted for k, sorted.
func AliasesOf(k Kind) []string {
	var aliases []string
	for alias, target := range kindAliases {
		if target == k {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// ParseKind resolves a user-supplied tag or alias to a Kind.
func ParseKind(tag string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	if _, ok := registry[Kind(norm)]; ok {
		return Kind(norm), nil
	}
	if k, ok := kindAliases[norm]; ok {
		return k, nil
	}
	return "", unknownCipher(tag)
}

// Direction names the way a transformation is applied.
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

// DirectionOf converts a decode flag into a Direction.
func DirectionOf(decode bool) Direction {
	if decode {
		return DirectionDecode
	}
	return DirectionEncode
}

// KeySpec describes the key a cipher expects.
type KeySpec struct {
	Required    bool   `json:"required" yaml:"required"`
	Format      string `json:"format" yaml:"format"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// Cipher is a reversible text transformation selected by Kind.
type Cipher interface {
	// Kind returns the canonical tag for this cipher
	Kind() Kind

	// Name returns a human-readable name
	Name() string

	// Description returns a one-line summary of the algorithm
	Description() string

	// Help returns the usage hint shown next to the key field
	Help() string

	// KeySpec describes the key this cipher expects
	KeySpec() KeySpec

	// Encode applies the cipher to text
	Encode(text, key string) (string, error)

	// Decode reverses Encode
	Decode(text, key string) (string, error)
}

// Request is a single transformation call.
type Request struct {
	Kind   Kind   `json:"cipher" yaml:"cipher"`
	Text   string `json:"text" yaml:"text"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Decode bool   `json:"decode" yaml:"decode"`
}

// Result is the outcome of a Request, ready to be rendered.
// Output is empty whenever Err is set.
type Result struct {
	Kind      Kind
	Direction Direction
	Output    string
	Err       error
}

// OK reports whether the transformation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the text to show the user: the output on success,
// the error message otherwise.
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Output
}

// baseCipher provides the descriptive half of the Cipher interface.
type baseCipher struct {
	KindValue        Kind
	NameValue        string
	DescriptionValue string
	HelpValue        string
	KeySpecValue     KeySpec
}

func (b *baseCipher) Kind() Kind {
	return b.KindValue
}

func (b *baseCipher) Name() string {
	return b.NameValue
}

func (b *baseCipher) Description() string {
	return b.DescriptionValue
}

func (b *baseCipher) Help() string {
	return b.HelpValue
}

func (b *baseCipher) KeySpec() KeySpec {
	return b.KeySpecValue
}
