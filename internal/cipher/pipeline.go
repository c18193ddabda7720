package cipher

import (
	"errors"
	"fmt"
)

// Step is one stage of a Pipeline.
type Step struct {
	Cipher Kind   `json:"cipher" yaml:"cipher" mapstructure:"cipher"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty" mapstructure:"key"`
}

// Pipeline chains ciphers. Encode runs the steps in order, Decode runs them
// in reverse with each step decoding.
type Pipeline struct {
	Steps []Step `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// Validate checks that the pipeline has steps and that every step names a
// known cipher.
func (p *Pipeline) Validate() error {
	if len(p.Steps) == 0 {
		return errors.New("pipeline has no steps")
	}
	for i, step := range p.Steps {
		if _, ok := Lookup(step.Cipher); !ok {
			return fmt.Errorf("step %d: %w", i, unknownCipher(string(step.Cipher)))
		}
	}
	return nil
}

// Encode applies every step in order.
func (p *Pipeline) Encode(text string) (string, error) {
	result := text
	var err error

	for i, step := range p.Steps {
		result, err = Transform(step.Cipher, result, step.Key, false)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i, step.Cipher, err)
		}
	}

	return result, nil
}

// Decode undoes Encode by decoding the steps from last to first.
func (p *Pipeline) Decode(text string) (string, error) {
	result := text
	var err error

	for i := len(p.Steps) - 1; i >= 0; i-- {
		step := p.Steps[i]
		result, err = Transform(step.Cipher, result, step.Key, true)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i, step.Cipher, err)
		}
	}

	return result, nil
}

// Run encodes or decodes text depending on decode.
func (p *Pipeline) Run(text string, decode bool) (string, error) {
	if decode {
		return p.Decode(text)
	}
	return p.Encode(text)
}
