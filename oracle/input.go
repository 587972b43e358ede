package oracle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/burnoracle/field"
)

// ErrMissingInput is returned when a required input key is absent.
var ErrMissingInput = errors.New("oracle: missing input")

// Number is an integer that decodes from a JSON number or a decimal string.
type Number big.Int

// NewNumber returns x as a Number.
func NewNumber(x *big.Int) *Number {
	return (*Number)(new(big.Int).Set(x))
}

// Int returns n as a big.Int.
func (n *Number) Int() *big.Int {
	return (*big.Int)(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	text := string(bytes.TrimSpace(b))
	if text == "null" {
		return nil
	}
	if len(text) > 0 && text[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
	}
	if _, ok := n.Int().SetString(text, 10); !ok {
		return fmt.Errorf("%w: %s is not an integer", field.ErrInvalidFieldValue, b)
	}
	return nil
}

// MarshalJSON encodes n as a decimal string, the form circom accepts for
// values wider than a float64.
func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Int().String())
}

// Input is the JSON input of the burn address circuits.
type Input struct {
	BurnKey             *Number `json:"burnKey"`
	RevealAmount        *Number `json:"revealAmount"`
	BurnExtraCommitment *Number `json:"burnExtraCommitment"`
}

// NewInput builds an Input from integers.
func NewInput(burnKey, revealAmount, burnExtraCommitment *big.Int) Input {
	return Input{
		BurnKey:             NewNumber(burnKey),
		RevealAmount:        NewNumber(revealAmount),
		BurnExtraCommitment: NewNumber(burnExtraCommitment),
	}
}

// ParseInput decodes a circuit input document.
func ParseInput(data []byte) (Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("decode input: %w", err)
	}
	if _, _, _, err := in.Elements(); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Elements converts the input to field elements.
func (in Input) Elements() (burnKey, revealAmount, burnExtraCommitment field.Element, err error) {
	vals := []*Number{in.BurnKey, in.RevealAmount, in.BurnExtraCommitment}
	names := []string{"burnKey", "revealAmount", "burnExtraCommitment"}
	out := make([]field.Element, len(vals))
	for i, v := range vals {
		if v == nil {
			return field.Element{}, field.Element{}, field.Element{},
				fmt.Errorf("%w: %s", ErrMissingInput, names[i])
		}
		e, err := field.New(v.Int())
		if err != nil {
			return field.Element{}, field.Element{}, field.Element{},
				fmt.Errorf("input %s: %w", names[i], err)
		}
		out[i] = e
	}
	return out[0], out[1], out[2], nil
}
