package config

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/f3rmion/burnoracle/burn"
	"github.com/f3rmion/burnoracle/curve"
	"github.com/f3rmion/burnoracle/field"
	"github.com/f3rmion/burnoracle/hasher"
	"github.com/f3rmion/burnoracle/oracle"
)

// Keystream modes.
const (
	ModeAgreement = "agreement"
	ModeFixed     = "fixed"
)

// Point holds decimal curve coordinates.
type Point struct {
	X string `toml:"x"`
	Y string `toml:"y"`
}

// Config mirrors burn.Params in a file-friendly form.
type Config struct {
	Mode            string `toml:"mode"`
	AddressPrefix   string `toml:"address_prefix"`
	KeyDomain       string `toml:"key_domain"`
	ScalarBits      uint   `toml:"scalar_bits"`
	KeystreamLength int    `toml:"keystream_length"`
	PublicKey       Point  `toml:"public_key"`
	FixedScalar     string `toml:"fixed_scalar"`
	FixedKeystream  string `toml:"fixed_keystream"`
}

// Default returns the configuration of the compiled circuits.
func Default() *Config {
	return &Config{
		Mode:            ModeFixed,
		AddressPrefix:   burn.DefaultAddressPrefix.String(),
		KeyDomain:       burn.DefaultKeyDomain.String(),
		ScalarBits:      burn.DefaultScalarBits,
		KeystreamLength: burn.AddressLength,
		PublicKey: Point{
			X: burn.DefaultPublicKey.X.String(),
			Y: burn.DefaultPublicKey.Y.String(),
		},
		FixedScalar: strconv.Itoa(burn.DefaultFixedScalar),
	}
}

// Load reads path on top of Default.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a TOML document on top of Default.
func Parse(doc string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(doc, c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// Validate checks the mode and that Params can be built.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAgreement, ModeFixed:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeAgreement, ModeFixed, c.Mode)
	}
	p, err := c.Params()
	if err != nil {
		return err
	}
	return p.Validate()
}

// Params builds the scheme parameters.
func (c *Config) Params() (*burn.Params, error) {
	prefix, err := element("address_prefix", c.AddressPrefix)
	if err != nil {
		return nil, err
	}
	domain, err := element("key_domain", c.KeyDomain)
	if err != nil {
		return nil, err
	}
	x, err := element("public_key.x", c.PublicKey.X)
	if err != nil {
		return nil, err
	}
	y, err := element("public_key.y", c.PublicKey.Y)
	if err != nil {
		return nil, err
	}
	return &burn.Params{
		AddressPrefix:   prefix,
		KeyDomain:       domain,
		ScalarBits:      c.ScalarBits,
		KeystreamLength: c.KeystreamLength,
		PublicKey:       curve.Point{X: x, Y: y},
		Curve:           curve.BabyJubJub(),
		Hasher:          hasher.Poseidon{},
	}, nil
}

// Fixed returns the frozen keystream: fixed_keystream when set, otherwise
// the keystream derived from fixed_scalar.
func (c *Config) Fixed(p *burn.Params) (*burn.Fixed, error) {
	if c.FixedKeystream != "" {
		b, err := hexutil.Decode(c.FixedKeystream)
		if err != nil {
			return nil, fmt.Errorf("fixed_keystream: %w", err)
		}
		if len(b) != p.KeystreamLength {
			return nil, fmt.Errorf("fixed_keystream: %d bytes, keystream_length is %d", len(b), p.KeystreamLength)
		}
		return burn.NewFixed(b), nil
	}
	r, ok := new(big.Int).SetString(c.FixedScalar, 10)
	if !ok || r.Sign() < 0 {
		return nil, fmt.Errorf("fixed_scalar: %q is not a non-negative integer", c.FixedScalar)
	}
	return burn.DeriveFixed(p, r)
}

// Oracle builds an oracle from the configuration.
func (c *Config) Oracle() (*oracle.Oracle, error) {
	p, err := c.Params()
	if err != nil {
		return nil, err
	}
	fixed, err := c.Fixed(p)
	if err != nil {
		return nil, err
	}
	return oracle.New(p, fixed)
}

// EncryptCircuit returns the ciphertext circuit matching Mode.
func (c *Config) EncryptCircuit() oracle.Circuit {
	if c.Mode == ModeAgreement {
		return oracle.BurnAddressEncrypt
	}
	return oracle.BurnAddressEncryptFixed
}

func element(key, s string) (field.Element, error) {
	if s == "" {
		return field.Element{}, fmt.Errorf("%s is empty", key)
	}
	e, err := field.FromString(s)
	if err != nil {
		return field.Element{}, fmt.Errorf("%s: %w", key, err)
	}
	return e, nil
}
