package oracle

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/f3rmion/burnoracle/hasher"
)

// Case is one circuit invocation of the built-in vector corpus.
type Case struct {
	Name    string
	Circuit Circuit
	Input   Input
	// Want holds the recorded outputs under the default parameters: the
	// output bytes, or for BurnAddressHash the digest whose nibbles are
	// the outputs.
	Want []byte
}

// Recorded returns Want as output signals.
func (c Case) Recorded() []*big.Int {
	if c.Circuit == BurnAddressHash {
		return byteSignals(hasher.Nibbles(c.Want))
	}
	return byteSignals(c.Want)
}

func pow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

// Vectors returns the inputs the burn address circuits are tested with,
// together with the outputs recorded for the default parameters.
func Vectors() []Case {
	small := NewInput(big.NewInt(123), big.NewInt(98765), big.NewInt(5678))
	large := NewInput(pow(7, 40), pow(9, 41), pow(6, 41))
	demo := NewInput(big.NewInt(12345), big.NewInt(100), big.NewInt(42))

	return []Case{
		{Name: "address/small", Circuit: BurnAddress, Input: small,
			Want: common.FromHex("0x77e3513065864c1fe87aa86afa621a91ef49ebbd")},
		{Name: "address/large", Circuit: BurnAddress, Input: large,
			Want: common.FromHex("0x6aa6ab363c9023e3ea33d8bd9a4dbe942e335e2f")},
		{Name: "hash/small", Circuit: BurnAddressHash, Input: small,
			Want: common.FromHex("0x2c369ac8fbacc9e9d2b31c14a20874c9613ba8239bf300a7b47973b8efa16691")},
		{Name: "hash/large", Circuit: BurnAddressHash, Input: large,
			Want: common.FromHex("0x91b5a91c04373ea460a45902be8eb6e50bf4848f26b1ade0b76d991aa44875ff")},
		{Name: "encrypt/small", Circuit: BurnAddressEncrypt, Input: small,
			Want: common.FromHex("0x2a25b48e0bd80fb12da796401d3ec66f53753c9f")},
		{Name: "encrypt/large", Circuit: BurnAddressEncrypt, Input: large,
			Want: common.FromHex("0xdc04727a64757f636a281d8b48c8e96c9af7c0db")},
		{Name: "encrypt-fixed/small", Circuit: BurnAddressEncryptFixed, Input: small,
			Want: common.FromHex("0x6df7307fa0a8ec8f696768f85568978442635043")},
		{Name: "encrypt-fixed/demo", Circuit: BurnAddressEncryptFixed, Input: demo,
			Want: common.FromHex("0x28f828f491012a7adb1a3c90ff8d7b96e27d6a0b")},
	}
}
