package burn

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/f3rmion/burnoracle/field"
	"github.com/f3rmion/burnoracle/hasher"
)

// Commitment returns Poseidon(prefix, burnKey, revealAmount, burnExtraCommitment).
func (p *Params) Commitment(burnKey, revealAmount, burnExtraCommitment field.Element) (field.Element, error) {
	h, err := hasher.Tagged(p.Hasher, p.AddressPrefix).Hash(burnKey, revealAmount, burnExtraCommitment)
	if err != nil {
		return field.Element{}, fmt.Errorf("burn address commitment: %w", err)
	}
	return h, nil
}

// DeriveAddress returns the low 20 bytes (offsets 12..32) of the 32-byte
// big-endian commitment. Some reference scripts slice the high 20 bytes
// instead; a BurnAddress() witness built that way disagrees on every byte.
func (p *Params) DeriveAddress(burnKey, revealAmount, burnExtraCommitment field.Element) (common.Address, error) {
	h, err := p.Commitment(burnKey, revealAmount, burnExtraCommitment)
	if err != nil {
		return common.Address{}, err
	}
	enc := h.Bytes()
	return common.BytesToAddress(enc[32-AddressLength:]), nil
}

// HashAddress returns Keccak-256(addr) as 64 hex nibbles.
func HashAddress(addr common.Address) [64]uint8 {
	var out [64]uint8
	copy(out[:], hasher.Nibbles(hasher.Keccak256(addr.Bytes())))
	return out
}
