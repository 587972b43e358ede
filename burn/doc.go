// Package burn computes the expected outputs of the EIP-7503 proof-of-burn
// address circuits: the burn address itself, its Keccak nibble hash, and
// the address encrypted under a Poseidon keystream.
//
// # Burn address
//
// A burn address commits to a secret burn key, the amount that may later be
// revealed and an extra public commitment:
//
//	h    = Poseidon(prefix, burnKey, revealAmount, burnExtraCommitment)
//	addr = BigEndian32(h)[12:32]
//
// No private key exists for such an address, so funds sent to it are
// provably unspendable.
//
// # Keystream
//
// The address can be published encrypted under a 20 byte keystream. Two
// sources exist:
//
//   - [KeyAgreement] derives r = Poseidon(7503, burnKey) mod 2^253, the shared
//     point S = r*PK on Baby Jubjub and the keystream from Poseidon(Sx, Sy).
//   - [Fixed] replays a keystream derived once offline from a fixed r.
//
// A [Keystream] is consumed by exactly one XOR; sources hand out a fresh one
// per call.
//
// All scheme constants live in [Params]; nothing in this package reads
// global mutable state.
package burn
