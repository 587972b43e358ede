// Package hasher provides the hash functions used by the burn scheme.
//
// The permutation hash is Poseidon over the BN254 scalar field with the
// circomlib round constants, so its output matches circom's Poseidon(n)
// template bit for bit. The scheme only calls it with 2 to 4 inputs and
// separates its uses by prepending a constant domain tag (see [Tagged]).
//
// Keccak-256 is the legacy (pre-FIPS) Keccak used by Ethereum; the address
// hash circuit exposes its digest as 64 hex nibbles, see [Nibbles].
package hasher
