// Package wtns decodes the binary witness files written by circom's
// witness generators and snarkjs.
//
// A witness file is a little-endian sectioned container:
//
//	magic    [4]byte  "wtns"
//	version  uint32
//	sections uint32
//	then, per section:
//	  type    uint32
//	  size    uint64
//	  payload [size]byte
//
// Section 1 starts with n8, the byte width of one witness element, and is
// normally followed by the field prime (n8 bytes) and the element count
// (uint32). Section 2 holds the elements themselves, n8 little-endian bytes
// each. Element 0 is the constant 1; the main component's outputs follow
// it, which is what [ParseOutputs] extracts.
//
// The decoder works on an in-memory buffer and never returns a partial
// result: a truncated or inconsistent file yields [ErrMalformedWitness].
package wtns
