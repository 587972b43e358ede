package wtns

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// Magic is the file signature snarkjs writes.
var Magic = [4]byte{'w', 't', 'n', 's'}

// Version is the container version snarkjs writes.
const Version = 2

// Encode builds a witness file with a full section 1 (n8, prime, count)
// and a section 2 holding values. prime may be nil, in which case section 1
// carries n8 only.
func Encode(n8 uint32, prime *big.Int, values []*big.Int) ([]byte, error) {
	if n8 == 0 {
		return nil, errors.New("wtns: n8 must be positive")
	}

	meta := binary.LittleEndian.AppendUint32(nil, n8)
	if prime != nil {
		enc, err := leBytes(prime, n8)
		if err != nil {
			return nil, fmt.Errorf("prime: %w", err)
		}
		meta = append(meta, enc...)
		meta = binary.LittleEndian.AppendUint32(meta, uint32(len(values)))
	}

	data := make([]byte, 0, len(values)*int(n8))
	for i, v := range values {
		enc, err := leBytes(v, n8)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		data = append(data, enc...)
	}

	buf := make([]byte, 0, headerSize+2*sectionHeaderSize+len(meta)+len(data))
	buf = append(buf, Magic[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, Version)
	buf = binary.LittleEndian.AppendUint32(buf, 2)
	buf = appendSection(buf, SectionHeader, meta)
	buf = appendSection(buf, SectionData, data)
	return buf, nil
}

func appendSection(buf []byte, typ uint32, payload []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, typ)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(payload)))
	return append(buf, payload...)
}

// leBytes encodes v as n8 little-endian bytes.
func leBytes(v *big.Int, n8 uint32) ([]byte, error) {
	if v == nil || v.Sign() < 0 {
		return nil, errors.New("wtns: value must be a non-negative integer")
	}
	be := v.Bytes()
	if len(be) > int(n8) {
		return nil, fmt.Errorf("wtns: value needs %d bytes, n8 is %d", len(be), n8)
	}
	out := make([]byte, n8)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out, nil
}
