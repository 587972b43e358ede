package wtns

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// Section types.
const (
	SectionHeader uint32 = 1
	SectionData   uint32 = 2
)

const (
	headerSize        = 12
	sectionHeaderSize = 12
)

var (
	// ErrMalformedWitness is returned for truncated or inconsistent files.
	ErrMalformedWitness = errors.New("wtns: malformed witness")
	// ErrOutputCountMismatch is returned when more outputs are requested
	// than the witness holds.
	ErrOutputCountMismatch = errors.New("wtns: output count mismatch")
)

// Header is the fixed file header. Magic and version are not validated.
type Header struct {
	Magic    [4]byte
	Version  uint32
	Sections uint32
}

// Witness is a decoded witness file.
type Witness struct {
	Header Header
	// N8 is the byte width of each element.
	N8 uint32
	// Prime is the field modulus declared in section 1, nil if absent.
	// It is informational: elements are not reduced or range checked.
	Prime *big.Int
	// Declared is the element count declared in section 1, 0 if absent.
	// When present, Parse rejects files whose data section disagrees.
	Declared uint32

	hasDeclared bool
	data        []byte
}

// Parse decodes buf. The returned Witness references buf's memory.
func Parse(buf []byte) (*Witness, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			ErrMalformedWitness, len(buf), headerSize)
	}
	w := &Witness{}
	copy(w.Header.Magic[:], buf[0:4])
	w.Header.Version = binary.LittleEndian.Uint32(buf[4:8])
	w.Header.Sections = binary.LittleEndian.Uint32(buf[8:12])

	var (
		meta    []byte
		data    []byte
		hasData bool
	)
	offset := uint64(headerSize)
	size := uint64(len(buf))
	for i := uint32(0); i < w.Header.Sections; i++ {
		if size-offset < sectionHeaderSize {
			return nil, fmt.Errorf("%w: section %d header truncated at offset %d",
				ErrMalformedWitness, i, offset)
		}
		typ := binary.LittleEndian.Uint32(buf[offset:])
		n := binary.LittleEndian.Uint64(buf[offset+4:])
		start := offset + sectionHeaderSize
		if n > size-start {
			return nil, fmt.Errorf("%w: section %d declares %d bytes, %d remain",
				ErrMalformedWitness, i, n, size-start)
		}
		payload := buf[start : start+n]
		switch typ {
		case SectionHeader:
			meta = payload
		case SectionData:
			data, hasData = payload, true
		}
		offset = start + n
	}

	if meta == nil {
		return nil, fmt.Errorf("%w: missing section %d", ErrMalformedWitness, SectionHeader)
	}
	if !hasData {
		return nil, fmt.Errorf("%w: missing section %d", ErrMalformedWitness, SectionData)
	}
	if err := w.decodeMeta(meta); err != nil {
		return nil, err
	}
	if len(data)%int(w.N8) != 0 {
		return nil, fmt.Errorf("%w: %d data bytes is not a multiple of n8=%d",
			ErrMalformedWitness, len(data), w.N8)
	}
	w.data = data
	if w.hasDeclared && uint64(w.Declared) != uint64(w.Len()) {
		return nil, fmt.Errorf("%w: section %d declares %d elements, data holds %d",
			ErrMalformedWitness, SectionHeader, w.Declared, w.Len())
	}
	return w, nil
}

func (w *Witness) decodeMeta(meta []byte) error {
	if len(meta) < 4 {
		return fmt.Errorf("%w: section %d holds %d bytes, n8 needs 4",
			ErrMalformedWitness, SectionHeader, len(meta))
	}
	w.N8 = binary.LittleEndian.Uint32(meta)
	if w.N8 == 0 {
		return fmt.Errorf("%w: element width n8 is zero", ErrMalformedWitness)
	}
	rest := meta[4:]
	if uint64(len(rest)) >= uint64(w.N8) {
		w.Prime = leUint(rest[:w.N8])
		rest = rest[w.N8:]
		if len(rest) >= 4 {
			w.Declared = binary.LittleEndian.Uint32(rest)
			w.hasDeclared = true
		}
	}
	return nil
}

// Len returns the number of elements in the data section.
func (w *Witness) Len() int {
	return len(w.data) / int(w.N8)
}

// Element returns element i as an unsigned integer.
func (w *Witness) Element(i int) (*big.Int, error) {
	if i < 0 || i >= w.Len() {
		return nil, fmt.Errorf("%w: element %d of %d", ErrOutputCountMismatch, i, w.Len())
	}
	n8 := int(w.N8)
	return leUint(w.data[i*n8 : (i+1)*n8]), nil
}

// Outputs returns elements 1..n, skipping the constant element 0.
func (w *Witness) Outputs(n int) ([]*big.Int, error) {
	if n < 0 || n > w.Len()-1 {
		return nil, fmt.Errorf("%w: requested %d outputs, witness holds %d elements",
			ErrOutputCountMismatch, n, w.Len())
	}
	out := make([]*big.Int, n)
	for i := range out {
		v, err := w.Element(i + 1)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseOutputs decodes buf and returns its first n outputs.
func ParseOutputs(buf []byte, n int) ([]*big.Int, error) {
	w, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	return w.Outputs(n)
}

// leUint decodes b as a little-endian unsigned integer.
func leUint(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}
