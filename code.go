package huffcode

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// Code represents a root-to-leaf path through a Huffman tree, as a sequence
// of bits.  A 0 bit descends to the left child, and a 1 bit descends to the
// right child.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, i.e. the edge leaving the
	// root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s is already %d bits long", hc, hc.Size)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the i'th bit of the Code, counting from the first bit.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for %d-bit code", i, hc.Size)
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
