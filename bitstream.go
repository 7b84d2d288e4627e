package huffcode

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitWriter packs individual bits into bytes, most significant bit first,
// and writes each completed byte to the underlying io.Writer.
type BitWriter struct {
	w *bitio.Writer
	n uint64
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.  Only the least significant bit of the
// argument is used.
func (bw *BitWriter) WriteBit(bit uint) error {
	if err := bw.w.WriteBool(bit&1 != 0); err != nil {
		return errors.Wrap(err, "failed to write bit")
	}
	bw.n++
	return nil
}

// WriteCode writes every bit of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	bits := hc.Bits
	if hc.Size < MaxCodeSize {
		bits &= (uint64(1) << hc.Size) - 1
	}
	if err := bw.w.WriteBits(bits, hc.Size); err != nil {
		return errors.Wrapf(err, "failed to write %d-bit code", hc.Size)
	}
	bw.n += uint64(hc.Size)
	return nil
}

// BitsWritten returns the number of bits written so far, not counting any
// padding added by Close.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.n
}

// Close flushes the final partial byte, if any, padding its remaining
// low-order bits with zeroes.  The underlying io.Writer is not closed.
func (bw *BitWriter) Close() error {
	if err := bw.w.Close(); err != nil {
		return errors.Wrap(err, "failed to flush bit stream")
	}
	return nil
}

var _ io.Closer = (*BitWriter)(nil)

// BitReader unpacks bits from the bytes of an underlying io.Reader, most
// significant bit first.
type BitReader struct {
	r *bitio.Reader
	n uint64
}

// NewBitReader returns a BitReader that reads from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// GetBit returns the next bit, either 0 or 1.  Once the underlying reader
// is exhausted, GetBit returns io.EOF.
func (br *BitReader) GetBit() (uint, error) {
	b, err := br.r.ReadBool()
	if err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read bit")
	}
	br.n++
	if b {
		return 1, nil
	}
	return 0, nil
}

// BitsRead returns the number of bits returned by GetBit so far.
func (br *BitReader) BitsRead() uint64 {
	return br.n
}
