package huffcode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps symbols to Huffman codes built from a FrequencyTable.
type Encoder struct {
	freqs   FrequencyTable
	codes   CodeTable
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the symbol frequencies of the source
// that is about to be encoded.
func (e *Encoder) Init(ft FrequencyTable) {
	codes := DeriveCodes(Build(ft))
	minSize, maxSize := codes.MinMaxSize()
	*e = Encoder{
		freqs:   ft,
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the Huffman code for symbol.  The symbol must have a
// non-zero frequency in the table given to Init.
func (e Encoder) Encode(symbol Symbol) Code {
	assert.Assertf(symbol.Valid(), "symbol %d out of range", symbol)
	hc := e.codes[symbol]
	assert.Assertf(hc.Size != 0, "symbol %d has no code", symbol)
	return hc
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Frequencies returns the table given to Init.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freqs
}

// Codes returns the full code table.
func (e Encoder) Codes() CodeTable {
	return e.codes
}

// EncodedBits returns the length in bits of the coded body, excluding
// padding, for a source matching the table given to Init.
func (e Encoder) EncodedBits() uint64 {
	var sum uint64
	for symbol, freq := range e.freqs {
		sum += uint64(freq) * uint64(e.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// CompressBytes returns the compressed form of src.
func CompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(src))
	if err := Compress(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compress writes the compressed form of src to dst.  The whole source is
// held in memory, so both passes read the same slice.
func Compress(dst io.Writer, src []byte) error {
	ft, err := Count(src)
	if err != nil {
		return err
	}

	var e Encoder
	e.Init(ft)

	bw := bufio.NewWriter(dst)
	if err := WriteHeader(bw, ft); err != nil {
		return err
	}
	if err := e.writeBody(bw, bytes.NewReader(src)); err != nil {
		return err
	}
	return flush(bw)
}

// CompressReadSeeker writes the compressed form of src to dst without
// buffering the source.  The first pass counts symbols from the current
// position of src to EOF, after which src is rewound to that position for
// the second pass.
func CompressReadSeeker(dst io.Writer, src io.ReadSeeker) error {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return errors.Wrap(err, "failed to query source position")
	}

	ft, n, err := CountReader(src)
	if err != nil {
		return err
	}

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return errors.Wrapf(err, "failed to rewind source to offset %d for second pass", start)
	}

	var e Encoder
	e.Init(ft)

	bw := bufio.NewWriter(dst)
	if err := WriteHeader(bw, ft); err != nil {
		return err
	}
	if err := e.writeBody(bw, io.LimitReader(src, n)); err != nil {
		return err
	}
	return flush(bw)
}

// writeBody codes every byte read from r.  The bytes read must match the
// table given to Init exactly: a byte that was not counted, or a source
// that ends early, is reported as ErrSourceChanged rather than producing a
// stream whose body disagrees with its header.
func (e Encoder) writeBody(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bits := NewBitWriter(w)
	var seen FrequencyTable
	var offset int64
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read source at offset %d", offset)
		}
		if ch >= NumSymbols {
			return errors.Wrapf(ErrUnsupportedSymbol, "byte 0x%02x at offset %d is outside the 7-bit alphabet", ch, offset)
		}
		if seen[ch] == e.freqs[ch] {
			return errors.Wrapf(ErrSourceChanged, "symbol %d at offset %d exceeds its first-pass count of %d", ch, offset, e.freqs[ch])
		}
		seen[ch]++
		if err := bits.WriteCode(e.codes[ch]); err != nil {
			return err
		}
		offset++
	}
	if seen != e.freqs {
		return errors.Wrapf(ErrSourceChanged, "second pass read %d of %d symbols", offset, e.freqs.Total())
	}
	return bits.Close()
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}
	return nil
}
