package huffcode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder recovers symbols from a coded body by walking the Huffman tree
// rebuilt from a FrequencyTable.
type Decoder struct {
	freqs FrequencyTable
	root  Node
	total uint64
}

// Init initializes this Decoder.  The tree is rebuilt with Build, exactly
// as the Encoder built it.
func (d *Decoder) Init(ft FrequencyTable) {
	*d = Decoder{
		freqs: ft,
		root:  Build(ft),
		total: ft.Total(),
	}
}

// Total returns the number of symbols in the original source.
func (d Decoder) Total() uint64 {
	return d.total
}

// Root returns the root of the rebuilt tree, or nil for an empty source.
func (d Decoder) Root() Node {
	return d.root
}

// DecodeSymbol reads bits from br until they spell out one complete code,
// then returns the corresponding Symbol.
//
// If br is exhausted at a code boundary, DecodeSymbol returns io.EOF.  If
// it is exhausted partway through a code, or if a bit leads nowhere, the
// error wraps ErrTruncatedStream.
func (d Decoder) DecodeSymbol(br *BitReader) (Symbol, error) {
	assert.Assertf(d.root != nil, "DecodeSymbol called on a Decoder with no symbols")

	if leaf, ok := d.root.(*Leaf); ok {
		bit, err := br.GetBit()
		if err != nil {
			return InvalidSymbol, err
		}
		if bit != 0 {
			return InvalidSymbol, errors.Wrapf(ErrTruncatedStream, "bit 1 at offset %d has no matching branch in a single-symbol tree", br.BitsRead()-1)
		}
		return leaf.Symbol, nil
	}

	node := d.root
	var depth int
	for {
		switch x := node.(type) {
		case *Leaf:
			return x.Symbol, nil

		case *Internal:
			bit, err := br.GetBit()
			if err == io.EOF && depth != 0 {
				return InvalidSymbol, errors.Wrapf(ErrTruncatedStream, "stream ended %d bits into a code", depth)
			}
			if err != nil {
				return InvalidSymbol, err
			}
			if bit == 0 {
				node = x.Left
			} else {
				node = x.Right
			}
			depth++

		default:
			assert.Assertf(false, "unexpected node type %T", node)
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", d.total)
	dumpNode(&buf, d.root, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	switch x := node.(type) {
	case nil:
		buf.WriteString("nil\n")
	case *Leaf:
		fmt.Fprintf(buf, "Leaf{%d, %d}\n", x.Symbol, x.Count)
	case *Internal:
		fmt.Fprintf(buf, "Internal{%d}\n", x.Count)
		dumpNode(buf, x.Left, depth+1)
		dumpNode(buf, x.Right, depth+1)
	}
}

// DecompressBytes returns the decompressed form of src.  If the body is
// truncated, the symbols decoded before the truncation are returned along
// with the error.
func DecompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	_, err := Decompress(&buf, bytes.NewReader(src))
	return buf.Bytes(), err
}

// Decompress reads a header and coded body from src and writes the
// original bytes to dst.  It returns the number of bytes written.
//
// A malformed header aborts before any body bytes are read.  A truncated
// body still has every fully decoded symbol written to dst before the
// ErrTruncatedStream error is returned.
func Decompress(dst io.Writer, src io.Reader) (int64, error) {
	ft, err := ReadHeader(src)
	if err != nil {
		return 0, err
	}

	var d Decoder
	d.Init(ft)
	if d.total == 0 {
		return 0, nil
	}

	out := bufio.NewWriter(dst)
	n, err := d.decodeAll(out, NewBitReader(src))
	if flushErr := flush(out); err == nil {
		err = flushErr
	}
	return n, err
}

func (d Decoder) decodeAll(out *bufio.Writer, br *BitReader) (int64, error) {
	var n uint64
	for n < d.total {
		symbol, err := d.DecodeSymbol(br)
		if err == io.EOF {
			return int64(n), errors.Wrapf(ErrTruncatedStream, "decoded %d of %d symbols", n, d.total)
		}
		if err != nil {
			return int64(n), errors.WithMessagef(err, "after %d of %d symbols", n, d.total)
		}
		if err := out.WriteByte(byte(symbol)); err != nil {
			return int64(n), errors.Wrap(err, "failed to write output")
		}
		n++
	}
	return int64(n), nil
}
