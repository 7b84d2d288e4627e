package huffcode

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// HeaderSize is the size in bytes of the frequency header that precedes
// every compressed body.
const HeaderSize = NumSymbols * 4

// WriteHeader writes ft as 128 big-endian uint32 values in symbol order.
func WriteHeader(w io.Writer, ft FrequencyTable) error {
	var buf [HeaderSize]byte
	for symbol, freq := range ft {
		binary.BigEndian.PutUint32(buf[symbol*4:], freq)
	}
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	return nil
}

// ReadHeader reads exactly HeaderSize bytes from r and decodes them into a
// FrequencyTable.
func ReadHeader(r io.Reader) (FrequencyTable, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return FrequencyTable{}, errors.Wrapf(ErrMalformedHeader, "got %d bytes, expected %d", n, HeaderSize)
	}
	if err != nil {
		return FrequencyTable{}, errors.Wrapf(ErrMalformedHeader, "read failed after %d bytes: %v", n, err)
	}

	var ft FrequencyTable
	for symbol := range ft {
		ft[symbol] = binary.BigEndian.Uint32(buf[symbol*4:])
	}
	return ft, nil
}
