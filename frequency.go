package huffcode

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each Symbol in a
// source, indexed by Symbol.
type FrequencyTable [NumSymbols]uint32

// Count tallies the symbols in data.
func Count(data []byte) (FrequencyTable, error) {
	var ft FrequencyTable
	for offset, ch := range data {
		if err := ft.add(ch, int64(offset)); err != nil {
			return FrequencyTable{}, err
		}
	}
	return ft, nil
}

// CountReader tallies the symbols read from r until EOF.  It also returns
// the number of bytes read.
func CountReader(r io.Reader) (FrequencyTable, int64, error) {
	var ft FrequencyTable
	var offset int64
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return ft, offset, nil
		}
		if err != nil {
			return FrequencyTable{}, offset, errors.Wrapf(err, "failed to read source at offset %d", offset)
		}
		if err := ft.add(ch, offset); err != nil {
			return FrequencyTable{}, offset, err
		}
		offset++
	}
}

func (ft *FrequencyTable) add(ch byte, offset int64) error {
	if ch >= NumSymbols {
		return errors.Wrapf(ErrUnsupportedSymbol, "byte 0x%02x at offset %d is outside the 7-bit alphabet", ch, offset)
	}
	if ft[ch] == math.MaxUint32 {
		return errors.Wrapf(ErrFrequencyOverflow, "symbol %d occurs more than %d times", ch, uint32(math.MaxUint32))
	}
	ft[ch]++
	return nil
}

// Total returns the sum of all frequencies, i.e. the number of symbols in
// the source.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += uint64(freq)
	}
	return sum
}

// NumPresent returns the number of distinct symbols with a non-zero
// frequency.
func (ft FrequencyTable) NumPresent() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// String returns a brief human-readable description of this table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d distinct symbols, %d total)", ft.NumPresent(), ft.Total())
}

// GoString returns a Go expression that lists the non-zero entries.
func (ft FrequencyTable) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("huffcode.FrequencyTable{")
	first := true
	for symbol, freq := range ft {
		if freq == 0 {
			continue
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		buf.WriteString(strconv.Itoa(symbol))
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatUint(uint64(freq), 10))
	}
	buf.WriteString("}")
	return buf.String()
}

// MarshalJSON encodes the table as a JSON object mapping each present
// symbol (as a decimal string) to its frequency.
func (ft FrequencyTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]uint32, ft.NumPresent())
	for symbol, freq := range ft {
		if freq != 0 {
			m[strconv.Itoa(symbol)] = freq
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the format produced by MarshalJSON.
func (ft *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var m map[string]uint32
	if err := json.Unmarshal(raw, &m); err != nil {
		return errors.Wrap(err, "failed to decode frequency table")
	}
	var tmp FrequencyTable
	for key, freq := range m {
		symbol, err := strconv.ParseUint(key, 10, 8)
		if err != nil || symbol >= NumSymbols {
			return errors.Wrapf(ErrUnsupportedSymbol, "invalid symbol key %q", key)
		}
		tmp[symbol] = freq
	}
	*ft = tmp
	return nil
}

var _ fmt.Stringer = FrequencyTable{}
var _ fmt.GoStringer = FrequencyTable{}
var _ json.Marshaler = FrequencyTable{}
var _ json.Unmarshaler = (*FrequencyTable)(nil)
