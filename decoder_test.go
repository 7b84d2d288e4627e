package huffcode

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func makeTestDecoder() Decoder {
	ft, err := Count([]byte("abcabcabc"))
	if err != nil {
		panic(err)
	}
	var d Decoder
	d.Init(ft)
	return d
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tTotal() = 9\n",
		"\tInternal{9}\n",
		"\t\tLeaf{99, 3}\n",
		"\t\tInternal{6}\n",
		"\t\t\tLeaf{97, 3}\n",
		"\t\t\tLeaf{98, 3}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_DecodeSymbol(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name  string
		input []byte
		syms  []Symbol
		err   error
	}

	testData := [...]testRow{
		{name: "complete", input: []byte{0xb5, 0xac}, syms: []Symbol{'a', 'b', 'c', 'a', 'b', 'c', 'a', 'b', 'c', 'c'}, err: nil},
		{name: "partial", input: []byte{0xb5}, syms: []Symbol{'a', 'b', 'c', 'a'}, err: ErrTruncatedStream},
		{name: "empty", input: nil, syms: nil, err: io.EOF},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			br := NewBitReader(bytes.NewReader(row.input))
			var syms []Symbol
			var err error
			for len(syms) < len(row.syms) || row.err != nil {
				var sym Symbol
				sym, err = d.DecodeSymbol(br)
				if err != nil {
					break
				}
				syms = append(syms, sym)
			}
			if row.err == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if row.err != nil && !errors.Is(err, row.err) {
				t.Errorf("expected error %v, got %v", row.err, err)
			}
			if len(syms) != len(row.syms) {
				t.Fatalf("wrong symbols:\n\texpect: %v\n\tactual: %v", row.syms, syms)
			}
			for i := range syms {
				if syms[i] != row.syms[i] {
					t.Errorf("wrong symbols:\n\texpect: %v\n\tactual: %v", row.syms, syms)
					break
				}
			}
		})
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 4

	var d Decoder
	d.Init(ft)

	if !IsLeaf(d.Root()) {
		t.Fatalf("expected a leaf root, got %T", d.Root())
	}

	br := NewBitReader(bytes.NewReader([]byte{0x10}))
	for i := 0; i < 3; i++ {
		sym, err := d.DecodeSymbol(br)
		if err != nil {
			t.Fatalf("symbol %d: unexpected error: %v", i, err)
		}
		if sym != 'a' {
			t.Errorf("symbol %d: expected %d, got %d", i, 'a', sym)
		}
	}
	if _, err := d.DecodeSymbol(br); !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("expected ErrTruncatedStream for a 1 bit, got %v", err)
	}
}
