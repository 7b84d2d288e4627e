package huffcode

import (
	"github.com/pkg/errors"
)

// ErrUnsupportedSymbol is returned when the input contains a byte outside
// of the 7-bit alphabet.
var ErrUnsupportedSymbol = errors.New("unsupported symbol")

// ErrMalformedHeader is returned when the 512-byte frequency header cannot
// be read in full.
var ErrMalformedHeader = errors.New("malformed header")

// ErrTruncatedStream is returned when the coded body ends before all of the
// symbols promised by the header have been decoded.
var ErrTruncatedStream = errors.New("truncated stream")

// ErrFrequencyOverflow is returned when a symbol occurs more often than the
// header can record.
var ErrFrequencyOverflow = errors.New("frequency overflow")

// ErrSourceChanged is returned when the second encoding pass reads
// different data than the first pass counted.
var ErrSourceChanged = errors.New("source changed between passes")
