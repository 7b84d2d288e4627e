package huffcode

// Symbol represents one character code in the 7-bit alphabet.  Valid
// symbols are in the range [0, NumSymbols).
type Symbol int32

// NumSymbols is the size of the fixed alphabet.
const NumSymbols = 128

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff this Symbol is part of the alphabet.
func (sym Symbol) Valid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
