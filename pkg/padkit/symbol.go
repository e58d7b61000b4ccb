package padkit

import "bytes"

// WordJoiner is the type-level pad symbol of textual items.
// U+2060 is a zero width character that whitespace based tokenizers never produce on their own.
const WordJoiner = "\u2060"

// Padder is implemented by item types that declare their own pad symbol.
//
// The methods are called on the zero value of T,
// so they must be declared with a value receiver.
// Every emitted sentinel is a copy of the symbol:
// []byte symbols are cloned, and types sharing mutable state should implement Cloner.
type Padder[T any] interface {
	// PadSymbol returns the sentinel that marks a position without real content.
	PadSymbol() T
	// PadLen returns how many sentinels a side receives for a window size of n.
	PadLen(n int) int
}

// Cloner is implemented by symbol types that share mutable state between copies.
// CloneSymbol is called on the configured symbol for each emitted sentinel.
type Cloner[T any] interface {
	CloneSymbol() T
}

// cloneSymbol returns an independent copy of the symbol.
func cloneSymbol[T any](symbol T) T {
	if c, ok := any(symbol).(Cloner[T]); ok {
		return c.CloneSymbol()
	}
	if bs, ok := any(symbol).([]byte); ok {
		return any(bytes.Clone(bs)).(T)
	}
	return symbol
}

// DefaultSymbol returns the type-level pad symbol of T.
// string, []byte and rune items use WordJoiner,
// other types need to implement Padder.
func DefaultSymbol[T any]() (T, bool) {
	var zero T
	if p, ok := any(zero).(Padder[T]); ok {
		return p.PadSymbol(), true
	}
	var symbol any
	switch any(zero).(type) {
	case string:
		symbol = WordJoiner
	case []byte:
		symbol = []byte(WordJoiner)
	case rune:
		symbol = []rune(WordJoiner)[0]
	default:
		return zero, false
	}
	return symbol.(T), true
}

// PadLen returns the type-level pad length of T for a window size of n.
// Unless T implements Padder, it is n-1,
// the amount that makes the first and the last real item anchor a full window.
func PadLen[T any](n int) int {
	var zero T
	if p, ok := any(zero).(Padder[T]); ok {
		return p.PadLen(n)
	}
	return DefaultPadLen(n)
}

func DefaultPadLen(n int) int {
	if n < 1 {
		return 0
	}
	return n - 1
}
