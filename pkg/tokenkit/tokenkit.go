// Package tokenkit turns text into the item sequences the n-gram stages consume.
//
// Words are separated by white space and by the `" , ; :` punctuation marks.
// Every token is NFC normalized, so the same word typed with combining marks
// and with precomposed characters ends up as the same item.
package tokenkit

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.llib.dev/frameless/pkg/iterkit"
	"golang.org/x/text/unicode/norm"

	"go.llib.dev/ngrams/pkg/ngramkit"
)

// IsSeparator reports whether r splits two words.
func IsSeparator(r rune) bool {
	switch r {
	case '"', ',', ';', ':':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// Words yields the words of r one by one.
// A read error of r ends the iteration and is reported by Err.
// The reader is not closed.
func Words(r io.Reader) iterkit.PullIter[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanWords)
	tokens := iterkit.BufioScanner[string](scanner, nil)
	return ngramkit.FromErrSeq(func(yield func(string, error) bool) {
		for token, err := range tokens {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(norm.NFC.String(token), nil) {
				return
			}
		}
	})
}

// WordsOf returns the words of s.
func WordsOf(s string) []string {
	words := strings.FieldsFunc(s, IsSeparator)
	for i, w := range words {
		words[i] = norm.NFC.String(w)
	}
	return words
}

// Chars yields s one character at a time.
func Chars(s string) iterkit.PullIter[string] {
	s = norm.NFC.String(s)
	if s == "" {
		return ngramkit.Slice[string](nil)
	}
	return ngramkit.Slice(strings.Split(s, ""))
}

// ScanWords is a bufio.SplitFunc that splits on IsSeparator.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !IsSeparator(r) {
			break
		}
	}
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if IsSeparator(r) {
			return i + width, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
