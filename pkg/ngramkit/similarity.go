package ngramkit

import (
	"strings"

	"go.llib.dev/ngrams/pkg/padkit"
)

// Similarity compares two strings by their character n-grams.
// Both strings are padded on both sides, so the first and the last characters
// weigh as much as the ones in the middle.
//
// The score is the Dice coefficient of the two n-gram multisets:
// 1 for equal strings, including two empty ones, and 0 when they share no n-gram.
//
// The padding uses padkit.WordJoiner, so a U+2060 character in the input
// is indistinguishable from a pad position.
func Similarity(a, b string, n int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSize.F("got %d", n)
	}
	as, err := charGrams(a, n)
	if err != nil {
		return 0, err
	}
	bs, err := charGrams(b, n)
	if err != nil {
		return 0, err
	}
	total := count(as) + count(bs)
	if total == 0 {
		return 1, nil
	}
	var shared int
	for gram, an := range as {
		shared += min(an, bs[gram])
	}
	return float64(2*shared) / float64(total), nil
}

func charGrams(s string, n int) (map[string]int, error) {
	grams := make(map[string]int)
	if s == "" {
		return grams, nil
	}
	itr, err := NewPadded(Slice(strings.Split(s, "")), n, padkit.Both(), padkit.WordJoiner)
	if err != nil {
		return nil, err
	}
	windows, err := Collect(itr)
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		grams[strings.Join(w, "")]++
	}
	return grams, nil
}

func count(m map[string]int) int {
	var total int
	for _, n := range m {
		total += n
	}
	return total
}
