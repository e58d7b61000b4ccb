// Package markov generates sentences from word bigram statistics.
//
// Every tokenized sentence is padded on both sides with padkit.WordJoiner,
// so the model also learns which words start and which words end a sentence.
package markov

import (
	"context"
	"io"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/ngrams/pkg/ngramkit"
	"go.llib.dev/ngrams/pkg/padkit"
)

// Boundary marks the start and the end of a sentence in the model.
const Boundary = padkit.WordJoiner

const progressEvery = 10_000

// Model is a bigram transition table.
// It is not safe for concurrent training.
type Model struct {
	Logger *logging.Logger

	transitions map[string]map[string]int
	sentences   int
}

func (m *Model) logger() *logging.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return &logging.Logger{Out: io.Discard}
}

// Train counts the transitions of a single tokenized sentence.
// An empty sentence is ignored.
func (m *Model) Train(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	itr, err := ngramkit.NewPadded(ngramkit.Slice(tokens), 2, padkit.Both(), Boundary)
	if err != nil {
		return err
	}
	windows, err := ngramkit.Collect(itr)
	if err != nil {
		return err
	}
	if m.transitions == nil {
		m.transitions = make(map[string]map[string]int)
	}
	for _, w := range windows {
		from, to := w[0], w[1]
		next, ok := m.transitions[from]
		if !ok {
			next = make(map[string]int)
			m.transitions[from] = next
		}
		next[to]++
	}
	m.sentences++
	return nil
}

// Build trains the model with every sentence until the sequence ends or fails.
func (m *Model) Build(ctx context.Context, sentences iter.Seq2[[]string, error]) error {
	logger := m.logger()
	logger.Info(ctx, "building markov model")
	var n int
	for tokens, err := range sentences {
		if err != nil {
			logger.Error(ctx, "reading sentences failed", logging.ErrField(err), logging.Field("sentences", n))
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Train(tokens); err != nil {
			return err
		}
		n++
		if n%progressEvery == 0 {
			logger.Debug(ctx, "markov model progress", logging.Field("sentences", n))
		}
	}
	logger.Info(ctx, "markov model is ready",
		logging.Field("sentences", m.sentences),
		logging.Field("words", m.Len()))
	return nil
}

// Len is the number of distinct words the model knows about, sentence boundaries excluded.
func (m *Model) Len() int {
	n := len(m.transitions)
	if _, ok := m.transitions[Boundary]; ok {
		n--
	}
	return n
}

// Sentences is the number of sentences the model was trained with.
func (m *Model) Sentences() int { return m.sentences }

// Count tells how many times the word to followed the word from.
func (m *Model) Count(from, to string) int {
	return m.transitions[from][to]
}

// Next picks a word following word, weighted by how often it followed word during training.
// It reports false when word was never followed by anything.
func (m *Model) Next(rng *rand.Rand, word string) (string, bool) {
	next, ok := m.transitions[word]
	if !ok || len(next) == 0 {
		return "", false
	}
	candidates := make([]string, 0, len(next))
	var total int
	for w, c := range next {
		candidates = append(candidates, w)
		total += c
	}
	// map order is random, sorting keeps a seeded rng reproducible
	slices.Sort(candidates)
	pick := rng.IntN(total)
	for _, w := range candidates {
		pick -= next[w]
		if pick < 0 {
			return w, true
		}
	}
	return candidates[len(candidates)-1], true
}

// Generate walks the model from the start of a sentence until it reaches the end of a sentence,
// a word ending with a period, or maxWords words.
// A maxWords below one means no limit.
func (m *Model) Generate(rng *rand.Rand, maxWords int) []string {
	var (
		words []string
		state = Boundary
	)
	for maxWords < 1 || len(words) < maxWords {
		next, ok := m.Next(rng, state)
		if !ok || next == Boundary {
			break
		}
		words = append(words, next)
		if strings.HasSuffix(next, ".") {
			break
		}
		state = next
	}
	return words
}
