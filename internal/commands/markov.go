package commands

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/ngrams/internal/corpus"
	"go.llib.dev/ngrams/internal/markov"
	"go.llib.dev/ngrams/pkg/tokenkit"
)

const ErrMissingCorpus errorkit.Error = "corpus location is missing, use -corpus or NGRAMS_CORPUS"

type MarkovCommand struct {
	Corpus    string `flag:"corpus" env:"NGRAMS_CORPUS" desc:"a corpus file path or URL, gzip is supported"`
	Column    int    `flag:"column" default:"1" desc:"the tab separated column holding the sentence"`
	Sentences int    `flag:"sentences" default:"10" desc:"the number of sentences to generate"`
	MaxWords  int    `flag:"max-words" default:"50" desc:"the word limit of a sentence, 0 means no limit"`
	Seed      int    `flag:"seed" desc:"the random seed, 0 picks one"`

	Logger *logging.Logger
}

func (cmd MarkovCommand) Summary() string { return "generate sentences from a corpus with a bigram markov chain" }

func (cmd MarkovCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if err := cmd.run(r.Context(), w); err != nil {
		cli.HandleError(w, r, err)
	}
}

func (cmd MarkovCommand) logger() *logging.Logger { return orDiscard(cmd.Logger) }

func (cmd MarkovCommand) run(ctx context.Context, w cli.Response) error {
	if cmd.Corpus == "" {
		return ErrMissingCorpus
	}
	rc, err := corpus.Open(ctx, cmd.Corpus)
	if err != nil {
		return err
	}
	model := markov.Model{Logger: cmd.logger()}
	if err := model.Build(ctx, cmd.tokenized(ctx, corpus.Sentences(rc, cmd.Column))); err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cmd.seed(), 0))
	for range cmd.Sentences {
		if _, err := fmt.Fprintln(w, strings.Join(model.Generate(rng, cmd.MaxWords), " ")); err != nil {
			return err
		}
	}
	return nil
}

// tokenized skips the malformed corpus lines.
func (cmd MarkovCommand) tokenized(ctx context.Context, sentences iter.Seq2[string, error]) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for sentence, err := range sentences {
			if errors.Is(err, corpus.ErrMalformedLine) {
				cmd.logger().Warn(ctx, "skipping corpus line", logging.ErrField(err))
				continue
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(tokenkit.WordsOf(sentence), nil) {
				return
			}
		}
	}
}

func (cmd MarkovCommand) seed() uint64 {
	if cmd.Seed != 0 {
		return uint64(cmd.Seed)
	}
	return rand.Uint64()
}
