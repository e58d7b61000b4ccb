package commands

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/cli"

	"go.llib.dev/ngrams/pkg/ngramkit"
	"go.llib.dev/ngrams/pkg/tokenkit"
)

type SimilarityCommand struct {
	N int `flag:"n" default:"3" desc:"the character n-gram size"`

	A string `arg:"0" required:"true"`
	B string `arg:"1" required:"true"`
}

func (cmd SimilarityCommand) Summary() string { return "compare two texts by their character n-grams" }

func (cmd SimilarityCommand) ServeCLI(w cli.Response, r *cli.Request) {
	score, err := ngramkit.Similarity(normalize(cmd.A), normalize(cmd.B), cmd.N)
	if err != nil {
		cli.HandleError(w, r, err)
		return
	}
	fmt.Fprintf(w, "%.4f\n", score)
}

// normalize collapses separators and unifies the unicode form.
func normalize(s string) string {
	return strings.Join(tokenkit.WordsOf(s), " ")
}
