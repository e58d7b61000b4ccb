package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/ngrams/pkg/ngramkit"
	"go.llib.dev/ngrams/pkg/padkit"
	"go.llib.dev/ngrams/pkg/tokenkit"
)

const (
	ModeWords = "words"
	ModeChars = "chars"
)

type WindowsCommand struct {
	N      int    `flag:"n" default:"2" desc:"the number of items in a window"`
	Pad    string `flag:"pad" default:"none" enum:"none,left,right,both" desc:"the sides padded with the pad symbol"`
	Left   int    `flag:"left" default:"-1" desc:"the left pad count, -1 means n-1"`
	Right  int    `flag:"right" default:"-1" desc:"the right pad count, -1 means n-1"`
	Symbol string `flag:"symbol" desc:"the pad symbol, the word joiner character when empty"`
	Mode   string `flag:"mode" default:"words" enum:"words,chars" desc:"split the input into words or characters"`
	Text   string `flag:"text" desc:"the input text, STDIN is read when empty"`

	Logger *logging.Logger
}

func (cmd WindowsCommand) Summary() string { return "print the n-grams of a text" }

func (cmd WindowsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if err := cmd.run(w, r); err != nil {
		cli.HandleError(w, r, err)
	}
}

func (cmd WindowsCommand) logger() *logging.Logger { return orDiscard(cmd.Logger) }

func (cmd WindowsCommand) run(w io.Writer, r *cli.Request) (rErr error) {
	side, err := padkit.ParseSide(cmd.Pad)
	if err != nil {
		return err
	}
	symbol := cmd.Symbol
	if symbol == "" {
		symbol = padkit.WordJoiner
	}
	src, sep, err := cmd.source(r)
	if err != nil {
		return err
	}
	policy := padkit.Policy{Side: side, Left: cmd.Left, Right: cmd.Right}
	itr, err := ngramkit.NewPadded(src, cmd.N, policy, symbol)
	if err != nil {
		_ = src.Close()
		return err
	}
	defer errorkit.Finish(&rErr, itr.Close)

	out := bufio.NewWriter(w)
	var count int
	for itr.Next() {
		if _, err := fmt.Fprintln(out, strings.Join(itr.Value(), sep)); err != nil {
			return err
		}
		count++
	}
	if err := itr.Err(); err != nil {
		return errorkit.Merge(err, out.Flush())
	}
	cmd.logger().Debug(r.Context(), "windows printed",
		logging.Field("count", count),
		logging.Field("underfilled", itr.Underfilled()))
	return out.Flush()
}

func (cmd WindowsCommand) source(r *cli.Request) (iterkit.PullIter[string], string, error) {
	var in io.Reader = strings.NewReader(cmd.Text)
	if cmd.Text == "" && r.Body != nil {
		in = r.Body
	}
	if cmd.Mode == ModeChars {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "", err
		}
		return tokenkit.Chars(strings.TrimRight(string(data), "\r\n")), "", nil
	}
	return tokenkit.Words(in), " ", nil
}
