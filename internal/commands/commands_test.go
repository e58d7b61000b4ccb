package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/ngrams/internal/commands"
	"go.llib.dev/ngrams/pkg/ngramkit"
	"go.llib.dev/ngrams/pkg/padkit"
)

func TestWindowsCommand(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		args = testcase.Let(s, func(t *testcase.T) []string {
			return []string{"windows"}
		})
		stdin = testcase.LetValue(s, "one two three four")
	)
	act := func(t *testcase.T) *cli.ResponseRecorder {
		logger, _ := logging.Stub(t)
		rr := &cli.ResponseRecorder{}
		commands.NewMux(logger).ServeCLI(rr, &cli.Request{
			Args: args.Get(t),
			Body: strings.NewReader(stdin.Get(t)),
		})
		return rr
	}

	s.Then("bigrams of the words are printed without padding", func(t *testcase.T) {
		rr := act(t)
		assert.Must(t).Equal(0, rr.Code)
		assert.Must(t).Equal("one two\ntwo three\nthree four\n", rr.Out.String())
	})

	s.When("both sides are padded", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-pad", "both", "-symbol", "_"}
		})

		s.Then("the windows include the pad symbol", func(t *testcase.T) {
			rr := act(t)
			assert.Must(t).Equal(0, rr.Code)
			assert.Must(t).Equal("_ one\none two\ntwo three\nthree four\nfour _\n", rr.Out.String())
		})
	})

	s.When("the pad symbol is not given", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-pad", "left", "-n", "3"}
		})
		stdin.LetValue(s, "a b")

		s.Then("the word joiner is used", func(t *testcase.T) {
			rr := act(t)
			w := padkit.WordJoiner
			assert.Must(t).Equal(w+" "+w+" a\n"+w+" a b\n", rr.Out.String())
		})
	})

	s.When("the text is given as a flag", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-text", "x y", "-n", "1"}
		})

		s.Then("STDIN is ignored", func(t *testcase.T) {
			assert.Must(t).Equal("x\ny\n", act(t).Out.String())
		})
	})

	s.When("characters are requested", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-mode", "chars", "-n", "3", "-pad", "right", "-right", "1", "-symbol", "$"}
		})
		stdin.LetValue(s, "abcd\n")

		s.Then("character trigrams are printed", func(t *testcase.T) {
			assert.Must(t).Equal("abc\nbcd\ncd$\n", act(t).Out.String())
		})
	})

	s.When("the input is shorter than the window", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-n", "5"}
		})

		s.Then("nothing is printed", func(t *testcase.T) {
			rr := act(t)
			assert.Must(t).Equal(0, rr.Code)
			assert.Must(t).Empty(rr.Out.String())
		})
	})

	s.When("the window size is invalid", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-n", "0"}
		})

		s.Then("it fails", func(t *testcase.T) {
			rr := act(t)
			assert.Must(t).NotEqual(0, rr.Code)
			assert.Must(t).Contain(rr.Out.String(), string(ngramkit.ErrInvalidSize))
		})
	})

	s.When("a pad count is negative", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string {
			return []string{"windows", "-pad", "left", "-left", "-3"}
		})

		s.Then("it fails", func(t *testcase.T) {
			rr := act(t)
			assert.Must(t).NotEqual(0, rr.Code)
			assert.Must(t).Contain(rr.Out.String(), string(padkit.ErrNegativeCount))
		})
	})
}

func TestNewMux_withoutLogger(t *testing.T) {
	t.Setenv("NGRAMS_CORPUS", "")
	mux := commands.NewMux(nil)

	rr := &cli.ResponseRecorder{}
	mux.ServeCLI(rr, &cli.Request{Args: []string{"windows", "-text", "a b c"}})
	assert.Equal(t, 0, rr.Code)
	assert.Equal(t, "a b\nb c\n", rr.Out.String())

	path := filepath.Join(t.TempDir(), "sentences.tsv")
	assert.NoError(t, os.WriteFile(path, []byte("broken\n1\tsingle\n"), 0o600))
	rr = &cli.ResponseRecorder{}
	mux.ServeCLI(rr, &cli.Request{Args: []string{"markov", "-corpus", path, "-sentences", "1"}})
	assert.Equal(t, 0, rr.Code)
	assert.Equal(t, "single\n", rr.Out.String())
}

func TestSimilarityCommand(t *testing.T) {
	serve := func(args ...string) *cli.ResponseRecorder {
		rr := &cli.ResponseRecorder{}
		commands.NewMux(nil).ServeCLI(rr, &cli.Request{Args: append([]string{"similarity"}, args...)})
		return rr
	}

	rr := serve("night", "night")
	assert.Equal(t, 0, rr.Code)
	assert.Equal(t, "1.0000\n", rr.Out.String())

	rr = serve("-n", "2", "ab", "cab")
	assert.Equal(t, 0, rr.Code)
	assert.Equal(t, "0.5714\n", rr.Out.String())

	rr = serve("aaaa", "zzzz")
	assert.Equal(t, "0.0000\n", rr.Out.String())

	rr = serve("only-one")
	assert.NotEqual(t, 0, rr.Code)
}

func TestMarkovCommand(t *testing.T) {
	t.Setenv("NGRAMS_CORPUS", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "sentences.gz")
	f, err := os.Create(path)
	assert.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("1\tone two three.\nmalformed\n2\tone two three.\n"))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	assert.NoError(t, f.Close())

	serve := func(args ...string) (*cli.ResponseRecorder, logging.StubOutput) {
		logger, out := logging.Stub(t)
		rr := &cli.ResponseRecorder{}
		commands.NewMux(logger).ServeCLI(rr, &cli.Request{Args: append([]string{"markov"}, args...)})
		return rr, out
	}

	t.Run("sentences are generated from the corpus", func(t *testing.T) {
		rr, logs := serve("-corpus", path, "-sentences", "3", "-seed", "42")
		assert.Equal(t, 0, rr.Code)
		assert.Equal(t, strings.Repeat("one two three.\n", 3), rr.Out.String())
		assert.Contain(t, logs.String(), "skipping corpus line")
		assert.Contain(t, logs.String(), "markov model is ready")
	})
	t.Run("the same seed generates the same text", func(t *testing.T) {
		a, _ := serve("-corpus", path, "-seed", "7")
		b, _ := serve("-corpus", path, "-seed", "7")
		assert.Equal(t, a.Out.String(), b.Out.String())
	})
	t.Run("missing corpus", func(t *testing.T) {
		rr, _ := serve()
		assert.NotEqual(t, 0, rr.Code)
		assert.Contain(t, rr.Out.String(), string(commands.ErrMissingCorpus))
	})
	t.Run("corpus from the environment", func(t *testing.T) {
		t.Setenv("NGRAMS_CORPUS", path)
		rr, _ := serve("-sentences", "1")
		assert.Equal(t, 0, rr.Code)
		assert.Equal(t, "one two three.\n", rr.Out.String())
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("NGRAMS_LOG_LEVEL", "")
		os.Unsetenv("NGRAMS_LOG_LEVEL")
		c, err := commands.LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, logging.LevelInfo, c.LogLevel)
		assert.NotNil(t, c.Logger())
	})
	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("NGRAMS_LOG_LEVEL", "debug")
		c, err := commands.LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, logging.LevelDebug, c.Logger().Level)
	})
	t.Run("unknown level", func(t *testing.T) {
		t.Setenv("NGRAMS_LOG_LEVEL", "loud")
		_, err := commands.LoadConfig()
		assert.Error(t, err)
	})
}
