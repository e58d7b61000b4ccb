// Package commands holds the command line handlers of the ngrams tool.
package commands

import (
	"io"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

// Config is the process level configuration, loaded from the environment.
type Config struct {
	LogLevel logging.Level `env:"NGRAMS_LOG_LEVEL" default:"info" enum:"debug,info,warn,error,fatal,"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Logger logs to STDERR, so STDOUT only carries the command output.
func (c Config) Logger() *logging.Logger {
	return &logging.Logger{Out: os.Stderr, Level: c.LogLevel}
}

// NewMux registers every command.
func NewMux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("windows", WindowsCommand{Logger: logger})
	m.Handle("similarity", SimilarityCommand{})
	m.Handle("markov", MarkovCommand{Logger: logger})
	return &m
}

// orDiscard makes a missing logger drop every entry.
func orDiscard(l *logging.Logger) *logging.Logger {
	if l != nil {
		return l
	}
	return &logging.Logger{Out: io.Discard}
}
