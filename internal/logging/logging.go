package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Verbose bool

	// Dir holds the rotating log file. Empty disables the file sink.
	Dir  string
	Name string

	// Console defaults to os.Stderr.
	Console io.Writer
}

// Init installs the global logger with a console sink and, when a directory
// is configured, a rotating file sink.
func Init(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	out := opts.Console
	noColor := true
	if out == nil {
		out = os.Stderr
		noColor = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	writers := []io.Writer{consoleWriter}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return fmt.Errorf("logging: create log directory %q: %w", opts.Dir, err)
		}

		name := opts.Name
		if name == "" {
			name = "streak"
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, name+".log"),
			MaxSize:    16, // megabytes
			MaxBackups: 8,
			MaxAge:     90, // days
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger()
	return nil
}
