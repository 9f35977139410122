// Package runner resolves the effective formatter options from defaults, a
// config file, and command-line overrides.
package runner

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/donaldgifford/javafmt/internal/config"
	"github.com/donaldgifford/javafmt/pkg/options"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 2
)

// Options configures the runner behavior.
type Options struct {
	ConfigPath string

	// AOSP forces the AOSP style regardless of the config file.
	AOSP bool
	// SkipJavadocFormatting turns Javadoc formatting off regardless of the
	// config file.
	SkipJavadocFormatting bool

	// Output is the encoding used to print the options: "yaml" (default)
	// or "toml".
	Output  string
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run resolves the options, prints them to Stdout, and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	log := newLogger(opts)
	defer func() { _ = log.Sync() }()

	format := config.FormatYAML
	if opts.Output != "" {
		f, err := config.ParseFormat(opts.Output)
		if err != nil {
			writeErr(opts.Stderr, "javafmt: %v\n", err)
			return ExitError
		}
		format = f
	}

	resolved, err := resolve(opts, log)
	if err != nil {
		writeErr(opts.Stderr, "javafmt: %v\n", err)
		return ExitError
	}

	out := &config.Config{Formatter: config.FromOptions(resolved)}
	if err := config.Encode(opts.Stdout, out, format); err != nil {
		writeErr(opts.Stderr, "javafmt: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// Resolve returns the effective options: defaults, then the config file,
// then the AOSP and SkipJavadocFormatting overrides.
func Resolve(opts *Options) (options.Options, error) {
	return resolve(opts, zap.NewNop())
}

func resolve(opts *Options, log *zap.Logger) (options.Options, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return options.Options{}, err
	}
	log.Debug("loaded config",
		zap.String("path", opts.ConfigPath),
		zap.Stringer("style", cfg.Formatter.Style),
		zap.Bool("format_javadoc", cfg.Formatter.FormatJavadoc))

	b := cfg.Formatter.Builder()
	if opts.AOSP {
		log.Debug("flag override", zap.String("flag", "aosp"))
		b.Style(options.AOSP)
	}
	if opts.SkipJavadocFormatting {
		log.Debug("flag override", zap.String("flag", "skip-javadoc-formatting"))
		b.FormatJavadoc(false)
	}

	resolved := b.Build()
	log.Debug("resolved options",
		zap.Stringer("options", resolved),
		zap.Int("indentation_multiplier", resolved.IndentationMultiplier()))
	return resolved, nil
}

// newLogger returns a console logger on Stderr in verbose mode and a no-op
// logger otherwise.
func newLogger(opts *Options) *zap.Logger {
	if !opts.Verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(opts.Stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
