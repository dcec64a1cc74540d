package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"

	errgeninternal "github.com/sublee/errgen/internal/errgen"
)

var Version = "dev"

func init() {
	errgeninternal.Version = Version
}

// errReported is returned when the error message has been printed already.
var errReported = errors.New("errgen failed")

type flags struct {
	tags    string
	tests   bool
	output  string
	color   string
	verbose bool
	config  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "errgen [flags] [packages]",
		Short: "Generate Error and Unwrap methods for annotated error types",
		Long: `Generate error implementations from errgen directives.

Errgen finds struct types annotated with //errgen:error or
//errgen:transparent and interface types annotated with //errgen:union, then
writes their Error, Unwrap, Backtrace methods and conversion constructors
into errgen_gen.go of each package.

Examples:
  errgen                    # Generate for the package in the working directory
  errgen ./...              # Generate for all packages
  errgen -t -b integration  # Include tests with build tags`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.tags, "tags", "b", "", "comma-separated build tags")
	fl.BoolVarP(&f.tests, "tests", "t", false, "include tests")
	fl.StringVarP(&f.output, "output", "o", errgeninternal.DefaultOutFile, "output file name")
	fl.StringVarP(&f.color, "color", "c", "auto", "colorize (auto|always|never)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fl.StringVar(&f.config, "config", "errgen.yaml", "config file, ignored if missing")
	return cmd
}

func run(cmd *cobra.Command, f *flags, patterns []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	configPath := f.config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(wd, configPath)
	}
	cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	cfg.apply(f, cmd.Flags().Changed)

	color := false
	switch f.color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		return fmt.Errorf("invalid -c value: %s", f.color)
	}

	logger := newLogger(f.verbose)
	defer func() { _ = logger.Sync() }()

	outs, err := errgeninternal.Main(cmd.Context(), wd, os.Environ(), errgeninternal.Options{
		Tags:    f.tags,
		Tests:   f.tests,
		OutFile: f.output,
		Logger:  logger,
	}, patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), message)
		return errReported
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
		if err := os.WriteFile(path, outs[out], 0o644); err != nil {
			return err
		}
		logger.Debug("wrote file", zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), "Generated:", out)
	}
	return nil
}

// newLogger creates a console logger on stderr if verbose is true. Otherwise,
// it discards all logs.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		zap.DebugLevel,
	))
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reHint = regexp.MustCompile(`did you mean \{[^}]*\}\?`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		green = "\033[32m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	m = reHint.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(green + string(b) + reset)
	})
	return string(m)
}
