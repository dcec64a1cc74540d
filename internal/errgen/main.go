package errgeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

var Version string

// DefaultOutFile is the name of the generated file in each package.
const DefaultOutFile = "errgen_gen.go"

// Options configures [Main].
type Options struct {
	// Tags is the comma-separated build tags to use when loading packages.
	Tags string

	// Tests indicates whether to include test files. Declarations in test
	// files are generated into a separate test file.
	Tests bool

	// OutFile is the name of the output file to generate in each package.
	// [DefaultOutFile] is used if it is empty.
	OutFile string

	// Logger reports progress at debug level. Nothing is logged if it is nil.
	Logger *zap.Logger
}

// Main is the main entry point for Errgen. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. And patterns are the
// package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, opts Options, patterns []string) (map[string][]byte, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	outFile := opts.OutFile
	if outFile == "" {
		outFile = DefaultOutFile
	}

	pkgs, err := load(ctx, wd, env, opts.Tags, opts.Tests, patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded packages", zap.Int("count", len(pkgs)), zap.Strings("patterns", patterns))

	type result struct {
		out  string
		code []byte
		err  error
	}
	results := make([]result, len(pkgs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, code, err := generate(pkg, wd, outFile)
			results[i] = result{out, code, err}
			if code != nil {
				logger.Debug("generated", zap.String("pkg", pkg.ID), zap.String("out", out), zap.Int("bytes", len(code)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs error
	for _, r := range results {
		if r.err != nil {
			errs = errors.Join(errs, r.err)
			continue
		}
		if r.code != nil {
			outs[r.out] = r.code
		}
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// generate runs Errgen for a package. It returns nil code if there is nothing
// to generate.
func generate(pkg *packages.Package, wd, outFile string) (string, []byte, error) {
	if len(pkg.GoFiles) == 0 || strings.HasSuffix(pkg.ID, ".test") {
		// Empty or synthesized test main package
		return "", nil, nil
	}

	eg, err := New(pkg)
	if err != nil {
		return "", nil, err
	}

	if pkg.ForTest != "" {
		// Non-test declarations are generated by the package under test.
		eg.testOnly = true
		outFile = testOutFile(outFile, pkg.Name)
	}

	if err := eg.Build(); err != nil {
		return "", nil, err
	}

	code := eg.Generate()
	if code == nil {
		return "", nil, nil
	}

	outDir := filepath.Dir(pkg.GoFiles[0])
	if rel, err := filepath.Rel(wd, outDir); err == nil {
		outDir = rel
	}
	return filepath.Join(outDir, outFile), code, nil
}

// testOutFile returns the output file name for declarations in test files.
//
// e.g., testOutFile("errgen_gen.go", "foo") => "errgen_gen_test.go"
// e.g., testOutFile("errgen_gen.go", "foo_test") => "errgen_gen_x_test.go"
func testOutFile(outFile, pkgName string) string {
	base := strings.TrimSuffix(outFile, ".go")
	if strings.HasSuffix(pkgName, "_test") {
		return base + "_x_test.go"
	}
	return base + "_test.go"
}

// load loads packages. Only syntax is loaded because errgen directives are
// comments and generated methods must not be required to type-check the
// package.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}

	return pkgs, nil
}

// reorderErrors flattens joined errors and sorts them by message. Duplicates
// are removed because a file may belong to both a package and its test
// variant.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	list = slices.CompactFunc(list, func(a, b error) bool {
		return a.Error() == b.Error()
	})
	return errors.Join(list...)
}
