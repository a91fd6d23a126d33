// Command castvalue-trace explores functions of Go-syntax source files and
// prints every finding together with the path that led to it.
//
// Unlike the analyzer it does not need a type-correct package, so it is handy
// for sketching cases:
//
//	castvalue-trace -debug -config castvalue.yaml cases/*.go
package main

import (
	"context"
	"flag"
	"fmt"
	"go/token"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/config"
	"github.com/sirkon/castvalue/internal/engine"
	"github.com/sirkon/castvalue/internal/translate"
)

func main() {
	var (
		configPath string
		debug      bool
		verbose    bool
		noColor    bool
	)
	flag.StringVar(&configPath, "config", "", "path to the YAML config")
	flag.BoolVar(&debug, "debug", false, "report calls of inspection helpers")
	flag.BoolVar(&verbose, "v", false, "log exploration to stderr")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: castvalue-trace [flags] file.go...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	colorize := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	if err := trace(ctx, os.Stdout, flag.Args(), configPath, debug, verbose, colorize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func trace(
	ctx context.Context,
	w io.Writer,
	files []string,
	configPath string,
	debug bool,
	verbose bool,
	colorize bool,
) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
			With().Timestamp().Logger()
	}

	fset := token.NewFileSet()
	tr := translate.New(fset, cfg.DebugPackage)
	var fns []*cir.Function
	for _, file := range files {
		prog, err := tr.Parse(file, nil)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}

		fns = append(fns, prog.Functions...)
	}

	reporter := engine.NewReporter()
	e := engine.New(reporter, engine.Options{
		Modeler:  cfg.Modeler(),
		MaxPaths: cfg.MaxPaths,
		Workers:  cfg.Workers,
		Inspect:  debug,
		Classes:  tr.Classes(),
		Logger:   &logger,
	})

	results, err := e.ExploreAll(ctx, fns)
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	for _, res := range results {
		if res.Truncated {
			logger.Warn().Str("function", res.Function).Int("paths", res.Paths).Msg("exploration truncated")
		}
	}

	if err := reporter.PrintSummary(w, fset, colorize); err != nil {
		return fmt.Errorf("print findings: %w", err)
	}

	return nil
}
