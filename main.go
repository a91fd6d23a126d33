package main

import (
	"context"
	"fmt"
	"go/ast"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/config"
	"github.com/sirkon/castvalue/internal/engine"
	"github.com/sirkon/castvalue/internal/translate"
)

const doc = `castvalue reports defects caused by failing casts

Calls of the cast API (llvm.Cast, llvm.DynCast, S.GetAs and the like) split
the analysis into one path per possible outcome. Null pointer dereferences,
divisions by zero and references bound to failed casts found on these paths
are reported together with the assumptions that led to them.`

// Analyzer is the main entry point for the linter
var Analyzer = &analysis.Analyzer{
	Name:             "castvalue",
	Doc:              doc,
	Requires:         []*analysis.Analyzer{inspect.Analyzer},
	Run:              run,
	RunDespiteErrors: true,
}

var (
	configPath string
	debug      bool
	verbose    bool
)

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to the YAML config")
	Analyzer.Flags.BoolVar(&debug, "debug", false, "report calls of inspection helpers")
	Analyzer.Flags.BoolVar(&verbose, "v", false, "log exploration to stderr")
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
			With().Timestamp().Str("package", pass.Pkg.Path()).Logger()
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
	}

	t := translate.New(pass.Fset, cfg.DebugPackage)
	var fns []*cir.Function
	pector.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.File:
			// Files come before their declarations.
			t.Imports(n)
			t.Types(n)
		case *ast.FuncDecl:
			if fn, ok := t.Function(n); ok {
				fns = append(fns, fn)
			}
		}
	})

	reporter := engine.NewReporter()
	e := engine.New(reporter, engine.Options{
		Modeler:  cfg.Modeler(),
		MaxPaths: cfg.MaxPaths,
		Workers:  cfg.Workers,
		Inspect:  debug,
		Classes:  t.Classes(),
		Logger:   &logger,
	})

	results, err := e.ExploreAll(context.Background(), fns)
	if err != nil {
		return nil, fmt.Errorf("explore functions: %w", err)
	}
	for _, res := range results {
		if res.Truncated {
			logger.Warn().Str("function", res.Function).Int("paths", res.Paths).Msg("exploration truncated")
		}
	}

	for _, rep := range reporter.Reports() {
		pass.Report(diagnostic(rep))
	}

	return nil, nil
}

func diagnostic(rep engine.Report) analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:      rep.Pos,
		End:      rep.End,
		Category: rep.Check.String(),
		Message:  rep.Message,
	}
	for _, n := range rep.Notes {
		d.Related = append(d.Related, analysis.RelatedInformation{
			Pos:     n.Pos,
			Message: n.Message,
		})
	}

	return d
}
