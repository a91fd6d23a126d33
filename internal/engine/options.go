package engine

import (
	"github.com/rs/zerolog"

	"github.com/sirkon/castvalue/internal/castvalue"
	"github.com/sirkon/castvalue/internal/cir"
)

const (
	// DefaultMaxPaths is the default per-function path budget.
	DefaultMaxPaths = 4096

	// DefaultWorkers is the default number of functions explored in parallel.
	DefaultWorkers = 4
)

// Options configures an [Engine].
type Options struct {
	// Modeler handles recognized cast calls. Nil means predefined catalog
	// entries with default settings.
	Modeler *castvalue.Modeler

	// MaxPaths bounds the number of paths explored per function. Exploration
	// of a function stops once it is exceeded.
	MaxPaths int

	// Workers is how many functions [Engine.ExploreAll] explores in parallel.
	Workers int

	// Inspect enables reports of inspection helpers.
	Inspect bool

	// Classes relates class names of the explored program. Casts of one
	// object to unrelated classes cannot both succeed.
	Classes cir.Hierarchy

	// Logger receives exploration traces. Nil means silence.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Modeler == nil {
		o.Modeler = castvalue.New(nil)
	}
	if o.MaxPaths <= 0 {
		o.MaxPaths = DefaultMaxPaths
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}

	return o
}
