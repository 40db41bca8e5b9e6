package environment

import (
	"context"

	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/environment/extractors"
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/environhelper/environhelper/internal/logger"
	"go.uber.org/zap"
)

// Extractor turns a settings file into an EnvVarTable.
type Extractor struct {
	source extractors.ContentExtractor
	logger *zap.SugaredLogger
	lines  bool
}

type Option func(*Extractor)

// WithLineScanner swaps the syntax-tree walk for the line-oriented fast path.
func WithLineScanner() Option {
	return func(e *Extractor) {
		e.lines = true
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

func NewExtractor(accessors *catalog.Catalog, opts ...Option) *Extractor {
	e := &Extractor{
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.lines {
		e.source = extractors.NewLineCallExtractor(accessors, e.logger)
	} else {
		e.source = extractors.NewPythonCallExtractor(accessors, e.logger)
	}
	return e
}

// CanHandle reports whether filename looks like something the source
// extractor understands.
func (e *Extractor) CanHandle(filename string) bool {
	return e.source.CanHandle(filename)
}

// Extract runs the source extractor and folds its declarations into a
// table. Later declarations of a key overwrite earlier ones.
func (e *Extractor) Extract(ctx context.Context, filename string, content []byte) (*types.EnvVarTable, error) {
	declarations, err := e.source.Extract(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	table := types.NewEnvVarTable()
	for _, declaration := range declarations {
		value := types.Normalize(declaration.RawDefault, declaration.DeclaredType)

		if previous, exists := table.Get(declaration.Key); exists && previous != value {
			e.logger.Debugw("Overriding earlier declaration",
				"key", declaration.Key,
				"line", declaration.Line,
				"previous", previous.Text())
		}

		table.Set(declaration.Key, value)
	}

	return table, nil
}
