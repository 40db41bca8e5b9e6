// Package generator sequences a run: read the settings file, extract env
// declarations, render them and write the output file.
package generator

import (
	"context"
	"io/fs"
	"sort"

	"github.com/environhelper/environhelper/internal/environment"
	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/environment/extractors"
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/environhelper/environhelper/internal/errors"
	"github.com/environhelper/environhelper/internal/export"
	"github.com/environhelper/environhelper/internal/filesystems"
	"github.com/environhelper/environhelper/internal/logger"
	"go.uber.org/zap"
)

type Generator struct {
	filesystem filesystems.FileSystem
	logger     *zap.SugaredLogger
	accessors  *catalog.Catalog
	exporter   export.Exporter
	lineScan   bool
}

type Option func(*Generator)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithCatalog replaces the default django-environ accessor catalog.
func WithCatalog(accessors *catalog.Catalog) Option {
	return func(g *Generator) {
		g.accessors = accessors
	}
}

func WithExporter(exporter export.Exporter) Option {
	return func(g *Generator) {
		g.exporter = exporter
	}
}

// WithLineScanner selects the line-oriented fast path, which misses calls
// that span several lines.
func WithLineScanner(enabled bool) Option {
	return func(g *Generator) {
		g.lineScan = enabled
	}
}

func New(filesystem filesystems.FileSystem, opts ...Option) *Generator {
	g := &Generator{
		filesystem: filesystem,
		logger:     logger.Nop(),
		exporter:   export.NewDotEnvExporter(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.accessors == nil {
		g.accessors = catalog.Default()
	}
	return g
}

// Run extracts settingsPath and writes the rendered table to outputPath. The
// output file is only touched once extraction and rendering succeeded.
func (g *Generator) Run(ctx context.Context, settingsPath, outputPath string) (*types.EnvVarTable, error) {
	table, err := g.Parse(ctx, settingsPath)
	if err != nil {
		return nil, err
	}

	content, err := g.exporter.Export(table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s output", g.exporter.Name())
	}

	if err := g.filesystem.WriteFile(outputPath, content); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to write %s", outputPath), errors.ErrOutputWrite)
	}
	g.logger.Infow("Wrote output file", "path", outputPath, "bytes", len(content), "format", g.exporter.Name())

	g.logger.Infof("Generated %s with the following content:", outputPath)
	table.Each(func(key string, value types.NormalizedDefault) bool {
		shown := value.Text()
		if shown != "" && types.IsSensitive(key, shown) {
			shown = "[SENSITIVE]"
		}
		g.logger.Infow("Extracted variable", "key", key, "default", shown, "boolean", value.IsBoolean())
		return true
	})

	return table, nil
}

// Parse reads settingsPath and returns its env declarations as a table.
func (g *Generator) Parse(ctx context.Context, settingsPath string) (*types.EnvVarTable, error) {
	content, err := g.readInput(settingsPath)
	if err != nil {
		return nil, err
	}

	opts := []environment.Option{environment.WithLogger(g.logger)}
	if g.lineScan {
		opts = append(opts, environment.WithLineScanner())
	}
	extractor := environment.NewExtractor(g.accessors, opts...)

	if !extractor.CanHandle(settingsPath) {
		g.logger.Warnw("Settings file does not have a python extension, parsing it as python anyway", "path", settingsPath)
	}
	g.logger.Debugw("Extracting env declarations",
		"path", settingsPath,
		"accessors", g.accessors.Len(),
		"line_scan", g.lineScan)

	table, err := extractor.Extract(ctx, settingsPath, content)
	if err != nil {
		if errors.Is(err, errors.ErrSyntax) {
			return nil, errors.WithHint(err, "the settings file must be valid python source")
		}
		return nil, errors.Wrapf(err, "failed to extract %s", settingsPath)
	}

	g.logger.Debugw("Extraction finished", "path", settingsPath, "variables", table.Len())
	return table, nil
}

func (g *Generator) readInput(settingsPath string) ([]byte, error) {
	info, err := g.filesystem.Stat(settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrInputNotFound, "%s", settingsPath)
		}
		return nil, errors.Mark(errors.Wrapf(err, "failed to stat %s", settingsPath), errors.ErrInputUnreadable)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(errors.ErrInputUnreadable, "%s is a directory", settingsPath)
	}

	content, err := g.filesystem.ReadFile(settingsPath)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to read %s", settingsPath), errors.ErrInputUnreadable)
	}
	return content, nil
}

// CheckReport compares a settings file against an existing env file.
type CheckReport struct {
	// Missing keys are declared in the settings file but absent from the env file
	Missing []string
	// Extra keys are set in the env file but never read by the settings file
	Extra []string
}

func (r *CheckReport) OK() bool {
	return len(r.Missing) == 0
}

// Check extracts settingsPath and reports how envPath differs from it.
func (g *Generator) Check(ctx context.Context, settingsPath, envPath string) (*CheckReport, error) {
	table, err := g.Parse(ctx, settingsPath)
	if err != nil {
		return nil, err
	}

	content, err := g.filesystem.ReadFile(envPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrEnvFileNotFound, "%s", envPath)
		}
		return nil, errors.Mark(errors.Wrapf(err, "failed to read %s", envPath), errors.ErrEnvFileInvalid)
	}

	declarations, err := extractors.NewDotEnvExtractor().Extract(ctx, envPath, content)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrEnvFileInvalid)
	}

	present := make(map[string]bool, len(declarations))
	for _, declaration := range declarations {
		present[declaration.Key] = true
	}

	report := &CheckReport{}
	for _, key := range table.Keys() {
		if !present[key] {
			report.Missing = append(report.Missing, key)
		}
		delete(present, key)
	}
	for key := range present {
		report.Extra = append(report.Extra, key)
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Extra)

	g.logger.Debugw("Checked env file",
		"settings", settingsPath,
		"env", envPath,
		"missing", len(report.Missing),
		"extra", len(report.Extra))
	return report, nil
}
