package export

import (
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/environhelper/environhelper/internal/errors"
)

// Exporter renders an extracted table to a file format
type Exporter interface {
	// Export renders the table, preserving its iteration order
	Export(table *types.EnvVarTable) ([]byte, error)

	// Name returns the exporter name (e.g., "dotenv", "json", "yaml")
	Name() string
}

// Formats lists the names accepted by NewExporter.
var Formats = []string{"dotenv", "json", "yaml"}

func NewExporter(format string) (Exporter, error) {
	switch format {
	case "", "dotenv", "env":
		return NewDotEnvExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	case "yaml", "yml":
		return NewYAMLExporter(), nil
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnknownFormat, "%q", format),
			"supported formats: dotenv, json, yaml")
	}
}
