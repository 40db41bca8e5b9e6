package export

import (
	"strings"

	"github.com/environhelper/environhelper/internal/environment/types"
)

// DotEnvExporter writes one KEY=value line per entry. Values are written
// exactly as normalized; nothing is quoted or escaped.
type DotEnvExporter struct{}

func (e *DotEnvExporter) Name() string {
	return "dotenv"
}

func (e *DotEnvExporter) Export(table *types.EnvVarTable) ([]byte, error) {
	lines := make([]string, 0, table.Len())
	table.Each(func(key string, value types.NormalizedDefault) bool {
		lines = append(lines, key+"="+value.Text())
		return true
	})
	return []byte(strings.Join(lines, "\n")), nil
}

func NewDotEnvExporter() Exporter {
	return &DotEnvExporter{}
}
