package export

import (
	"bytes"
	"encoding/json"

	"github.com/environhelper/environhelper/internal/environment/types"
	"gopkg.in/yaml.v3"
)

// JSONExporter writes the table as a JSON object whose key order follows
// the table.
type JSONExporter struct{}

func (e *JSONExporter) Name() string {
	return "json"
}

func (e *JSONExporter) Export(table *types.EnvVarTable) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')

	var err error
	first := true
	table.Each(func(key string, value types.NormalizedDefault) bool {
		var keyJSON, valueJSON []byte
		if keyJSON, err = json.Marshal(key); err != nil {
			return false
		}
		if valueJSON, err = json.Marshal(value.Text()); err != nil {
			return false
		}
		if !first {
			compact.WriteByte(',')
		}
		first = false
		compact.Write(keyJSON)
		compact.WriteByte(':')
		compact.Write(valueJSON)
		return true
	})
	if err != nil {
		return nil, err
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

// YAMLExporter writes the table as a YAML mapping of strings.
type YAMLExporter struct{}

func (e *YAMLExporter) Name() string {
	return "yaml"
}

func (e *YAMLExporter) Export(table *types.EnvVarTable) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	table.Each(func(key string, value types.NormalizedDefault) bool {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value.Text()},
		)
		return true
	})
	return yaml.Marshal(mapping)
}

func NewYAMLExporter() Exporter {
	return &YAMLExporter{}
}
