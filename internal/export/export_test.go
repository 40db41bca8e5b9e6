package export_test

import (
	"encoding/json"
	"testing"

	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/environhelper/environhelper/internal/errors"
	"github.com/environhelper/environhelper/internal/export"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func exampleTable() *types.EnvVarTable {
	table := types.NewEnvVarTable()
	table.Set("DEBUG", types.Boolean(true))
	table.Set("SECRET_KEY", types.Raw(""))
	table.Set("DATABASE_URL", types.Raw(`"sqlite:///db.sqlite3"`))
	return table
}

func TestDotEnvExporter(t *testing.T) {
	out, err := export.NewDotEnvExporter().Export(exampleTable())
	require.NoError(t, err)

	assert.Equal(t, "DEBUG=True\nSECRET_KEY=\nDATABASE_URL=\"sqlite:///db.sqlite3\"", string(out))

	// The rendered file reads back as the same variables
	env, err := godotenv.Unmarshal(string(out))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"DEBUG":        "True",
		"SECRET_KEY":   "",
		"DATABASE_URL": "sqlite:///db.sqlite3",
	}, env)
}

func TestDotEnvExporter_Empty(t *testing.T) {
	out, err := export.NewDotEnvExporter().Export(types.NewEnvVarTable())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJSONExporter_KeepsOrder(t *testing.T) {
	out, err := export.NewJSONExporter().Export(exampleTable())
	require.NoError(t, err)

	assert.Equal(t, `{
  "DEBUG": "True",
  "SECRET_KEY": "",
  "DATABASE_URL": "\"sqlite:///db.sqlite3\""
}`, string(out))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "True", decoded["DEBUG"])
}

func TestJSONExporter_Empty(t *testing.T) {
	out, err := export.NewJSONExporter().Export(types.NewEnvVarTable())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestYAMLExporter(t *testing.T) {
	out, err := export.NewYAMLExporter().Export(exampleTable())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]string{
		"DEBUG":        "True",
		"SECRET_KEY":   "",
		"DATABASE_URL": `"sqlite:///db.sqlite3"`,
	}, decoded)
}

func TestNewExporter(t *testing.T) {
	for _, format := range export.Formats {
		exporter, err := export.NewExporter(format)
		require.NoError(t, err)
		assert.Equal(t, format, exporter.Name())
	}

	_, err := export.NewExporter("toml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownFormat))
}
