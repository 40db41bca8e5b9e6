package environment_test

import (
	"context"
	"testing"

	"github.com/environhelper/environhelper/internal/environment"
	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSettings = `DEBUG = env('DEBUG', default=True)
SECRET_KEY = env.str("SECRET_KEY")
DATABASE_URL = env.str("DATABASE_URL", default="sqlite:///db.sqlite3")
`

func tableText(table *types.EnvVarTable) map[string]string {
	values := make(map[string]string)
	table.Each(func(key string, value types.NormalizedDefault) bool {
		values[key] = value.Text()
		return true
	})
	return values
}

func TestExtractor_EndToEnd(t *testing.T) {
	for name, extractor := range map[string]*environment.Extractor{
		"tree": environment.NewExtractor(catalog.Default()),
		"line": environment.NewExtractor(catalog.Default(), environment.WithLineScanner()),
	} {
		t.Run(name, func(t *testing.T) {
			table, err := extractor.Extract(context.Background(), "settings.py", []byte(exampleSettings))
			require.NoError(t, err)

			assert.Equal(t, []string{"DEBUG", "SECRET_KEY", "DATABASE_URL"}, table.Keys())
			assert.Equal(t, map[string]string{
				"DEBUG":        "True",
				"SECRET_KEY":   "",
				"DATABASE_URL": `"sqlite:///db.sqlite3"`,
			}, tableText(table))

			debug, _ := table.Get("DEBUG")
			assert.True(t, debug.IsBoolean())
		})
	}
}

func TestExtractor_DuplicateKeysLastWins(t *testing.T) {
	extractor := environment.NewExtractor(catalog.Default())
	source := `DEBUG = env.bool("DEBUG", default=False)
PORT = env.int("PORT", default=8000)
DEBUG = env.bool("DEBUG", default="on")
`

	table, err := extractor.Extract(context.Background(), "settings.py", []byte(source))
	require.NoError(t, err)

	assert.Equal(t, []string{"DEBUG", "PORT"}, table.Keys())
	debug, ok := table.Get("DEBUG")
	require.True(t, ok)
	assert.Equal(t, "True", debug.Text())
}

func TestExtractor_Idempotent(t *testing.T) {
	extractor := environment.NewExtractor(catalog.Default())
	ctx := context.Background()

	first, err := extractor.Extract(ctx, "settings.py", []byte(exampleSettings))
	require.NoError(t, err)
	second, err := extractor.Extract(ctx, "settings.py", []byte(exampleSettings))
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, tableText(first), tableText(second))
}

func TestExtractor_KeySetIsLiteralKeysOnly(t *testing.T) {
	extractor := environment.NewExtractor(catalog.Default())
	source := `A = env("A")
B = env(key="B", default=1)
C = env(NAME)
D = env(f"{X}_D")
E = env.unknown("E")
`

	table, err := extractor.Extract(context.Background(), "settings.py", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, table.Keys())

	b, _ := table.Get("B")
	assert.Equal(t, "True", b.Text())
}

func TestExtractor_SyntaxErrorPropagates(t *testing.T) {
	extractor := environment.NewExtractor(catalog.Default())

	table, err := extractor.Extract(context.Background(), "settings.py", []byte("def broken(:\n"))
	require.Error(t, err)
	assert.Nil(t, table)
}

func TestExtractor_LineScannerMissesMultilineCalls(t *testing.T) {
	source := []byte("HOSTS = env.list(\n    \"HOSTS\",\n    default=\"localhost\",\n)\n")
	ctx := context.Background()

	tree, err := environment.NewExtractor(catalog.Default()).Extract(ctx, "settings.py", source)
	require.NoError(t, err)
	assert.Equal(t, []string{"HOSTS"}, tree.Keys())

	line, err := environment.NewExtractor(catalog.Default(), environment.WithLineScanner()).Extract(ctx, "settings.py", source)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Len())
}

func TestExtractor_ExpressionDefaultsPassThrough(t *testing.T) {
	source := []byte(`ALLOWED_HOSTS = env.list("ALLOWED_HOSTS", default=["localhost"])
STATIC = env("STATIC", default=BASE_DIR / "static")
X = env("X", *rest, default="y")
FLAG = env.bool("FLAG", default=compute_flag())
`)
	expected := map[string]string{
		"ALLOWED_HOSTS": `["localhost"]`,
		"STATIC":        `BASE_DIR / "static"`,
		"X":             `"y"`,
		"FLAG":          `compute_flag()`,
	}

	for name, extractor := range map[string]*environment.Extractor{
		"tree": environment.NewExtractor(catalog.Default()),
		"line": environment.NewExtractor(catalog.Default(), environment.WithLineScanner()),
	} {
		t.Run(name, func(t *testing.T) {
			table, err := extractor.Extract(context.Background(), "settings.py", source)
			require.NoError(t, err)
			assert.Equal(t, []string{"ALLOWED_HOSTS", "STATIC", "X", "FLAG"}, table.Keys())
			assert.Equal(t, expected, tableText(table))
		})
	}
}
