package catalog_test

import (
	"testing"

	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	accessors := catalog.Default()

	for _, name := range []string{"str", "bool", "int", "float", "json", "list", "url", "db_url", "email"} {
		assert.True(t, accessors.Contains(name), "expected %s in catalog", name)
	}

	for _, name := range []string{"__init__", "__call__", "_cast", "read_env", "parse_value", "db_url_config"} {
		assert.False(t, accessors.Contains(name), "did not expect %s in catalog", name)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := catalog.New("url", "bool", "str").Names()
	assert.Equal(t, []string{"bool", "str", "url"}, names)
}

func TestListAccessorNames_Filters(t *testing.T) {
	accessors := catalog.ListAccessorNames([]catalog.Member{
		{Name: "__doc__", Kind: catalog.KindInstance},
		{Name: "_private", Kind: catalog.KindInstance},
		{Name: "helper", Kind: catalog.KindStatic},
		{Name: "factory", Kind: catalog.KindClass},
		{Name: "str", Kind: catalog.KindInstance},
	})

	assert.Equal(t, []string{"str"}, accessors.Names())
}

func TestWith(t *testing.T) {
	base := catalog.New("str")
	extended := base.With("secret", "_hidden")

	assert.Equal(t, []string{"secret", "str"}, extended.Names())
	assert.Equal(t, 1, base.Len())
}

func TestDecode(t *testing.T) {
	accessors, err := catalog.Decode(`
[[accessor]]
name = "str"

[[accessor]]
name = "bool"
kind = "instance"

[[accessor]]
name = "read_env"
kind = "class"
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"bool", "str"}, accessors.Names())
}

func TestDecode_UnknownKind(t *testing.T) {
	_, err := catalog.Decode(`
[[accessor]]
name = "str"
kind = "property"
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property")
}
