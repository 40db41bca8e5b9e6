package extractors_test

import (
	"context"
	"testing"

	"github.com/environhelper/environhelper/internal/environment/extractors"
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotEnvExtractor(t *testing.T) {
	extractor := extractors.NewDotEnvExtractor()
	content := `DEBUG=True
SECRET_KEY=
# comment
DATABASE_URL="sqlite:///db.sqlite3"
`

	results, err := extractor.Extract(context.Background(), ".env", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"DATABASE_URL", "DEBUG", "SECRET_KEY"}, declarationKeys(results))

	require.NotNil(t, results[0].RawDefault)
	assert.Equal(t, types.RawValue{Text: "sqlite:///db.sqlite3", Kind: types.KindText}, *results[0].RawDefault)
	assert.Equal(t, "dotenv:.env", results[0].Source)
}

func TestDotEnvExtractor_CanHandle(t *testing.T) {
	extractor := extractors.NewDotEnvExtractor()

	assert.True(t, extractor.CanHandle(".env"))
	assert.True(t, extractor.CanHandle("config/.env.local"))
	assert.True(t, extractor.CanHandle("production.env"))
	assert.False(t, extractor.CanHandle("settings.py"))
}
