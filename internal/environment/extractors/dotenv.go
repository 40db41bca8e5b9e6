package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/joho/godotenv"
)

// DotEnvExtractor reads declarations back out of an existing env file.
type DotEnvExtractor struct{}

func NewDotEnvExtractor() *DotEnvExtractor {
	return &DotEnvExtractor{}
}

func (d *DotEnvExtractor) CanHandle(filename string) bool {
	base := strings.ToLower(filepath.Base(filename))
	return strings.HasPrefix(base, ".env") || strings.HasSuffix(base, ".env")
}

func (d *DotEnvExtractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvDeclaration, error) {
	env, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	// godotenv returns a map; sort for stable output
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	declarations := make([]types.EnvDeclaration, 0, len(keys))
	for _, key := range keys {
		declarations = append(declarations, types.EnvDeclaration{
			Key:        key,
			RawDefault: &types.RawValue{Text: env[key], Kind: types.KindText},
			Source:     fmt.Sprintf("dotenv:%s", filename),
		})
	}

	return declarations, nil
}
