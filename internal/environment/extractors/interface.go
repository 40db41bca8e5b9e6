package extractors

import (
	"context"

	"github.com/environhelper/environhelper/internal/environment/types"
)

// ContentExtractor processes file content and extracts env declarations
type ContentExtractor interface {
	// Extract env declarations from file content, in source order
	Extract(ctx context.Context, filename string, content []byte) ([]types.EnvDeclaration, error)

	// CanHandle returns true if this extractor understands the given file
	CanHandle(filename string) bool
}
