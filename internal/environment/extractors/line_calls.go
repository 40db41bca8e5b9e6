package extractors

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/environment/types"
	"go.uber.org/zap"
)

// LineCallExtractor is a line-oriented fast path for PythonCallExtractor.
// It only sees calls whose key and default sit on the same line as the
// call's opening parenthesis, and it never reports syntax errors.
type LineCallExtractor struct {
	accessors *catalog.Catalog
	logger    *zap.SugaredLogger
}

func NewLineCallExtractor(accessors *catalog.Catalog, logger *zap.SugaredLogger) *LineCallExtractor {
	return &LineCallExtractor{accessors: accessors, logger: logger}
}

func (l *LineCallExtractor) CanHandle(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, pythonExt := range pythonExts {
		if ext == pythonExt {
			return true
		}
	}
	return false
}

var (
	// env("KEY" / env.str(key="KEY"
	callHeadPattern = regexp.MustCompile(`(?:^|[^\w.])env(?:\.([A-Za-z_]\w*))?\(\s*(?:key\s*=\s*)?([rRuU]?(?:"[^"\\\n]*"|'[^'\\\n]*'))`)

	// , immediately after the key
	positionalDefaultPattern = regexp.MustCompile(`^\s*,\s*`)

	// default= anywhere in the argument list
	keywordDefaultPattern = regexp.MustCompile(`(?:^|[\s,])default\s*=\s*`)

	keywordArgumentPattern = regexp.MustCompile(`^[A-Za-z_]\w*\s*=[^=]`)

	stringPattern = regexp.MustCompile(`^[rRuUbBfF]{0,2}(?:"[^"\\\n]*"|'[^'\\\n]*')$`)
	numberPattern = regexp.MustCompile(`^-?(?:\d[\d_]*)(?:\.\d*)?(?:[eE][-+]?\d+)?$`)
	namePattern   = regexp.MustCompile(`^[A-Za-z_]\w*(?:\.[A-Za-z_]\w*)*$`)
)

func (l *LineCallExtractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvDeclaration, error) {
	var declarations []types.EnvDeclaration

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := stripComment(scanner.Text())
		for _, match := range callHeadPattern.FindAllStringSubmatchIndex(line, -1) {
			declaration, ok := l.extractMatch(line, match, lineNumber)
			if !ok {
				continue
			}
			declaration.Line = lineNumber
			declaration.Source = fmt.Sprintf("python:%s", filename)
			declarations = append(declarations, declaration)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", filename, err)
	}
	return declarations, nil
}

func (l *LineCallExtractor) extractMatch(line string, match []int, lineNumber int) (types.EnvDeclaration, bool) {
	var declaration types.EnvDeclaration

	if match[2] >= 0 {
		accessor := line[match[2]:match[3]]
		if !l.accessors.Contains(accessor) {
			l.logger.Debugw("Skipping call with unknown accessor", "line", lineNumber, "accessor", accessor)
			return declaration, false
		}
		declaration.DeclaredType = accessor
	}

	keyLiteral := line[match[4]:match[5]]
	key, ok := types.Unquote(keyLiteral)
	if !ok || key == "" {
		l.logger.Debugw("Skipping call without a literal key", "line", lineNumber, "key", keyLiteral)
		return declaration, false
	}
	declaration.Key = key
	declaration.RawDefault = defaultArgument(argumentTail(line[match[1]:]))

	return declaration, true
}

// defaultArgument finds the default among the arguments following the key:
// the second positional argument if there is one, else default=.
func defaultArgument(rest string) *types.RawValue {
	if loc := positionalDefaultPattern.FindStringIndex(rest); loc != nil {
		expr, ok := expressionAt(rest[loc[1]:])
		if ok && !strings.HasPrefix(expr, "*") && !keywordArgumentPattern.MatchString(expr) {
			return classifyLiteral(expr)
		}
	}
	if loc := keywordDefaultPattern.FindStringIndex(rest); loc != nil {
		if expr, ok := expressionAt(rest[loc[1]:]); ok {
			return classifyLiteral(expr)
		}
	}
	return nil
}

// expressionAt returns the argument at the start of s, up to the top-level
// comma or closing parenthesis that ends it.
func expressionAt(s string) (string, bool) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			if depth == 0 {
				expr := strings.TrimSpace(s[:i])
				return expr, expr != ""
			}
			depth--
		case c == ',' && depth == 0:
			expr := strings.TrimSpace(s[:i])
			return expr, expr != ""
		}
	}
	return "", false
}

// argumentTail cuts s after the parenthesis that closes the current call,
// ignoring parentheses inside string literals.
func argumentTail(s string) string {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return s[:i+1]
			}
			depth--
		}
	}
	return s
}

func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

func classifyLiteral(text string) *types.RawValue {
	switch {
	case stringPattern.MatchString(text):
		if strings.ContainsAny(types.StringPrefix(text), "fF") && strings.Contains(text, "{") {
			return &types.RawValue{Text: text, Kind: types.KindExpression}
		}
		return &types.RawValue{Text: text, Kind: types.KindString}
	case text == "True" || text == "False":
		return &types.RawValue{Text: text, Kind: types.KindBool}
	case text == "None":
		return &types.RawValue{Text: text, Kind: types.KindNone}
	case numberPattern.MatchString(text):
		return &types.RawValue{Text: text, Kind: types.KindNumber}
	case namePattern.MatchString(text):
		return &types.RawValue{Text: text, Kind: types.KindName}
	}
	return &types.RawValue{Text: text, Kind: types.KindExpression}
}
