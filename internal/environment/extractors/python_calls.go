package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/environhelper/environhelper/internal/environment/catalog"
	"github.com/environhelper/environhelper/internal/environment/types"
	"github.com/environhelper/environhelper/internal/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"go.uber.org/zap"
)

// envReader is the receiver name recognized in settings files.
const envReader = "env"

// PythonCallExtractor walks the Python syntax tree and reports every
// env(...) and env.<accessor>(...) call, including calls that span lines or
// sit inside other expressions.
type PythonCallExtractor struct {
	lang      *sitter.Language
	accessors *catalog.Catalog
	logger    *zap.SugaredLogger
}

func NewPythonCallExtractor(accessors *catalog.Catalog, logger *zap.SugaredLogger) *PythonCallExtractor {
	return &PythonCallExtractor{
		lang:      python.GetLanguage(),
		accessors: accessors,
		logger:    logger,
	}
}

// Python 2 statements the grammar still accepts but Python 3 rejects
var legacyStatements = map[string]bool{
	"print_statement": true,
	"exec_statement":  true,
}

var pythonExts = []string{".py", ".pyi", ".pyw"}

func (p *PythonCallExtractor) CanHandle(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, pythonExt := range pythonExts {
		if ext == pythonExt {
			return true
		}
	}
	return false
}

func (p *PythonCallExtractor) Extract(ctx context.Context, filename string, content []byte) ([]types.EnvDeclaration, error) {
	// A parser per call keeps the extractor safe for concurrent use
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(filename, firstErrorNode(root))
	}
	if node := firstLegacyStatement(root); node != nil {
		return nil, syntaxError(filename, node)
	}

	var declarations []types.EnvDeclaration
	p.walkTree(root, content, filename, &declarations)
	return declarations, nil
}

// walkTree visits nodes in source order so declarations keep file order
func (p *PythonCallExtractor) walkTree(node *sitter.Node, source []byte, filename string, out *[]types.EnvDeclaration) {
	if node == nil {
		return
	}

	if node.Type() == "call" {
		if declaration, ok := p.extractCall(node, source); ok {
			declaration.Source = fmt.Sprintf("python:%s", filename)
			*out = append(*out, declaration)
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		p.walkTree(node.NamedChild(i), source, filename, out)
	}
}

func (p *PythonCallExtractor) extractCall(node *sitter.Node, source []byte) (types.EnvDeclaration, bool) {
	declaration := types.EnvDeclaration{
		Line: int(node.StartPoint().Row) + 1,
	}

	function := node.ChildByFieldName("function")
	if function == nil {
		return declaration, false
	}

	switch function.Type() {
	case "identifier":
		if function.Content(source) != envReader {
			return declaration, false
		}
	case "attribute":
		object := function.ChildByFieldName("object")
		attribute := function.ChildByFieldName("attribute")
		if object == nil || attribute == nil || object.Type() != "identifier" || object.Content(source) != envReader {
			return declaration, false
		}
		accessor := attribute.Content(source)
		if !p.accessors.Contains(accessor) {
			p.logger.Debugw("Skipping call with unknown accessor", "line", declaration.Line, "accessor", accessor)
			return declaration, false
		}
		declaration.DeclaredType = accessor
	default:
		return declaration, false
	}

	arguments := node.ChildByFieldName("arguments")
	if arguments == nil || arguments.Type() != "argument_list" {
		return declaration, false
	}

	var positional []*sitter.Node
	keywords := make(map[string]*sitter.Node)
	for i := 0; i < int(arguments.NamedChildCount()); i++ {
		arg := arguments.NamedChild(i)
		switch arg.Type() {
		case "comment", "list_splat", "dictionary_splat":
			continue
		case "keyword_argument":
			name := arg.ChildByFieldName("name")
			value := arg.ChildByFieldName("value")
			if name != nil && value != nil {
				keywords[name.Content(source)] = value
			}
		default:
			positional = append(positional, arg)
		}
	}

	key, ok := "", false
	if len(positional) > 0 {
		key, ok = stringLiteral(positional[0], source)
	}
	if !ok {
		if keyNode, exists := keywords["key"]; exists {
			key, ok = stringLiteral(keyNode, source)
		}
	}
	if !ok || key == "" {
		p.logger.Debugw("Skipping call without a literal key", "line", declaration.Line, "call", function.Content(source))
		return declaration, false
	}
	declaration.Key = key

	if len(positional) > 1 {
		declaration.RawDefault = literalValue(positional[1], source)
	} else if defaultNode, exists := keywords["default"]; exists {
		declaration.RawDefault = literalValue(defaultNode, source)
	}

	return declaration, true
}

// stringLiteral returns the content of a plain string literal. f-strings with
// interpolations are not literals; adjacent literals are joined.
func stringLiteral(node *sitter.Node, source []byte) (string, bool) {
	switch node.Type() {
	case "string":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			if node.NamedChild(i).Type() == "interpolation" {
				return "", false
			}
		}
		return types.Unquote(node.Content(source))
	case "concatenated_string":
		var b strings.Builder
		for i := 0; i < int(node.NamedChildCount()); i++ {
			part, ok := stringLiteral(node.NamedChild(i), source)
			if !ok {
				return "", false
			}
			b.WriteString(part)
		}
		return b.String(), true
	case "parenthesized_expression":
		if node.NamedChildCount() == 1 {
			return stringLiteral(node.NamedChild(0), source)
		}
	}
	return "", false
}

// literalValue returns the default as written. Expressions the extractor
// does not interpret (calls, containers, operators, f-strings) keep their
// source text as KindExpression.
func literalValue(node *sitter.Node, source []byte) *types.RawValue {
	text := node.Content(source)

	switch node.Type() {
	case "string", "concatenated_string":
		if _, ok := stringLiteral(node, source); ok {
			return &types.RawValue{Text: text, Kind: types.KindString}
		}
	case "true", "false":
		return &types.RawValue{Text: text, Kind: types.KindBool}
	case "integer", "float":
		return &types.RawValue{Text: text, Kind: types.KindNumber}
	case "none":
		return &types.RawValue{Text: text, Kind: types.KindNone}
	case "identifier":
		return &types.RawValue{Text: text, Kind: types.KindName}
	case "attribute":
		if isDottedName(node) {
			return &types.RawValue{Text: text, Kind: types.KindName}
		}
	case "unary_operator":
		argument := node.ChildByFieldName("argument")
		if argument != nil && (argument.Type() == "integer" || argument.Type() == "float") {
			return &types.RawValue{Text: text, Kind: types.KindNumber}
		}
	case "parenthesized_expression":
		if node.NamedChildCount() == 1 {
			if inner := literalValue(node.NamedChild(0), source); inner.Kind != types.KindExpression {
				return inner
			}
		}
	}
	return &types.RawValue{Text: text, Kind: types.KindExpression}
}

func isDottedName(node *sitter.Node) bool {
	switch node.Type() {
	case "identifier":
		return true
	case "attribute":
		object := node.ChildByFieldName("object")
		return object != nil && isDottedName(object)
	}
	return false
}

// syntaxError reports the position of the offending node
func syntaxError(filename string, node *sitter.Node) error {
	if node == nil {
		return errors.Wrapf(errors.ErrSyntax, "%s", filename)
	}
	point := node.StartPoint()
	return errors.Wrapf(errors.ErrSyntax, "%s:%d:%d", filename, point.Row+1, point.Column+1)
}

// firstErrorNode locates the first ERROR or MISSING node under node
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil || !node.HasError() {
		if node != nil && node.IsMissing() {
			return node
		}
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return node
}

func firstLegacyStatement(node *sitter.Node) *sitter.Node {
	if legacyStatements[node.Type()] {
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := firstLegacyStatement(node.NamedChild(i)); found != nil {
			return found
		}
	}
	return nil
}
