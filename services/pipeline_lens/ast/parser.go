package ast

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/yaml"
)

// DefaultMaxFileSize is the maximum input size the parser accepts (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// ErrFileTooLarge is returned when input content exceeds the maximum file size.
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// ErrInvalidContent is returned when input content is not valid UTF-8.
var ErrInvalidContent = errors.New("content is not valid UTF-8")

// Parser converts YAML source text into a Stream of Documents.
//
// Description:
//
//	Parser uses tree-sitter to parse YAML text and converts the resulting
//	parse tree into the package's Mapping/Sequence/Scalar node model.
//	Regions tree-sitter could not parse simply contribute no nodes; the
//	conversion never fails on malformed YAML, only on whole-input problems
//	(invalid UTF-8, oversized input).
//
// Thread Safety:
//
//	Parser is safe for concurrent use. Each Parse call creates its own
//	tree-sitter parser instance.
type Parser struct {
	options ParserOptions
}

// ParserOptions configures Parser behavior.
type ParserOptions struct {
	// MaxFileSize is the maximum input size in bytes to parse.
	// Inputs larger than this return ErrFileTooLarge.
	// Default: 10MB
	MaxFileSize int
}

// DefaultParserOptions returns the default options.
func DefaultParserOptions() ParserOptions {
	return ParserOptions{
		MaxFileSize: DefaultMaxFileSize,
	}
}

// ParserOption is a functional option for configuring Parser.
type ParserOption func(*ParserOptions)

// WithMaxFileSize sets the maximum input size for parsing.
func WithMaxFileSize(size int) ParserOption {
	return func(o *ParserOptions) {
		if size > 0 {
			o.MaxFileSize = size
		}
	}
}

// NewParser creates a new Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	options := DefaultParserOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{
		options: options,
	}
}

// Parse converts YAML source text into a Stream.
//
// Inputs:
//
//	ctx     - Context for cancellation. Checked before and after parsing.
//	content - Raw YAML source bytes. Must be valid UTF-8.
//
// Outputs:
//
//	*Stream - One Document per YAML document in the text, in source order.
//	          Never nil on success; empty input yields an empty Stream.
//	error   - Non-nil only for complete failures (invalid UTF-8, too large,
//	          cancellation). Malformed YAML is not an error.
func (p *Parser) Parse(ctx context.Context, content []byte) (*Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("yaml parse canceled before start: %w", err)
	}

	if len(content) > p.options.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	parser.SetLanguage(yaml.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("yaml parse canceled after tree-sitter: %w", err)
	}

	stream := &Stream{Documents: make([]*Document, 0)}
	root := tree.RootNode()
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() != yamlNodeDocument {
			continue
		}
		stream.Documents = append(stream.Documents, p.convertDocument(child, content))
	}
	return stream, nil
}

// convertDocument converts one tree-sitter document node. The first
// convertible top-level node becomes the document root; an empty document
// ("---" with nothing after it) has a nil root.
func (p *Parser) convertDocument(ts *sitter.Node, content []byte) *Document {
	doc := &Document{Nodes: make([]*Node, 0)}
	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		switch child.Type() {
		case yamlNodeBlockNode, yamlNodeFlowNode:
			if n := p.convertNode(child, content, doc); n != nil && doc.Root == nil {
				doc.Root = n
			}
		}
	}
	return doc
}

// convertNode converts a tree-sitter node into a Node, registering every
// produced node on doc in pre-order. Returns nil for node types that have
// no representation in the model (comments, anchors, aliases, tags,
// directives, ERROR recoveries).
func (p *Parser) convertNode(ts *sitter.Node, content []byte, doc *Document) *Node {
	if ts == nil {
		return nil
	}

	switch ts.Type() {
	case yamlNodeBlockNode, yamlNodeFlowNode:
		// Wrapper: the first convertible child is the node itself; anchor
		// and tag siblings are skipped.
		for i := 0; i < int(ts.ChildCount()); i++ {
			if n := p.convertNode(ts.Child(i), content, doc); n != nil {
				return n
			}
		}
		return nil

	case yamlNodeBlockMapping, yamlNodeFlowMapping:
		return p.convertMapping(ts, content, doc)

	case yamlNodeBlockSequence, yamlNodeFlowSequence:
		return p.convertSequence(ts, content, doc)

	case yamlNodePlainScalar, yamlNodeBlockScalar,
		yamlNodeDoubleQuoteScalar, yamlNodeSingleQuoteScalar:
		return p.convertScalar(ts, content, doc)

	default:
		return nil
	}
}

// convertMapping converts block and flow mappings. Pairs whose key could
// not be converted are dropped; pairs with a key but no value are kept with
// a nil value so consumers can see the key mid-edit.
func (p *Parser) convertMapping(ts *sitter.Node, content []byte, doc *Document) *Node {
	node := &Node{
		Kind:      KindMapping,
		StartLine: int(ts.StartPoint().Row) + 1,
	}
	doc.register(node)

	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		if t := child.Type(); t != yamlNodeBlockMappingPair && t != yamlNodeFlowPair {
			continue
		}
		key := p.convertNode(child.ChildByFieldName("key"), content, doc)
		if key == nil {
			continue
		}
		value := p.convertNode(child.ChildByFieldName("value"), content, doc)
		node.Pairs = append(node.Pairs, Pair{Key: key, Value: value})
	}
	return node
}

// convertSequence converts block and flow sequences. Items that have no
// representation (an alias entry, an unparseable region) are skipped with
// no placeholder.
func (p *Parser) convertSequence(ts *sitter.Node, content []byte, doc *Document) *Node {
	node := &Node{
		Kind:      KindSequence,
		StartLine: int(ts.StartPoint().Row) + 1,
	}
	doc.register(node)

	for i := 0; i < int(ts.ChildCount()); i++ {
		child := ts.Child(i)
		switch child.Type() {
		case yamlNodeBlockSequenceItem:
			// "- value": the item wraps a single block_node or flow_node.
			for j := 0; j < int(child.ChildCount()); j++ {
				if item := p.convertNode(child.Child(j), content, doc); item != nil {
					node.Items = append(node.Items, item)
					break
				}
			}
		case yamlNodeFlowNode:
			// Flow sequence member, between "[", "," and "]" tokens.
			if item := p.convertNode(child, content, doc); item != nil {
				node.Items = append(node.Items, item)
			}
		}
	}
	return node
}

// convertScalar converts scalar nodes. The literal is the raw source text;
// quoted scalars have the surrounding quotes stripped but keep their escape
// sequences verbatim.
func (p *Parser) convertScalar(ts *sitter.Node, content []byte, doc *Document) *Node {
	text := string(content[ts.StartByte():ts.EndByte()])

	switch ts.Type() {
	case yamlNodeDoubleQuoteScalar, yamlNodeSingleQuoteScalar:
		if len(text) >= 2 {
			text = text[1 : len(text)-1]
		}
	}

	node := &Node{
		Kind:      KindScalar,
		Value:     text,
		StartLine: int(ts.StartPoint().Row) + 1,
	}
	doc.register(node)
	return node
}
