package ast

// YAML Tree-sitter Node Types
//
// This file documents the tree-sitter node types the Parser consumes while
// converting a tree-sitter parse tree into the package's Node model. The
// parser uses direct node traversal rather than tree-sitter's query
// language for precise control over the conversion.
//
// Reference: https://github.com/ikatyang/tree-sitter-yaml

// Node type constants for YAML AST traversal.
const (
	// Top-level nodes
	yamlNodeStream   = "stream"
	yamlNodeDocument = "document"

	// Mapping nodes
	yamlNodeBlockMapping     = "block_mapping"
	yamlNodeBlockMappingPair = "block_mapping_pair"
	yamlNodeFlowMapping      = "flow_mapping"
	yamlNodeFlowPair         = "flow_pair"

	// Sequence nodes
	yamlNodeBlockSequence     = "block_sequence"
	yamlNodeBlockSequenceItem = "block_sequence_item"
	yamlNodeFlowSequence      = "flow_sequence"

	// Node wrapper types
	yamlNodeBlockNode = "block_node"
	yamlNodeFlowNode  = "flow_node"

	// Scalar nodes
	yamlNodePlainScalar       = "plain_scalar"
	yamlNodeBlockScalar       = "block_scalar"
	yamlNodeDoubleQuoteScalar = "double_quote_scalar"
	yamlNodeSingleQuoteScalar = "single_quote_scalar"
)
