// Package ast provides a generic YAML abstract syntax tree for the
// Pipeline Lens service.
//
// The tree is a closed tagged variant over three node kinds: Mapping,
// Sequence, and Scalar. It deliberately carries no YAML type coercion:
// scalar values and mapping keys are the raw literal text captured by the
// parser. The tree may represent a document mid-edit, so any part of the
// expected structure can be absent or misshapen; consumers are expected to
// check the node kind at every access site.
//
// Design principles:
//   - Closed variant: exactly Mapping, Sequence, Scalar - no dynamic typing
//   - Raw text only: no string/int/bool coercion of scalar literals
//   - Read-only after Parse: no consumer mutates the tree
package ast

// NodeKind discriminates the variants of a YAML AST node.
type NodeKind int

const (
	// KindMapping is an ordered collection of key/value pairs.
	KindMapping NodeKind = iota

	// KindSequence is an ordered list of child nodes.
	KindSequence

	// KindScalar is a single literal text value.
	KindScalar
)

// String returns the human-readable name of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is one node of the YAML AST.
//
// Exactly one of the variant fields is meaningful, selected by Kind:
// Pairs for KindMapping, Items for KindSequence, Value for KindScalar.
// The other fields are zero values.
type Node struct {
	// Kind selects the variant.
	Kind NodeKind

	// Value is the raw literal text of a Scalar. Quoted scalars have the
	// surrounding quotes stripped but are not unescaped.
	Value string

	// Pairs are the entries of a Mapping in document order. Duplicate keys
	// are preserved; consumers resolve them first-match-wins.
	Pairs []Pair

	// Items are the children of a Sequence in document order.
	Items []*Node

	// StartLine is the 1-based source line where the node begins.
	StartLine int
}

// Pair is one key/value entry of a Mapping.
//
// Value is nil when the document carries a key with no value yet
// (a common mid-edit state such as "name:").
type Pair struct {
	Key   *Node
	Value *Node
}

// Document is one logical YAML document of a source text.
type Document struct {
	// Root is the document's top-level node, nil for an empty document.
	Root *Node

	// Nodes is a flat pre-order list of every node reachable in the
	// document. The first Mapping in this list is the document's root
	// mapping when the document has one.
	Nodes []*Node
}

// register appends a node to the document's flat node list.
// Called by the parser in pre-order as nodes are built.
func (d *Document) register(n *Node) {
	d.Nodes = append(d.Nodes, n)
}

// Stream is the ordered set of documents parsed from one source text.
// YAML allows multiple documents per text, separated by "---".
type Stream struct {
	Documents []*Document
}
