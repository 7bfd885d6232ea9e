// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package tekton

import (
	"github.com/AleutianAI/tektonlens/services/pipeline_lens/ast"
)

// APIVersion is the only apiVersion this package recognizes. A document
// carrying any other value, or none, has no declared kind and is ignored
// by every extractor.
const APIVersion = "tekton.dev/v1alpha1"

// DeclaredKind identifies which Tekton resource a document declares.
type DeclaredKind string

const (
	KindTask             DeclaredKind = "Task"
	KindTaskRun          DeclaredKind = "TaskRun"
	KindPipeline         DeclaredKind = "Pipeline"
	KindPipelineRun      DeclaredKind = "PipelineRun"
	KindPipelineResource DeclaredKind = "PipelineResource"
)

// declaredKinds maps the literal text of a document's kind field to its
// enum value. Matching is exact and case-sensitive.
var declaredKinds = map[string]DeclaredKind{
	"Task":             KindTask,
	"TaskRun":          KindTaskRun,
	"Pipeline":         KindPipeline,
	"PipelineRun":      KindPipelineRun,
	"PipelineResource": KindPipelineResource,
}

// RootMapping returns the document's root mapping: the first Mapping in
// the document's flat node list, in document order. Returns nil when the
// document has no mapping at all.
func RootMapping(doc *ast.Document) *ast.Node {
	if doc == nil {
		return nil
	}
	for _, n := range doc.Nodes {
		if n.Kind == ast.KindMapping {
			return n
		}
	}
	return nil
}

// Classify determines the declared kind of one document.
//
// The document matches only when its root mapping carries an apiVersion
// scalar equal to APIVersion exactly and a kind scalar matching one of the
// recognized literals. Anything else - missing root, missing or foreign
// apiVersion, unrecognized kind - yields ("", false).
func Classify(doc *ast.Document) (DeclaredKind, bool) {
	root := RootMapping(doc)

	version, ok := ReadScalarValue(root, "apiVersion", MatchExact)
	if !ok || version != APIVersion {
		return "", false
	}

	literal, ok := ReadScalarValue(root, "kind", MatchExact)
	if !ok {
		return "", false
	}

	kind, ok := declaredKinds[literal]
	return kind, ok
}

// MetadataName returns the document's metadata.name scalar. Absent when
// any link of the root -> metadata -> name chain is missing.
func MetadataName(doc *ast.Document) (string, bool) {
	metadata := FindChildByKey(RootMapping(doc), "metadata")
	return ReadScalarValue(metadata, "name", MatchExact)
}
