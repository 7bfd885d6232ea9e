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

// DocumentsOfKind returns the raw handles of every document in the stream
// whose declared kind equals kind, in stream order. Callers needing
// document-level operations (MetadataName, PipelineTasks) use the handles
// directly.
func DocumentsOfKind(stream *ast.Stream, kind DeclaredKind) []*ast.Document {
	docs := make([]*ast.Document, 0)
	if stream == nil {
		return docs
	}
	for _, doc := range stream.Documents {
		if declared, ok := Classify(doc); ok && declared == kind {
			docs = append(docs, doc)
		}
	}
	return docs
}

// AllPipelineTasks returns the declared tasks of every Pipeline document
// in the stream. Order follows document order across the stream and task
// source order within each document.
func AllPipelineTasks(stream *ast.Stream) []DeclaredTask {
	tasks := make([]DeclaredTask, 0)
	for _, doc := range DocumentsOfKind(stream, KindPipeline) {
		tasks = append(tasks, PipelineTasks(doc)...)
	}
	return tasks
}

// PipelineTaskNames returns the name of every declared task of every
// Pipeline document in the stream. Unnamed entries are omitted.
func PipelineTaskNames(stream *ast.Stream) []string {
	names := make([]string, 0)
	for _, task := range AllPipelineTasks(stream) {
		if task.Name != "" {
			names = append(names, task.Name)
		}
	}
	return names
}

// PipelineTaskRefNames returns the referenced task name of every declared
// task of every Pipeline document in the stream. Entries without a
// resolvable taskRef are omitted.
func PipelineTaskRefNames(stream *ast.Stream) []string {
	names := make([]string, 0)
	for _, task := range AllPipelineTasks(stream) {
		if task.TaskRef != "" {
			names = append(names, task.TaskRef)
		}
	}
	return names
}

// AllDeclaredResources returns the declared resources of every Pipeline
// document in the stream, in stream order.
func AllDeclaredResources(stream *ast.Stream) []DeclaredResource {
	resources := make([]DeclaredResource, 0)
	for _, doc := range DocumentsOfKind(stream, KindPipeline) {
		resources = append(resources, DeclaredResources(RootMapping(doc))...)
	}
	return resources
}
