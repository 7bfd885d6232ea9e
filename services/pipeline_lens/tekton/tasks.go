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

// DefaultTaskKind is the task kind assumed when a taskRef block carries no
// explicit kind key.
const DefaultTaskKind = "Task"

// DeclaredTask describes one entry of a Pipeline's spec.tasks sequence.
type DeclaredTask struct {
	// Name is the task entry's own name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// TaskRef is the name of the referenced task. Populated only when the
	// entry carries a taskRef mapping with a name scalar inside it.
	TaskRef string `json:"taskRef,omitempty" yaml:"taskRef,omitempty"`

	// Kind is the referenced task's kind ("Task", "ClusterTask", ...).
	// Populated only when a taskRef mapping is present, defaulting to
	// DefaultTaskKind when the mapping has no explicit kind.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// RunAfter lists the task's ordering dependencies: every scalar of the
	// explicit runAfter sequence first, followed by every scalar inferred
	// from resources.inputs[*].from, in source order. Duplicates are kept.
	RunAfter []string `json:"runAfter,omitempty" yaml:"runAfter,omitempty"`
}

// PipelineTasks extracts the declared tasks of a Pipeline document.
//
// The caller is responsible for classification; a document without a
// spec.tasks sequence simply yields an empty slice. The result preserves
// the source order of task entries, and entries that are not mappings are
// skipped with no placeholder.
func PipelineTasks(doc *ast.Document) []DeclaredTask {
	tasks := make([]DeclaredTask, 0)

	spec := FindChildByKey(RootMapping(doc), "spec")
	seq := FindChildByKey(spec, "tasks")
	if seq == nil || seq.Kind != ast.KindSequence {
		return tasks
	}

	for _, item := range seq.Items {
		if item == nil || item.Kind != ast.KindMapping {
			continue
		}
		tasks = append(tasks, declaredTask(item))
	}
	return tasks
}

// declaredTask reads one well-formed-or-not task entry. A taskRef mapping
// whose nested name is absent leaves TaskRef empty while the other fields
// stay populated.
func declaredTask(entry *ast.Node) DeclaredTask {
	var task DeclaredTask

	if name, ok := ReadScalarValue(entry, "name", MatchExact); ok {
		task.Name = name
	}

	if ref := FindChildByKey(entry, "taskRef"); ref != nil && ref.Kind == ast.KindMapping {
		if name, ok := ReadScalarValue(ref, "name", MatchExact); ok {
			task.TaskRef = name
		}
		task.Kind = DefaultTaskKind
		if kind, ok := ReadScalarValue(ref, "kind", MatchExact); ok {
			task.Kind = kind
		}
	}

	task.RunAfter = append(task.RunAfter, explicitRunAfter(entry)...)
	task.RunAfter = append(task.RunAfter, inferredRunAfter(entry)...)
	return task
}

// explicitRunAfter collects the scalars of the entry's runAfter sequence,
// in order.
func explicitRunAfter(entry *ast.Node) []string {
	seq := FindChildByKey(entry, "runAfter")
	if seq == nil || seq.Kind != ast.KindSequence {
		return nil
	}
	var order []string
	for _, item := range seq.Items {
		if item != nil && item.Kind == ast.KindScalar {
			order = append(order, item.Value)
		}
	}
	return order
}

// inferredRunAfter collects the entry's resource-inferred dependencies:
// every scalar under resources.inputs[*].from, inputs in sequence order.
func inferredRunAfter(entry *ast.Node) []string {
	resources := FindChildByKey(entry, "resources")
	inputs := FindChildByKey(resources, "inputs")
	if inputs == nil || inputs.Kind != ast.KindSequence {
		return nil
	}
	var order []string
	for _, input := range inputs.Items {
		if input == nil || input.Kind != ast.KindMapping {
			continue
		}
		from := FindChildByKey(input, "from")
		if from == nil || from.Kind != ast.KindSequence {
			continue
		}
		for _, item := range from.Items {
			if item != nil && item.Kind == ast.KindScalar {
				order = append(order, item.Value)
			}
		}
	}
	return order
}
