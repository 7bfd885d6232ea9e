// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/tektonlens/services/pipeline_lens/tekton"
)

func runGraph(cmd *cobra.Command, args []string) error {
	stream, err := loadStream(cmd, args[0])
	if err != nil {
		return err
	}

	for _, doc := range tekton.DocumentsOfKind(stream, tekton.KindPipeline) {
		name, _ := tekton.MetadataName(doc)
		fmt.Print(taskGraphDOT(name, tekton.PipelineTasks(doc)))
	}
	return nil
}

// taskGraphDOT renders the ordering graph of one Pipeline as a DOT
// digraph. Every task is a node; every runAfter entry (explicit or
// resource-inferred) becomes an edge from the dependency to the task, so
// the rendered graph reads left to right in execution order.
func taskGraphDOT(name string, tasks []tekton.DeclaredTask) string {
	var b strings.Builder

	if name == "" {
		name = "pipeline"
	}
	fmt.Fprintf(&b, "digraph %s {\n", quoteDOT(name))
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box];\n")

	for _, task := range tasks {
		if task.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s;\n", quoteDOT(task.Name))
	}
	for _, task := range tasks {
		if task.Name == "" {
			continue
		}
		for _, dep := range task.RunAfter {
			fmt.Fprintf(&b, "  %s -> %s;\n", quoteDOT(dep), quoteDOT(task.Name))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// quoteDOT wraps an identifier in double quotes, escaping embedded quotes.
func quoteDOT(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
