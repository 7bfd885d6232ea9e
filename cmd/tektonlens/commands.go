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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/tektonlens/pkg/ux"
)

// --- Global Command Variables ---
var (
	outputFormat  string // text, json or yaml
	noColor       bool
	verbose       bool
	debounceMilli int // watch debounce window

	rootCmd = &cobra.Command{
		Use:   "tektonlens",
		Short: "A cli to inspect Tekton pipeline YAML",
		Long: `tektonlens reads Tekton resource files (tekton.dev/v1alpha1) and
answers structured questions about them: which kinds the documents
declare, which tasks a Pipeline runs and in what order, and which
resources it binds. Malformed or mid-edit documents are read
best-effort, never rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ux.SetColorEnabled(false)
			}
		},
	}

	kindsCmd = &cobra.Command{
		Use:   "kinds [file...]",
		Short: "List every document and its declared Tekton kind",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runKinds, // Defined in cmd_query.go
	}

	tasksCmd = &cobra.Command{
		Use:   "tasks [file]",
		Short: "List the declared tasks of every Pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE:  runTasks, // Defined in cmd_query.go
	}

	resourcesCmd = &cobra.Command{
		Use:   "resources [file]",
		Short: "List the declared resources of every Pipeline document",
		Args:  cobra.ExactArgs(1),
		RunE:  runResources, // Defined in cmd_query.go
	}

	graphCmd = &cobra.Command{
		Use:   "graph [file]",
		Short: "Emit the task ordering graph as Graphviz DOT",
		Long: `graph prints a DOT digraph of task ordering dependencies: one edge
per runAfter entry, explicit entries and resource-inferred ("from")
entries alike. Pipe the output to dot for rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: runGraph, // Defined in cmd_graph.go
	}

	watchCmd = &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run the task query whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch, // Defined in cmd_watch.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	watchCmd.Flags().IntVar(&debounceMilli, "debounce", 200, "Debounce window in milliseconds")

	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(watchCmd)
}
