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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/tektonlens/pkg/ux"
	"github.com/AleutianAI/tektonlens/services/pipeline_lens/ast"
	"github.com/AleutianAI/tektonlens/services/pipeline_lens/tekton"
)

// loadStream reads a YAML file and parses it into a document stream.
func loadStream(cmd *cobra.Command, path string) (*ast.Stream, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := ast.NewParser().Parse(cmd.Context(), content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return stream, nil
}

// encode marshals v to stdout in the requested output format. The text
// format is handled by each command before reaching here.
func encode(v any) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

// documentReport is one classified document of a file.
type documentReport struct {
	File     string `json:"file" yaml:"file"`
	Document int    `json:"document" yaml:"document"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

func runKinds(cmd *cobra.Command, args []string) error {
	reports := make([]documentReport, 0)
	for _, path := range args {
		stream, err := loadStream(cmd, path)
		if err != nil {
			return err
		}
		for i, doc := range stream.Documents {
			report := documentReport{File: path, Document: i + 1}
			if kind, ok := tekton.Classify(doc); ok {
				report.Kind = string(kind)
			}
			if name, ok := tekton.MetadataName(doc); ok {
				report.Name = name
			}
			reports = append(reports, report)
		}
	}

	if outputFormat != "text" {
		return encode(reports)
	}
	for _, r := range reports {
		kind := r.Kind
		if kind == "" {
			kind = "(not tekton.dev/v1alpha1)"
		}
		line := fmt.Sprintf("%s  #%d  %s", r.File, r.Document, ux.Subtitle(kind))
		if r.Name != "" {
			line += "  " + ux.Title(r.Name)
		}
		fmt.Println(line)
	}
	return nil
}

// pipelineTasksReport groups the declared tasks of one Pipeline document.
type pipelineTasksReport struct {
	Pipeline string                `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
	Tasks    []tekton.DeclaredTask `json:"tasks" yaml:"tasks"`
}

func runTasks(cmd *cobra.Command, args []string) error {
	stream, err := loadStream(cmd, args[0])
	if err != nil {
		return err
	}

	reports := make([]pipelineTasksReport, 0)
	for _, doc := range tekton.DocumentsOfKind(stream, tekton.KindPipeline) {
		report := pipelineTasksReport{Tasks: tekton.PipelineTasks(doc)}
		if name, ok := tekton.MetadataName(doc); ok {
			report.Pipeline = name
		}
		reports = append(reports, report)
	}

	if outputFormat != "text" {
		return encode(reports)
	}
	if len(reports) == 0 {
		fmt.Println(ux.Muted("no Pipeline documents found"))
		return nil
	}
	for _, report := range reports {
		header := report.Pipeline
		if header == "" {
			header = "(unnamed pipeline)"
		}
		fmt.Printf("%s  %s\n", ux.Title(header), ux.Muted(fmt.Sprintf("(%d tasks)", len(report.Tasks))))
		for _, task := range report.Tasks {
			line := "  " + task.Name
			if task.TaskRef != "" {
				line += fmt.Sprintf("  -> %s (%s)", task.TaskRef, task.Kind)
			}
			if len(task.RunAfter) > 0 {
				line += "  " + ux.Muted("runAfter: "+strings.Join(task.RunAfter, ", "))
			}
			fmt.Println(line)
		}
	}
	return nil
}

// pipelineResourcesReport groups the declared resources of one Pipeline
// document.
type pipelineResourcesReport struct {
	Pipeline  string                    `json:"pipeline,omitempty" yaml:"pipeline,omitempty"`
	Resources []tekton.DeclaredResource `json:"resources" yaml:"resources"`
}

func runResources(cmd *cobra.Command, args []string) error {
	stream, err := loadStream(cmd, args[0])
	if err != nil {
		return err
	}

	reports := make([]pipelineResourcesReport, 0)
	for _, doc := range tekton.DocumentsOfKind(stream, tekton.KindPipeline) {
		report := pipelineResourcesReport{
			Resources: tekton.DeclaredResources(tekton.RootMapping(doc)),
		}
		if name, ok := tekton.MetadataName(doc); ok {
			report.Pipeline = name
		}
		reports = append(reports, report)
	}

	if outputFormat != "text" {
		return encode(reports)
	}
	if len(reports) == 0 {
		fmt.Println(ux.Muted("no Pipeline documents found"))
		return nil
	}
	for _, report := range reports {
		header := report.Pipeline
		if header == "" {
			header = "(unnamed pipeline)"
		}
		fmt.Printf("%s  %s\n", ux.Title(header), ux.Muted(fmt.Sprintf("(%d resources)", len(report.Resources))))
		for _, res := range report.Resources {
			name := res.Name
			if name == "" {
				name = "(unnamed)"
			}
			line := "  " + name
			if res.Type != "" {
				line += "  " + ux.Subtitle(res.Type)
			}
			fmt.Println(line)
		}
	}
	return nil
}
