// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tekton answers structured queries over YAML ASTs that declare
// Tekton CI/CD resources (apiVersion tekton.dev/v1alpha1).
//
// The package classifies each document of a stream as one of the declared
// kinds (Task, TaskRun, Pipeline, PipelineRun, PipelineResource) and
// extracts the tasks and resources a Pipeline document declares, including
// task ordering dependencies (explicit runAfter plus dependencies inferred
// from resource "from" references).
//
// Every function in this package is best-effort: the AST may represent a
// document mid-edit, so absent keys, wrong node kinds, empty sequences and
// unrecognized literals all degrade to an absent value or an empty result.
// Nothing here returns an error or panics on malformed input, and nothing
// mutates the AST. All results are transient values recomputed per call;
// the package holds no state and is safe for concurrent use.
package tekton
