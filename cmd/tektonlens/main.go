// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command tektonlens inspects Tekton pipeline YAML files.
//
// Usage:
//
//	tektonlens kinds pipeline.yaml
//	tektonlens tasks pipeline.yaml --output json
//	tektonlens resources pipeline.yaml
//	tektonlens graph pipeline.yaml | dot -Tsvg -o pipeline.svg
//	tektonlens watch pipeline.yaml
package main

import (
	"fmt"
	"os"

	"github.com/AleutianAI/tektonlens/pkg/ux"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ux.ErrorText("Error: "+err.Error()))
		os.Exit(1)
	}
}
