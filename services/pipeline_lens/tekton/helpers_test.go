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
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/tektonlens/services/pipeline_lens/ast"
)

// parseStream parses YAML source text into a Stream, failing the test on
// whole-input errors.
func parseStream(t *testing.T, source string) *ast.Stream {
	t.Helper()
	stream, err := ast.NewParser().Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	return stream
}

// parseDoc parses YAML source text expected to hold exactly one document.
func parseDoc(t *testing.T, source string) *ast.Document {
	t.Helper()
	stream := parseStream(t, source)
	require.Len(t, stream.Documents, 1)
	return stream.Documents[0]
}
