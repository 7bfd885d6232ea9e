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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaredResources_NameTypePairs(t *testing.T) {
	doc := parseDoc(t, `apiVersion: tekton.dev/v1alpha1
kind: Pipeline
spec:
  resources:
    - name: source-repo
      type: git
    - name: built-image
      type: image
`)

	resources := DeclaredResources(RootMapping(doc))
	require.Len(t, resources, 2)
	assert.Equal(t, DeclaredResource{Name: "source-repo", Type: "git"}, resources[0])
	assert.Equal(t, DeclaredResource{Name: "built-image", Type: "image"}, resources[1])
}

func TestDeclaredResources_PartialEntryStillProducesRecord(t *testing.T) {
	doc := parseDoc(t, `spec:
  resources:
    - name: source-repo
    - type: image
`)

	resources := DeclaredResources(RootMapping(doc))
	require.Len(t, resources, 2)
	assert.Equal(t, DeclaredResource{Name: "source-repo"}, resources[0])
	assert.Equal(t, DeclaredResource{Type: "image"}, resources[1])
}

func TestDeclaredResources_EntriesWithNeitherKeySkipped(t *testing.T) {
	doc := parseDoc(t, `spec:
  resources:
    - just-a-scalar
    - foo: bar
    - name: kept
      type: git
`)

	resources := DeclaredResources(RootMapping(doc))
	require.Len(t, resources, 1)
	assert.Equal(t, "kept", resources[0].Name)
}

func TestDeclaredResources_MissingChain(t *testing.T) {
	cases := map[string]string{
		"no spec":             "kind: Pipeline\n",
		"no resources":        "spec:\n  tasks: []\n",
		"resources not a seq": "spec:\n  resources: oops\n",
	}

	for name, source := range cases {
		t.Run(name, func(t *testing.T) {
			resources := DeclaredResources(RootMapping(parseDoc(t, source)))
			require.NotNil(t, resources)
			assert.Empty(t, resources)
		})
	}
}

func TestDeclaredResources_NilRoot(t *testing.T) {
	resources := DeclaredResources(nil)
	require.NotNil(t, resources)
	assert.Empty(t, resources)
}
