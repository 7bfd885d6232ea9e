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

// twoDocumentSource holds a Pipeline document followed by a document with a
// foreign apiVersion that every query must ignore.
const twoDocumentSource = `apiVersion: tekton.dev/v1alpha1
kind: Pipeline
metadata:
  name: build-and-deploy
spec:
  tasks:
    - name: build
      taskRef:
        name: build-task
    - name: deploy
      taskRef:
        name: deploy-task
      runAfter:
        - build
---
apiVersion: tekton.dev/v1beta1
kind: Pipeline
spec:
  tasks:
    - name: ignored
      taskRef:
        name: ignored-task
`

func TestDocumentsOfKind(t *testing.T) {
	stream := parseStream(t, twoDocumentSource)

	pipelines := DocumentsOfKind(stream, KindPipeline)
	require.Len(t, pipelines, 1)

	name, ok := MetadataName(pipelines[0])
	require.True(t, ok)
	assert.Equal(t, "build-and-deploy", name)

	assert.Empty(t, DocumentsOfKind(stream, KindTask))
}

func TestPipelineTaskNames_EndToEnd(t *testing.T) {
	stream := parseStream(t, twoDocumentSource)

	assert.Equal(t, []string{"build", "deploy"}, PipelineTaskNames(stream))
}

func TestPipelineTaskRefNames_EndToEnd(t *testing.T) {
	stream := parseStream(t, twoDocumentSource)

	assert.Equal(t, []string{"build-task", "deploy-task"}, PipelineTaskRefNames(stream))
}

func TestPipelineTasks_EndToEnd(t *testing.T) {
	stream := parseStream(t, twoDocumentSource)

	pipelines := DocumentsOfKind(stream, KindPipeline)
	require.Len(t, pipelines, 1)

	tasks := PipelineTasks(pipelines[0])
	require.Len(t, tasks, 2)
	assert.Equal(t, []string{"build"}, tasks[1].RunAfter)
}

func TestAllPipelineTasks_StreamOrder(t *testing.T) {
	stream := parseStream(t, `apiVersion: tekton.dev/v1alpha1
kind: Pipeline
spec:
  tasks:
    - name: first
---
apiVersion: tekton.dev/v1alpha1
kind: Pipeline
spec:
  tasks:
    - name: second
`)

	tasks := AllPipelineTasks(stream)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Name)
	assert.Equal(t, "second", tasks[1].Name)
}

func TestAllDeclaredResources_IgnoresForeignDocuments(t *testing.T) {
	stream := parseStream(t, `apiVersion: tekton.dev/v1alpha1
kind: Pipeline
spec:
  resources:
    - name: source-repo
      type: git
---
apiVersion: apps/v1
kind: Pipeline
spec:
  resources:
    - name: ignored
      type: git
`)

	resources := AllDeclaredResources(stream)
	require.Len(t, resources, 1)
	assert.Equal(t, "source-repo", resources[0].Name)
}

func TestQueries_NilAndEmptyStream(t *testing.T) {
	assert.Empty(t, DocumentsOfKind(nil, KindPipeline))
	assert.Empty(t, AllPipelineTasks(nil))
	assert.Empty(t, PipelineTaskNames(nil))

	empty := parseStream(t, "")
	assert.Empty(t, DocumentsOfKind(empty, KindPipeline))
}
