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

// DeclaredResource is a name/type pair declared under a Pipeline's
// spec.resources. Either field may be empty when the entry omits it.
type DeclaredResource struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// DeclaredResources walks root's spec.resources sequence into declared
// resources, in source order.
//
// root is the root mapping of a document already classified as Pipeline
// (classification is the caller's responsibility). Sequence items that are
// not mappings, or that carry neither a name nor a type key, contribute
// nothing; an item with only one of the two still produces a record with
// the other field empty. A missing spec or resources node yields an empty
// slice, never an error.
func DeclaredResources(root *ast.Node) []DeclaredResource {
	resources := make([]DeclaredResource, 0)

	spec := FindChildByKey(root, "spec")
	seq := FindChildByKey(spec, "resources")
	if seq == nil || seq.Kind != ast.KindSequence {
		return resources
	}

	for _, item := range seq.Items {
		if item == nil || item.Kind != ast.KindMapping {
			continue
		}
		var res DeclaredResource
		found := false
		for _, pair := range item.Pairs {
			if pair.Key == nil || pair.Key.Kind != ast.KindScalar {
				continue
			}
			if pair.Value == nil || pair.Value.Kind != ast.KindScalar {
				continue
			}
			switch pair.Key.Value {
			case "name":
				res.Name = pair.Value.Value
				found = true
			case "type":
				res.Type = pair.Value.Value
				found = true
			}
		}
		if found {
			resources = append(resources, res)
		}
	}
	return resources
}
