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
	"strings"

	"github.com/AleutianAI/tektonlens/services/pipeline_lens/ast"
)

// KeyMatch selects how mapping keys are compared during lookup.
type KeyMatch int

const (
	// MatchExact compares keys byte for byte. This is the default used
	// everywhere in this package.
	MatchExact KeyMatch = iota

	// MatchIgnoreCase compares keys with Unicode case folding.
	MatchIgnoreCase
)

// FindChildByKey returns the value node of the first pair in mapping whose
// key literal equals key exactly.
//
// The lookup is first-match: a later duplicate key is shadowed by the
// earlier one, preserving document order. Returns nil when mapping is nil
// or not a Mapping, when key is empty, or when no pair matches. Note that
// a matched pair may still carry a nil value (a key typed with no value
// yet), which is also reported as nil.
func FindChildByKey(mapping *ast.Node, key string) *ast.Node {
	if mapping == nil || mapping.Kind != ast.KindMapping || key == "" {
		return nil
	}
	for _, pair := range mapping.Pairs {
		if pair.Key == nil || pair.Key.Kind != ast.KindScalar {
			continue
		}
		if pair.Key.Value == key {
			return pair.Value
		}
	}
	return nil
}

// ReadScalarValue returns the literal of the scalar stored under key in
// mapping.
//
// Like FindChildByKey the lookup is first-match in document order, but the
// key comparison honors match and the literal is returned only when the
// matched value node is a Scalar. A first match whose value is absent or
// not a Scalar yields ("", false); later duplicates stay shadowed.
func ReadScalarValue(mapping *ast.Node, key string, match KeyMatch) (string, bool) {
	if mapping == nil || mapping.Kind != ast.KindMapping || key == "" {
		return "", false
	}
	for _, pair := range mapping.Pairs {
		if pair.Key == nil || pair.Key.Kind != ast.KindScalar {
			continue
		}
		if !keysEqual(pair.Key.Value, key, match) {
			continue
		}
		if pair.Value == nil || pair.Value.Kind != ast.KindScalar {
			return "", false
		}
		return pair.Value.Value, true
	}
	return "", false
}

func keysEqual(a, b string, match KeyMatch) bool {
	if match == MatchIgnoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
