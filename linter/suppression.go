package linter

import (
	"strconv"

	"golang.org/x/text/cases"
)

// SuppressionExtension is the vendor extension key carrying lint suppression
// directives. Its value is either a single rule identifier or a list of them.
const SuppressionExtension = "x-lint-ignore"

var foldCaser = cases.Fold()

// suppressionLookup answers "is rule X suppressed at pointer P" over the raw
// submitted document. Directives apply to the node that carries them and to
// everything beneath it, so the lookup collects directives at the root and at
// every node along the pointer path.
//
// The raw tree is used rather than the typed model: suppressions must work in
// the coordinate space of the document the author wrote, before any dialect
// conversion, and only for the submitted dialect's addressing.
type suppressionLookup struct {
	root map[string]any
}

func newSuppressionLookup(root map[string]any) suppressionLookup {
	return suppressionLookup{root: root}
}

// IsSuppressed reports whether ruleID is named by a suppression directive at
// the given pointer or any of its ancestors. Rule identifier comparison is
// case-insensitive.
func (s suppressionLookup) IsSuppressed(pointer, ruleID string) bool {
	if s.root == nil || ruleID == "" {
		return false
	}
	folded := foldCaser.String(ruleID)
	var node any = s.root
	if nodeSuppresses(node, folded) {
		return true
	}
	for _, token := range SplitPointer(pointer) {
		switch typed := node.(type) {
		case map[string]any:
			child, ok := typed[token]
			if !ok {
				return false
			}
			node = child
		case []any:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(typed) {
				return false
			}
			node = typed[i]
		default:
			return false
		}
		if nodeSuppresses(node, folded) {
			return true
		}
	}
	return false
}

// nodeSuppresses reports whether the node carries a suppression directive
// naming the (already case-folded) rule identifier.
func nodeSuppresses(node any, foldedRuleID string) bool {
	m, ok := node.(map[string]any)
	if !ok {
		return false
	}
	directive, ok := m[SuppressionExtension]
	if !ok {
		return false
	}
	switch typed := directive.(type) {
	case string:
		return foldCaser.String(typed) == foldedRuleID
	case []any:
		for _, entry := range typed {
			if id, ok := entry.(string); ok && foldCaser.String(id) == foldedRuleID {
				return true
			}
		}
	}
	return false
}
