package parser

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

const (
	// DefaultMaxRefDepth is the maximum depth allowed for nested $ref resolution.
	// This prevents stack overflow from deeply nested (but non-circular) references.
	DefaultMaxRefDepth = 100
)

// RefResolver handles local $ref resolution in OpenAPI documents.
// A local ref is in the format: #/path/to/component
//
// Resolution replaces each ref node with a deep copy of the referenced
// subtree. Circular references are left in place as $ref pointers and flagged
// via HasCircularRefs.
type RefResolver struct {
	// root is the document being resolved; set by ResolveAllRefs
	root map[string]any
	// resolving tracks refs currently being expanded in the recursion stack
	resolving map[string]bool
	// resolved caches fully expanded subtrees by ref string
	resolved map[string]any
	// hasCircularRefs is set when a circular reference is detected
	hasCircularRefs bool
	// maxDepth caps nested resolution depth
	maxDepth int
}

// NewRefResolver creates a new reference resolver.
// A maxDepth of 0 uses DefaultMaxRefDepth.
func NewRefResolver(maxDepth int) *RefResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	return &RefResolver{
		resolving: make(map[string]bool),
		resolved:  make(map[string]any),
		maxDepth:  maxDepth,
	}
}

// HasCircularRefs returns true if circular references were detected during resolution.
func (r *RefResolver) HasCircularRefs() bool {
	return r.hasCircularRefs
}

// ResolveAllRefs expands every local $ref in doc in place.
// Refs pointing outside the document (files, URLs) are left untouched; this
// resolver is deliberately scoped to a single already-materialized document.
func (r *RefResolver) ResolveAllRefs(doc map[string]any) error {
	r.root = doc
	_, err := r.resolveValue(doc, 0)
	return err
}

// resolveValue walks a value, expanding refs. Returns the (possibly replaced) value.
func (r *RefResolver) resolveValue(value any, depth int) (any, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("parser: maximum ref depth %d exceeded", r.maxDepth)
	}

	switch v := value.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok && strings.HasPrefix(ref, "#/") {
			return r.expandRef(ref, v, depth)
		}
		for key, child := range v {
			resolved, err := r.resolveValue(child, depth+1)
			if err != nil {
				return nil, err
			}
			v[key] = resolved
		}
		return v, nil

	case []any:
		for i, child := range v {
			resolved, err := r.resolveValue(child, depth+1)
			if err != nil {
				return nil, err
			}
			v[i] = resolved
		}
		return v, nil

	default:
		return value, nil
	}
}

// expandRef replaces a {"$ref": "#/..."} node with a deep copy of its target.
// The original node is returned unchanged when the ref is circular or the
// target does not exist (missing targets are not this layer's error to report).
func (r *RefResolver) expandRef(ref string, node map[string]any, depth int) (any, error) {
	if cached, ok := r.resolved[ref]; ok {
		return deepCopyValue(cached), nil
	}

	if r.resolving[ref] {
		r.hasCircularRefs = true
		return node, nil
	}

	target, ok := r.lookupPointer(ref)
	if !ok {
		return node, nil
	}

	r.resolving[ref] = true
	defer delete(r.resolving, ref)

	expanded, err := r.resolveValue(deepCopyValue(target), depth+1)
	if err != nil {
		return nil, err
	}

	// Cache only fully expanded, non-circular targets.
	if !r.hasCircularRefs {
		r.resolved[ref] = expanded
	}
	return deepCopyValue(expanded), nil
}

// lookupPointer resolves a "#/a/b/c" ref against the document root.
// Pointer tokens use RFC 6901 escaping (~0 for '~', ~1 for '/').
func (r *RefResolver) lookupPointer(ref string) (any, bool) {
	path := strings.TrimPrefix(ref, "#/")
	if path == "" {
		return nil, false
	}

	var current any = r.root
	for _, token := range strings.Split(path, "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")

		switch node := current.(type) {
		case map[string]any:
			next, ok := node[token]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// deepCopyValue returns a structural copy of a parsed YAML/JSON value so that
// expanded ref targets do not alias the original definition subtree.
func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[key] = deepCopyValue(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = deepCopyValue(child)
		}
		return out
	default:
		return value
	}
}

// ResolveDocument re-runs local ref resolution over an already-typed OAS 3.x
// document. The document is round-tripped through its raw map form, resolved,
// and decoded back. Used after dialect conversion, which rewrites refs to the
// #/components/... namespace.
//
// Resolution here is a best-effort enrichment: any panic out of the underlying
// resolution routine is caught and reported as an error so callers can degrade
// to the unresolved tree.
func ResolveDocument(doc *OAS3Document, maxDepth int) (resolved *OAS3Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resolved = nil
			err = fmt.Errorf("parser: ref resolution panicked: %v", rec)
		}
	}()

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document for resolution: %w", err)
	}

	var rawData map[string]any
	if err := yaml.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("parser: failed to re-parse document for resolution: %w", err)
	}

	resolver := NewRefResolver(maxDepth)
	if err := resolver.ResolveAllRefs(rawData); err != nil {
		return nil, err
	}

	resolvedData, err := yaml.Marshal(rawData)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal resolved data: %w", err)
	}

	var out OAS3Document
	if err := yaml.Unmarshal(resolvedData, &out); err != nil {
		return nil, fmt.Errorf("parser: failed to decode resolved document: %w", err)
	}
	out.OASVersion = doc.OASVersion
	return &out, nil
}
