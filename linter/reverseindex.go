package linter

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ReverseIndex maps node identity to the JSON Pointer at which the node was
// first reached during a single traversal of a document tree.
//
// Identity is reference identity, not structural equality: two structurally
// identical nodes at different coordinates resolve to different entries. Only
// pointer-, map-, and slice-typed nodes are identity-addressable; scalars are
// reached through the facade's recorded pointer instead.
//
// The index is built once and read-only thereafter. Traversal is cycle-safe:
// a node already assigned a pointer is not revisited, which also makes path
// assignment deterministic for shared substructure introduced by $ref
// expansion (first visit wins, and map keys are walked in sorted order).
type ReverseIndex struct {
	pointers map[uintptr]string
	// root retains the tree so the handles above stay valid for the lifetime
	// of the index
	root any
}

// NewReverseIndex builds a ReverseIndex over the given tree root.
func NewReverseIndex(root any) *ReverseIndex {
	idx := &ReverseIndex{
		pointers: make(map[uintptr]string),
		root:     root,
	}
	idx.visit(reflect.ValueOf(root), "")
	return idx
}

// Lookup returns the pointer recorded for a node and whether the node was
// present in the indexed tree.
func (idx *ReverseIndex) Lookup(node any) (string, bool) {
	if idx == nil || node == nil {
		return "", false
	}
	v := reflect.ValueOf(node)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return "", false
		}
		pointer, ok := idx.pointers[v.Pointer()]
		return pointer, ok
	default:
		return "", false
	}
}

// Len returns the number of indexed nodes.
func (idx *ReverseIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.pointers)
}

func (idx *ReverseIndex) visit(v reflect.Value, pointer string) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		handle := v.Pointer()
		if _, seen := idx.pointers[handle]; seen {
			return
		}
		idx.pointers[handle] = pointer
		idx.visit(v.Elem(), pointer)

	case reflect.Interface:
		if v.IsNil() {
			return
		}
		idx.visit(v.Elem(), pointer)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, inline, ok := yamlFieldName(field)
			if !ok {
				continue
			}
			if inline {
				// Inline maps merge into the parent document object, so
				// their entries are addressed directly under the parent
				// pointer (a responses object's "200" lands at .../200).
				idx.visit(v.Field(i), pointer)
				continue
			}
			idx.visit(v.Field(i), pointer+"/"+EscapePointerToken(name))
		}

	case reflect.Map:
		if v.IsNil() || v.Type().Key().Kind() != reflect.String {
			return
		}
		handle := v.Pointer()
		if _, seen := idx.pointers[handle]; seen {
			return
		}
		idx.pointers[handle] = pointer
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		for _, key := range keys {
			idx.visit(v.MapIndex(reflect.ValueOf(key)), pointer+"/"+EscapePointerToken(key))
		}

	case reflect.Slice:
		if v.IsNil() {
			return
		}
		handle := v.Pointer()
		if _, seen := idx.pointers[handle]; seen {
			return
		}
		idx.pointers[handle] = pointer
		for i := 0; i < v.Len(); i++ {
			idx.visit(v.Index(i), pointer+"/"+strconv.Itoa(i))
		}

	default:
		// Scalars are not identity-addressable; nothing to record.
	}
}

// yamlFieldName returns the document field name for a struct field, whether
// the field is inlined into its parent object, and whether it participates
// in indexing at all. Fields tagged yaml:"-" are excluded, as are the
// model's Extra vendor-extension maps: extension payloads are opaque in both
// dialects and not meaningfully path-addressable. Other inline fields are
// real document content (the status-code map of a responses object) and
// stay indexed.
func yamlFieldName(field reflect.StructField) (name string, inline, ok bool) {
	tag := field.Tag.Get("yaml")
	if tag == "" {
		return field.Name, false, true
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return "", false, false
	}
	for _, opt := range parts[1:] {
		if opt == "inline" {
			if field.Name == "Extra" {
				return "", false, false
			}
			return "", true, true
		}
	}
	if parts[0] == "" {
		return field.Name, false, true
	}
	return parts[0], false, true
}
