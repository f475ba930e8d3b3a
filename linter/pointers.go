package linter

import "strings"

// EscapePointerToken escapes a single JSON Pointer reference token per
// RFC 6901: '~' becomes "~0" and '/' becomes "~1".
func EscapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// UnescapePointerToken reverses EscapePointerToken.
func UnescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}

// JoinPointer renders reference tokens as a JSON Pointer.
// JoinPointer() returns "" (the document root).
func JoinPointer(tokens ...string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, token := range tokens {
		b.WriteByte('/')
		b.WriteString(EscapePointerToken(token))
	}
	return b.String()
}

// SplitPointer splits a JSON Pointer into unescaped reference tokens.
// The empty pointer yields nil (the document root has no tokens).
func SplitPointer(pointer string) []string {
	if pointer == "" {
		return nil
	}
	raw := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	tokens := make([]string, len(raw))
	for i, token := range raw {
		tokens[i] = UnescapePointerToken(token)
	}
	return tokens
}

// legacySegmentRenames maps leading legacy-dialect (OAS 2.0) pointer segments
// to their current-dialect (OAS 3.x) replacements. Collections that were
// renamed or relocated across dialect versions are covered; everything under
// /paths shares its addressing between the dialects and needs no entry.
var legacySegmentRenames = map[string][]string{
	"definitions":         {"components", "schemas"},
	"parameters":          {"components", "parameters"},
	"responses":           {"components", "responses"},
	"securityDefinitions": {"components", "securitySchemes"},
	"basePath":            {"servers"},
	"host":                {"servers"},
	"schemes":             {"servers"},
}

// PointerFromLegacy translates a legacy-dialect pointer into the current
// dialect's addressing convention. Returns the translated pointer and true
// when the leading segment is covered by the renaming table; otherwise the
// pointer is returned unchanged with false, so callers still have a usable
// (if untranslated) coordinate.
func PointerFromLegacy(pointer string) (string, bool) {
	tokens := SplitPointer(pointer)
	if len(tokens) == 0 {
		return pointer, false
	}
	replacement, ok := legacySegmentRenames[tokens[0]]
	if !ok {
		return pointer, false
	}
	translated := make([]string, 0, len(replacement)+len(tokens)-1)
	translated = append(translated, replacement...)
	translated = append(translated, tokens[1:]...)
	return JoinPointer(translated...), true
}
