package parser

import "strings"

// OASVersion represents each canonical version of the OpenAPI Specification
// understood by this module.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301 OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302 OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311 OpenAPI Specification Version 3.1.1
	OASVersion311
)

var versionToString = map[OASVersion]string{
	OASVersion20:  "2.0",
	OASVersion300: "3.0.0",
	OASVersion301: "3.0.1",
	OASVersion302: "3.0.2",
	OASVersion303: "3.0.3",
	OASVersion310: "3.1.0",
	OASVersion311: "3.1.1",
}

var stringToVersion = func() map[string]OASVersion {
	m := make(map[string]OASVersion, len(versionToString))
	for k, v := range versionToString {
		m[v] = k
	}
	return m
}()

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a known OAS version.
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// IsV3 returns true for any OAS 3.x version.
func (v OASVersion) IsV3() bool {
	return v >= OASVersion300 && v <= OASVersion311
}

// ParseVersion parses a version string from a document's root discriminator
// field into an OASVersion. Unknown patch versions within a known 3.x series
// map to the highest known patch of that series, so documents declaring a
// future patch release still parse.
func ParseVersion(s string) (OASVersion, bool) {
	if v, ok := stringToVersion[s]; ok {
		return v, true
	}
	switch {
	case strings.HasPrefix(s, "3.0."):
		return OASVersion303, true
	case strings.HasPrefix(s, "3.1."):
		return OASVersion311, true
	}
	return Unknown, false
}
