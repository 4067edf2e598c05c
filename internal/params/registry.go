// SPDX-License-Identifier: MPL-2.0

package params

import (
	"strconv"
	"strings"
)

// aliases maps the short type names accepted in command declarations to
// catalog entries. Keys are compared after lowercasing and trimming.
var aliases = map[string]Type{
	"":          StringType{},
	"str":       StringType{},
	"string":    StringType{},
	"int":       IntType{},
	"float":     FloatType{},
	"bool":      BoolType{},
	"flag":      BoolType{},
	"email":     EmailType{},
	"uuid":      UUIDType{},
	"url":       URLType{},
	"json":      JSONType{},
	"port":      NewPortType(),
	"path":      NewPathType(),
	"filepath":  NewPathType(),
	"dir":       DirectoryType{},
	"directory": DirectoryType{},
	"file":      FileType{},
}

// Lookup returns the type registered for the given alias. An alias may
// carry a parameter after a colon to configure the constrained types:
//
//	file:.csv           file with a required extension
//	choice:dev|staging  one of a fixed option set
//	port:1024-49151     port within a narrowed range
func Lookup(alias string) (Type, bool) {
	base, param, hasParam := strings.Cut(alias, ":")
	base = normalize(base)
	if !hasParam {
		t, ok := aliases[base]
		return t, ok
	}
	return parameterized(base, strings.TrimSpace(param))
}

// parameterized builds a configured type from an alias parameter. The
// option list keeps its spelling: ChoiceType returns the canonical option,
// so lowercasing here would corrupt the converted value.
func parameterized(base, param string) (Type, bool) {
	switch base {
	case "file":
		if param == "" {
			return FileType{}, true
		}
		if !strings.HasPrefix(param, ".") {
			param = "." + param
		}
		return FileType{Extension: param}, true

	case "choice":
		var options []string
		for _, opt := range strings.Split(param, "|") {
			if opt = strings.TrimSpace(opt); opt != "" {
				options = append(options, opt)
			}
		}
		if len(options) == 0 {
			return nil, false
		}
		return ChoiceType{Options: options}, true

	case "port":
		lo, hi, ok := strings.Cut(param, "-")
		if !ok {
			return nil, false
		}
		min, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, false
		}
		max, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil || min > max {
			return nil, false
		}
		return PortType{Min: min, Max: max}, true
	}

	return nil, false
}

// Resolve returns the type for the given alias, falling back to the plain
// string type for unknown aliases so declarations degrade instead of
// failing outright.
func Resolve(alias string) Type {
	if t, ok := Lookup(alias); ok {
		return t
	}
	return StringType{}
}

// IsBool reports whether the alias resolves to a boolean (flag) type.
func IsBool(alias string) bool {
	_, ok := Resolve(alias).(BoolType)
	return ok
}

func normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
