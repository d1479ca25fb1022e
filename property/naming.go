package property

import (
	"fmt"
	"strings"
	"unicode"
)

// ReservedMarker starts property names that are never exposed, whatever
// accessor or field they come from.
const ReservedMarker = '$'

// Prefix predicates accept both camelCase ("getName") and exported Go
// style ("GetName") spellings of the accessor convention.

// IsGetter reports whether name follows the getter naming convention:
// a "get" prefix with a non-empty remainder, or an "is" prefix for
// boolean-style accessors.
func IsGetter(name string) bool {
	return hasAccessorPrefix(name, "get") || hasAccessorPrefix(name, "is")
}

// IsSetter reports whether name follows the setter naming convention:
// a "set" prefix with a non-empty remainder.
func IsSetter(name string) bool {
	return hasAccessorPrefix(name, "set")
}

// IsAccessor reports whether name follows either accessor convention.
func IsAccessor(name string) bool {
	return IsGetter(name) || IsSetter(name)
}

// NameFromAccessor derives the property name implied by an accessor method
// name. The prefix is stripped and the remainder decapitalized, keeping
// leading acronyms intact ("getURL" -> "URL", "getName" -> "name").
func NameFromAccessor(name string) (string, error) {
	switch {
	case hasAccessorPrefix(name, "is"):
		name = name[2:]
	case hasAccessorPrefix(name, "get"), hasAccessorPrefix(name, "set"):
		name = name[3:]
	default:
		return "", fmt.Errorf("method %q does not follow the get/set/is accessor convention", name)
	}

	return decapitalize(name), nil
}

// IsValidName reports whether name may be exposed as a property. Names
// starting with the reserved marker and the reserved identifiers "class"
// and "serialVersionUID" are never valid.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	return name[0] != ReservedMarker && name != "serialVersionUID" && name != "class"
}

// hasAccessorPrefix matches prefix case-insensitively and requires a
// non-empty remainder, so "get" alone is not a getter.
func hasAccessorPrefix(name, prefix string) bool {
	return len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix)
}

// decapitalize lowercases the first rune unless the second rune is already
// uppercase, which preserves acronyms like "URL" or "SKU".
func decapitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	if len(runes) > 1 && unicode.IsUpper(runes[1]) {
		return s
	}

	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}
