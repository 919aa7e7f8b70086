package factory

import (
	"regexp"
	"strings"
)

// Suffix is stripped from type names when deriving tags.
const Suffix = "Factory"

var (
	firstCap = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCap   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// TagFor derives the registry tag of a type name.
func TagFor(typeName string) string {
	return ToSnakeCase(strings.TrimSuffix(typeName, Suffix))
}

// ToSnakeCase converts CapitalizedWords to lower_snake_case. Runs of capitals
// are kept together: "DeepIV" becomes "deep_iv", "HTTPServer" "http_server".
func ToSnakeCase(s string) string {
	s = firstCap.ReplaceAllString(s, "${1}_${2}")
	s = allCap.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
