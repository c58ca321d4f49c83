package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	colonParam = regexp.MustCompile(`:([a-zA-Z0-9_]+)`)
	braceParam = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)
)

// NormalizePath rewrites every :name placeholder as {name}.
func NormalizePath(raw string) string {
	return colonParam.ReplaceAllString(raw, "{$1}")
}

// PathParams returns the names of the {name} placeholders in path, in order.
func PathParams(path string) []string {
	matches := braceParam.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}
	return names
}

// TagFromFilename derives the grouping tag from a route file's base name:
// userRoutes.js and user.js both give "User".
func TagFromFilename(base, ext string) string {
	name := strings.ReplaceAll(base, "Routes"+ext, "")
	name = strings.ReplaceAll(name, ext, "")
	return Capitalize(name)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
