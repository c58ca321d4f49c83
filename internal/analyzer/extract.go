package analyzer

import (
	"regexp"
	"strings"
)

// declarationPattern is the whole accepted grammar:
//
//	declaration := "router.route(" quote path quote ")." method
//	quote       := "'" | '"'
//	path        := one or more characters other than ' and "
//	method      := one or more of [a-z]
//
// The opening and closing quotes need not match. Only the first method
// chained after route(...) is captured; declarations split across lines or
// written in any other call style are not recognized.
var declarationPattern = regexp.MustCompile(`router\.route\(['"]([^'"]+)['"]\)\.([a-z]+)`)

// ExtractDeclarations returns every route declaration in src, in source order.
func ExtractDeclarations(src string) []Declaration {
	matches := declarationPattern.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	decls := make([]Declaration, 0, len(matches))
	line, scanned := 1, 0
	for _, m := range matches {
		line += strings.Count(src[scanned:m[0]], "\n")
		scanned = m[0]
		decls = append(decls, Declaration{
			RawPath: src[m[2]:m[3]],
			Method:  src[m[4]:m[5]],
			Line:    line,
		})
	}
	return decls
}
