package analyzer

type Analysis struct {
	Routes       []Route
	FilesScanned int
}

// Declaration is one textual route declaration found in a source file.
type Declaration struct {
	RawPath string
	Method  string // lowercase, as written
	Line    int    // 1-based
}

type Route struct {
	Path       string // normalized, e.g. /users/{id}
	RawPath    string // as declared, e.g. /users/:id
	Method     string
	Tags       []string
	Parameters []Parameter
	SourceFile string
	SourceLine int
}

type Parameter struct {
	Name     string
	In       string // always "path" for extracted routes
	Required bool
	Type     string
}
