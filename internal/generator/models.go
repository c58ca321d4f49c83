package generator

type Generator struct {
	config Config
}

type Config struct {
	Title           string
	Version         string
	SecuritySchemes bool
}

type OpenAPISpec struct {
	OpenAPI    string      `json:"openapi" yaml:"openapi"`
	Info       Info        `json:"info" yaml:"info"`
	Paths      PathTable   `json:"paths" yaml:"paths"`
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`
}

type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Operation is the documentation entry for one (path, method) pair. Field
// order is the serialized order.
type Operation struct {
	Tags       []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary    string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Responses  map[string]Response   `json:"responses" yaml:"responses"`
	Security   []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
	Parameters []Parameter           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Schema   Schema `json:"schema" yaml:"schema"`
}

type Response struct {
	Description string `json:"description" yaml:"description"`
}

type Schema struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

type Components struct {
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Collision records a (path, method) pair declared more than once. The later
// declaration replaced the earlier one.
type Collision struct {
	Path           string
	Method         string
	PreviousSource string
	PreviousLine   int
	Source         string
	Line           int
}
