package generator

import (
	"fmt"

	"github.com/Aman-s12345/swagger-sync/internal/analyzer"
)

const (
	OpenAPIVersion     = "3.0.0"
	bearerSecurityName = "bearerAuth"
)

func New(config Config) *Generator {
	return &Generator{config: config}
}

// Generate builds the document for analysis. Routes are applied in order, so
// for a repeated (path, method) the last route wins; every replacement is
// returned as a Collision.
func (g *Generator) Generate(analysis *analyzer.Analysis) (*OpenAPISpec, []Collision) {
	spec := &OpenAPISpec{
		OpenAPI: OpenAPIVersion,
		Info: Info{
			Title:   g.config.Title,
			Version: g.config.Version,
		},
	}

	if g.config.SecuritySchemes {
		spec.Components = &Components{
			SecuritySchemes: map[string]SecurityScheme{
				bearerSecurityName: {
					Type:         "http",
					Scheme:       "bearer",
					BearerFormat: "JWT",
					Description:  "Authorization header using Bearer token",
				},
			},
		}
	}

	var collisions []Collision
	seen := make(map[string]analyzer.Route)

	for _, route := range analysis.Routes {
		key := route.Method + " " + route.Path
		if prev, ok := seen[key]; ok {
			collisions = append(collisions, Collision{
				Path:           route.Path,
				Method:         route.Method,
				PreviousSource: prev.SourceFile,
				PreviousLine:   prev.SourceLine,
				Source:         route.SourceFile,
				Line:           route.SourceLine,
			})
		}
		seen[key] = route

		spec.Paths.Set(route.Path, route.Method, g.generateOperation(route))
	}

	return spec, collisions
}

func (c Collision) String() string {
	return fmt.Sprintf("%s %s declared at %s:%d replaces %s:%d",
		c.Method, c.Path, c.Source, c.Line, c.PreviousSource, c.PreviousLine)
}
