package generator

import (
	"strings"

	"github.com/Aman-s12345/swagger-sync/internal/analyzer"
)

func (g *Generator) generateOperation(route analyzer.Route) *Operation {
	operation := &Operation{
		Tags:    route.Tags,
		Summary: g.generateSummary(route),
		Responses: map[string]Response{
			"200": {Description: "OK"},
		},
		Security: []map[string][]string{
			{bearerSecurityName: {}},
		},
	}

	for _, param := range route.Parameters {
		operation.Parameters = append(operation.Parameters, Parameter{
			Name:     param.Name,
			In:       param.In,
			Required: param.Required,
			Schema:   g.generateParameterSchema(param),
		})
	}

	return operation
}

// generateParameterSchema uses the parameter's declared type, string when unset.
func (g *Generator) generateParameterSchema(param analyzer.Parameter) Schema {
	if param.Type == "" {
		return Schema{Type: "string"}
	}
	return Schema{Type: param.Type}
}

func (g *Generator) generateSummary(route analyzer.Route) string {
	return strings.ToUpper(route.Method) + " " + route.Path
}
