package generator

import (
	"fmt"
	"strings"

	"github.com/Aman-s12345/swagger-sync/internal/analyzer"
)

// ValidatePathParameters checks that every operation declares one required
// path parameter per {name} placeholder of its path, and no others.
func ValidatePathParameters(spec *OpenAPISpec) error {
	var problems []string
	for _, path := range spec.Paths.Paths() {
		item, _ := spec.Paths.Item(path)
		expected := analyzer.PathParams(path)
		for _, method := range item.Methods() {
			if err := validateOperationParameters(item.Operation(method), expected); err != nil {
				problems = append(problems, fmt.Sprintf("%s %s: %v", method, path, err))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("path parameter mismatch: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validateOperationParameters(operation *Operation, pathParams []string) error {
	expectedParams := make(map[string]int, len(pathParams))
	for _, name := range pathParams {
		expectedParams[name]++
	}

	declared := make(map[string]int)
	for _, param := range operation.Parameters {
		if param.In != "path" {
			continue
		}
		if expectedParams[param.Name] == 0 {
			return fmt.Errorf("unexpected path parameter %q", param.Name)
		}
		if !param.Required {
			return fmt.Errorf("path parameter %q is not required", param.Name)
		}
		declared[param.Name]++
	}

	for name, want := range expectedParams {
		if declared[name] != want {
			return fmt.Errorf("path parameter %q declared %d times, want %d", name, declared[name], want)
		}
	}
	return nil
}
