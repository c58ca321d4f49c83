package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aman-s12345/swagger-sync/internal/logging"
)

func (a *Analyzer) parseRoutes(analysis *Analysis) error {
	routeFiles, err := a.sourceFiles()
	if err != nil {
		return err
	}

	for _, routeFile := range routeFiles {
		if err := a.parseRouteFile(routeFile, analysis); err != nil {
			return fmt.Errorf("failed to parse route file %s: %w", routeFile, err)
		}
		analysis.FilesScanned++
	}
	return nil
}

func (a *Analyzer) parseRouteFile(filePath string, analysis *Analysis) error {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	tag := TagFromFilename(filepath.Base(filePath), a.sourceExt)

	for _, decl := range ExtractDeclarations(string(src)) {
		route := buildRoute(decl, tag)
		route.SourceFile = filePath
		analysis.Routes = append(analysis.Routes, route)

		a.logger.Log(context.Background(), logging.LevelTrace, "route declaration",
			"file", filePath,
			"line", decl.Line,
			"method", decl.Method,
			"path", route.Path)
	}
	return nil
}

func buildRoute(decl Declaration, tag string) Route {
	path := NormalizePath(decl.RawPath)
	route := Route{
		Path:       path,
		RawPath:    decl.RawPath,
		Method:     decl.Method,
		Tags:       []string{tag},
		SourceLine: decl.Line,
	}

	for _, name := range PathParams(path) {
		route.Parameters = append(route.Parameters, Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Type:     "string",
		})
	}
	return route
}
