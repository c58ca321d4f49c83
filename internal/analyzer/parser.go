package analyzer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sourceFiles lists the files under root carrying the source extension, in
// lexical walk order. A root that does not exist has no files.
func (a *Analyzer) sourceFiles() ([]string, error) {
	if _, err := os.Stat(a.routesPath); errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("routes directory not found", "root", a.routesPath)
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(a.routesPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), a.sourceExt) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
