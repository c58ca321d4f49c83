package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAnalyzeUserRoutes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "userRoutes.js"), `
const router = require('express').Router();
router.route('/users/:id').get(getUser);
router.route('/users/:id').put(updateUser);
module.exports = router;
`)

	analysis, err := New(root, ".js", nil).Analyze()
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.FilesScanned)
	require.Len(t, analysis.Routes, 2)

	get := analysis.Routes[0]
	assert.Equal(t, "/users/{id}", get.Path)
	assert.Equal(t, "/users/:id", get.RawPath)
	assert.Equal(t, "get", get.Method)
	assert.Equal(t, []string{"User"}, get.Tags)
	assert.Equal(t, []Parameter{{Name: "id", In: "path", Required: true, Type: "string"}}, get.Parameters)
	assert.Equal(t, filepath.Join(root, "userRoutes.js"), get.SourceFile)
	assert.Equal(t, 3, get.SourceLine)

	assert.Equal(t, "put", analysis.Routes[1].Method)
	assert.Equal(t, 4, analysis.Routes[1].SourceLine)
}

func TestAnalyzeWalksNestedDirsInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "v2", "orderRoutes.js"), `router.route('/orders').post(create);`)
	writeFile(t, filepath.Join(root, "admin", "user.js"), `router.route('/admin/users').get(list);`)
	writeFile(t, filepath.Join(root, "README.md"), `router.route('/ignored').get(x);`)
	writeFile(t, filepath.Join(root, "health.js"), `module.exports = {};`)

	analysis, err := New(root, ".js", nil).Analyze()
	require.NoError(t, err)

	assert.Equal(t, 3, analysis.FilesScanned)
	require.Len(t, analysis.Routes, 2)
	assert.Equal(t, "/admin/users", analysis.Routes[0].Path)
	assert.Equal(t, []string{"User"}, analysis.Routes[0].Tags)
	assert.Equal(t, "/orders", analysis.Routes[1].Path)
	assert.Equal(t, []string{"Order"}, analysis.Routes[1].Tags)
	assert.Nil(t, analysis.Routes[1].Parameters)
}

func TestAnalyzeEmptyAndMissingRoot(t *testing.T) {
	analysis, err := New(t.TempDir(), ".js", nil).Analyze()
	require.NoError(t, err)
	assert.Empty(t, analysis.Routes)
	assert.Zero(t, analysis.FilesScanned)

	analysis, err = New(filepath.Join(t.TempDir(), "routes"), ".js", nil).Analyze()
	require.NoError(t, err)
	assert.Empty(t, analysis.Routes)
}

func TestAnalyzeUnreadableFileAborts(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	root := t.TempDir()
	path := filepath.Join(root, "secretRoutes.js")
	writeFile(t, path, `router.route('/s').get(s);`)
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	_, err := New(root, ".js", nil).Analyze()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretRoutes.js")
}
