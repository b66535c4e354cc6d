package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	absDir, _ := filepath.Abs(dir)
	assert.Equal(t, absDir, d.Path())
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	_, err := NewOSFileSystem().Open(filepath.Join(t.TempDir(), "nonexistent"))
	assert.Error(t, err)
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "file.graphql")
	require.NoError(t, os.WriteFile(filePath, []byte("{ a }"), 0644))

	_, err := NewOSFileSystem().Open(filePath)
	assert.ErrorContains(t, err, "not a directory")
}

func TestOSFileSystem_Walk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "users"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "users", "get.graphql"), []byte("{ user }"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "root.graphql"), []byte("{ root }"), 0644))

	dir, err := NewOSFileSystem().Open(root)
	require.NoError(t, err)

	files, dirs := walkPaths(t, dir)
	assert.Equal(t, []string{"root.graphql", "users/get.graphql"}, files)
	assert.Equal(t, []string{".", "users"}, dirs)

	var content []byte
	err = dir.Walk(func(file File, err error) error {
		if file.RelativePath() == "users/get.graphql" {
			content, err = file.ReadContent()
		}
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "{ user }", string(content))
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "q.graphql")
	require.NoError(t, os.WriteFile(filePath, []byte("{ q }"), 0644))

	content, err := NewOSFileSystem().ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "{ q }", string(content))
}
