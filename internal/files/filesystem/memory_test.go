package filesystem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkPaths(t *testing.T, dir Directory) (files, dirs []string) {
	t.Helper()
	err := dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if file.Info().IsDir() {
			dirs = append(dirs, file.RelativePath())
		} else {
			files = append(files, file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	return files, dirs
}

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/project/queries")
	mfs.AddFile("users/get.graphql", "query { user { id } }")
	mfs.AddFile("root.graphql", "{ a }")
	mfs.AddFile("users/list.gql", "{ users { id } }")

	dir, err := mfs.Open("/project/queries")
	require.NoError(t, err)

	files, dirs := walkPaths(t, dir)
	assert.Equal(t, []string{"root.graphql", "users/get.graphql", "users/list.gql"}, files)
	assert.Equal(t, []string{".", "users"}, dirs)
}

func TestMemoryFileSystem_OpenSubdirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a/b/c.graphql", "{ c }")
	mfs.AddFile("a/d.graphql", "{ d }")

	dir, err := mfs.Open("a/b")
	require.NoError(t, err)
	assert.Equal(t, "/project/a/b", dir.Path())

	files, _ := walkPaths(t, dir)
	assert.Equal(t, []string{"c.graphql"}, files)
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("q.graphql", "{ hero }")

	content, err := mfs.ReadFile("/project/q.graphql")
	require.NoError(t, err)
	assert.Equal(t, "{ hero }", string(content))

	content, err = mfs.ReadFile("q.graphql")
	require.NoError(t, err)
	assert.Equal(t, "{ hero }", string(content))
}

func TestMemoryFileSystem_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("dir/q.graphql", "{ a }")

	_, err := mfs.Open("missing")
	assert.ErrorContains(t, err, "directory not found")

	_, err = mfs.Open("dir/q.graphql")
	assert.ErrorContains(t, err, "not a directory")

	_, err = mfs.ReadFile("dir")
	assert.ErrorContains(t, err, "is a directory")

	_, err = mfs.ReadFile("nope.graphql")
	assert.ErrorContains(t, err, "file not found")
}

func TestMemoryFileSystem_WalkStopsOnError(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a.graphql", "{ a }")
	mfs.AddFile("b.graphql", "{ b }")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	stop := errors.New("stop")
	var visited int
	err = dir.Walk(func(file File, err error) error {
		visited++
		if file.RelativePath() == "a.graphql" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}

func TestMemoryFileSystem_WalkRecoversPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("a.graphql", "{ a }")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(File, error) error { panic("boom") })
	assert.ErrorContains(t, err, "walk callback panicked")
}
