package manifest

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pqhash/internal/files/scanner"
	"github.com/vvka-141/pqhash/pkg/pqhash"
)

const (
	abcSHA256   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func sampleQueries() []scanner.QueryFile {
	return []scanner.QueryFile{
		{Path: "z/abc.graphql", Body: "abc", Hash: abcSHA256},
		{Path: "empty.graphql", Body: "", Hash: emptySHA256},
		{Path: "a/abc-copy.graphql", Body: "abc", Hash: abcSHA256},
	}
}

func TestBuild(t *testing.T) {
	m, err := Build(sampleQueries())
	require.NoError(t, err)

	assert.Equal(t, Format, m.Format)
	assert.Equal(t, Version, m.Version)
	require.Len(t, m.Operations, 2)

	assert.Equal(t, abcSHA256, m.Operations[0].ID)
	assert.Equal(t, "a/abc-copy.graphql", m.Operations[0].Path, "duplicates keep the lexically first path")
	assert.Equal(t, emptySHA256, m.Operations[1].ID)
}

func TestBuild_Empty(t *testing.T) {
	m, err := Build(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Operations)
	assert.NotNil(t, m.Operations)
}

func TestBuild_MissingDigest(t *testing.T) {
	_, err := Build([]scanner.QueryFile{{Path: "q.graphql", Body: "{ q }"}})
	assert.ErrorIs(t, err, pqhash.ErrDigestFailed)
	assert.ErrorContains(t, err, "q.graphql")
}

func TestManifest_Lookup(t *testing.T) {
	m, err := Build(sampleQueries())
	require.NoError(t, err)

	body, ok := m.Lookup(abcSHA256)
	assert.True(t, ok)
	assert.Equal(t, "abc", body)

	_, ok = m.Lookup("0000")
	assert.False(t, ok)
}

func TestWrite_JSON(t *testing.T) {
	m, err := Build(sampleQueries())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "json"))

	var decoded Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *m, decoded)
	assert.Contains(t, buf.String(), `"format": "apollo-persisted-query-manifest"`)
}

func TestWrite_YAML(t *testing.T) {
	m, err := Build(sampleQueries())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, "yaml"))

	var decoded Manifest
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *m, decoded)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &Manifest{}, "toml")
	assert.ErrorIs(t, err, pqhash.ErrInvalidConfig)
}
