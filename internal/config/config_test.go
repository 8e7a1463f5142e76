package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configData = `

log_level = debug
table = "testdata/table1.txt"

# strings to run through the table
inputs : [ "abbc", "abba", "b" ]

codegen {
  out     : "gen/sample.go"
  package : sample
  name    : Sample
  test_inputs : [ "abbc" ]
}
`

func TestLoad(t *testing.T) {
	c, err := Load(configData)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "testdata/table1.txt", c.Table)
	assert.Equal(t, []string{"abbc", "abba", "b"}, c.Inputs)

	require.NotNil(t, c.Codegen)
	assert.Equal(t, "gen/sample.go", c.Codegen.Out)
	assert.Equal(t, "sample", c.Codegen.Package)
	assert.Equal(t, "Sample", c.Codegen.Name)
	assert.Equal(t, []string{"abbc"}, c.Codegen.TestInputs)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TABLEFSA_TABLE", "env/table.txt")

	c, err := Load(`table = "$TABLEFSA_TABLE"`)
	require.NoError(t, err)
	assert.Equal(t, "env/table.txt", c.Table)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.conf")
	require.NoError(t, os.WriteFile(path, []byte(configData), 0644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/table1.txt", c.Table)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "no-such.conf"))
	require.Error(t, err)
}

func TestLoadBadSyntax(t *testing.T) {
	_, err := Load(`inputs : [ unterminated`)
	require.Error(t, err)
}
