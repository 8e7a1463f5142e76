package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablefsa/tablefsa/pkg/fsa"
)

func sampleAutomaton() *fsa.Automaton {
	return fsa.New(
		[]string{"a", "b", "c"},
		[][]int{
			{1, 2, 3},
			{0, 2, 3},
			{4, 2, 3},
			{4, 2, 3},
			{4, 4, 4},
		},
		[]int{2, 3},
	)
}

func TestGenerate(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "sample.go")

	g := New(Config{
		Automaton:  sampleAutomaton(),
		Name:       "Sample",
		Package:    "sample",
		OutputFile: outputFile,
	})
	require.NoError(t, g.Generate())

	src, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "package sample")
	assert.Contains(t, code, "DO NOT EDIT")
	assert.Contains(t, code, "func SampleNextState(currentState int, symbol string) int")
	assert.Contains(t, code, "func SampleProcessString(input string) bool")
	assert.Contains(t, code, `case "a":`)
	assert.Contains(t, code, "case 2, 3:")
	assert.Contains(t, code, "return currentState")
}

func TestGenerateTestFile(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "sample.go")

	g := New(Config{
		Automaton:        sampleAutomaton(),
		Name:             "Sample",
		Package:          "sample",
		OutputFile:       outputFile,
		GenerateTestFile: true,
		TestFileInputs:   []string{"abbc", "abba", ""},
	})
	require.NoError(t, g.Generate())

	src, err := os.ReadFile(filepath.Join(tmpDir, "sample_test.go"))
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "func TestSampleProcessString(t *testing.T)")
	// Expectations come from the interpreted automaton.
	assert.Contains(t, code, `{"abbc", true}`)
	assert.Contains(t, code, `{"abba", false}`)
	assert.Contains(t, code, `{"", false}`)
}

func TestGenerateDegenerate(t *testing.T) {
	g := New(Config{
		Automaton:  fsa.New(nil, nil, nil),
		Name:       "Empty",
		Package:    "sample",
		OutputFile: filepath.Join(t.TempDir(), "empty.go"),
	})

	err := g.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no states")
}

func TestGenerateEmptyAcceptSet(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "sample.go")

	g := New(Config{
		Automaton:  fsa.New([]string{"a"}, [][]int{{0}}, nil),
		Name:       "Never",
		Package:    "sample",
		OutputFile: outputFile,
	})
	require.NoError(t, g.Generate())

	src, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	// No accept states: the generated matcher simply rejects.
	assert.NotContains(t, string(src), "return true")
	assert.Contains(t, string(src), "return false")
}

func TestTestFilePath(t *testing.T) {
	assert.Equal(t, "sample_test.go", testFilePath("sample.go"))
	assert.Equal(t, filepath.Join("out", "m_test.go"), testFilePath(filepath.Join("out", "m.go")))
}
