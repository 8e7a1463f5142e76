// Package tablefsa provides table-to-Go code generation functionality.
// It compiles transition table specifications into standalone Go matcher
// functions at build time.
package tablefsa

import (
	"fmt"

	"github.com/tablefsa/tablefsa/internal/codegen"
	"github.com/tablefsa/tablefsa/pkg/fsa"
)

// Options configures the table compilation process.
type Options struct {
	// TableFile is the path of the transition table specification to compile
	TableFile string

	// Name is the prefix for generated function names (e.g., "Sample" generates "SampleProcessString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file asserting the matcher against the interpreted table (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of sample inputs for the generated test file
	TestFileInputs []string

	// Verbose enables logging of generation decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.TableFile == "" {
		return fmt.Errorf("table file cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles the transition table at Options.TableFile into Go
// source. It returns an error if the table cannot be loaded, describes no
// states, or code generation fails.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	automaton, err := fsa.Load(opts.TableFile)
	if err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}
	if automaton.NumStates() == 0 {
		return fmt.Errorf("table %s describes no states", opts.TableFile)
	}

	// A test file is implied when sample inputs are supplied.
	generateTestFile := opts.GenerateTestFile || len(opts.TestFileInputs) > 0

	g := codegen.New(codegen.Config{
		Automaton:        automaton,
		Name:             opts.Name,
		Package:          opts.Package,
		OutputFile:       opts.OutputFile,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   opts.TestFileInputs,
		Verbose:          opts.Verbose,
	})

	if err := g.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
