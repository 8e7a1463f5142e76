package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/tablefsa/tablefsa/pkg/fsa"
)

// Config holds the configuration for code generation.
type Config struct {
	Automaton        *fsa.Automaton
	Name             string   // Prefix for generated function names
	Package          string   // Go package name for the generated code
	OutputFile       string   // Path the generated code is written to
	GenerateTestFile bool     // Generate a test file alongside the matcher
	TestFileInputs   []string // Sample inputs for the generated test file
	Verbose          bool     // Enable verbose logging of generation decisions
}

// Generator turns an automaton's transition table into standalone Go source:
// a NextState function with the table unrolled into nested switches, and a
// ProcessString function folding it over an input string. The generated
// matcher needs no table at runtime and depends only on the standard library.
type Generator struct {
	config   Config
	file     *jen.File
	logger   *Logger
	alphabet []string
	table    [][]int
	accepts  []int
}

// New creates a new generator instance.
func New(config Config) *Generator {
	g := &Generator{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
	if config.Automaton != nil {
		g.alphabet = config.Automaton.Alphabet()
		g.table = config.Automaton.Table()
		g.accepts = config.Automaton.AcceptStates()
	}
	return g
}

// Generate generates the Go code and writes it to the output file.
func (g *Generator) Generate() error {
	if len(g.table) == 0 {
		return fmt.Errorf("automaton has no states")
	}

	g.logger.Log("generating %s: %d states, %d symbols, %d accept states",
		g.config.Name, len(g.table), len(g.alphabet), len(g.accepts))

	g.file.Comment(fmt.Sprintf("Code generated by tablefsa for automaton %s. DO NOT EDIT.", g.config.Name))
	g.file.Line()

	g.generateNextState()
	g.generateProcessString()

	if err := g.file.Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.config.OutputFile, err)
	}

	if g.config.GenerateTestFile {
		if err := g.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// generateNextState unrolls the transition table into a switch on the
// current state with a nested switch per symbol. Any state or symbol the
// table does not cover falls through to returning the input state,
// preserving the interpreted automaton's no-op contract.
func (g *Generator) generateNextState() {
	stateCases := make([]jen.Code, 0, len(g.table))
	for state, row := range g.table {
		symbolCases := make([]jen.Code, 0, len(row))
		seen := make(map[string]bool, len(row))
		for col, sym := range g.alphabet {
			if col >= len(row) || seen[sym] {
				continue
			}
			seen[sym] = true
			symbolCases = append(symbolCases,
				jen.Case(jen.Lit(sym)).Block(jen.Return(jen.Lit(g.target(state, sym, row)))),
			)
		}
		stateCases = append(stateCases,
			jen.Case(jen.Lit(state)).Block(
				jen.Switch(jen.Id(SymbolName)).Block(symbolCases...),
			),
		)
	}

	funcName := g.config.Name + NextStateSuffix
	g.file.Comment(fmt.Sprintf("%s returns the state reached from %s upon reading %s.", funcName, CurrentStateName, SymbolName))
	g.file.Comment("An unknown state or symbol returns the current state unchanged.")
	g.file.Func().Id(funcName).
		Params(jen.Id(CurrentStateName).Int(), jen.Id(SymbolName).String()).
		Int().
		Block(
			jen.Switch(jen.Id(CurrentStateName)).Block(stateCases...),
			jen.Return(jen.Id(CurrentStateName)),
		)
	g.file.Line()
}

// target resolves the transition for a symbol within a row. For duplicate
// alphabet entries the interpreted automaton's column scan keeps the last
// matching column, so the generated table does too.
func (g *Generator) target(state int, symbol string, row []int) int {
	next := state
	for col, sym := range g.alphabet {
		if sym == symbol && col < len(row) {
			next = row[col]
		}
	}
	return next
}

// generateProcessString emits the whole-input fold: start at state 0, apply
// NextState per rune, then test membership in the accept set.
func (g *Generator) generateProcessString() {
	funcName := g.config.Name + ProcessStringSuffix
	nextState := g.config.Name + NextStateSuffix

	var acceptCheck []jen.Code
	if lits := g.acceptLits(); len(lits) > 0 {
		acceptCheck = append(acceptCheck,
			jen.Switch(jen.Id(StateName)).Block(
				jen.Case(lits...).Block(jen.Return(jen.True())),
			),
		)
	}
	acceptCheck = append(acceptCheck, jen.Return(jen.False()))

	g.file.Comment(fmt.Sprintf("%s reports whether the automaton accepts %s.", funcName, InputName))
	g.file.Func().Id(funcName).
		Params(jen.Id(InputName).String()).
		Bool().
		Block(
			append([]jen.Code{
				jen.Id(StateName).Op(":=").Lit(0),
				jen.For(jen.List(jen.Id("_"), jen.Id("c")).Op(":=").Range().Id(InputName)).Block(
					jen.Id(StateName).Op("=").Id(nextState).Call(jen.Id(StateName), jen.String().Call(jen.Id("c"))),
				),
			}, acceptCheck...)...,
		)
}

// acceptLits returns the accept states as deduplicated case literals.
// Duplicates are legal in the table format but would not compile as switch
// cases.
func (g *Generator) acceptLits() []jen.Code {
	seen := make(map[int]bool, len(g.accepts))
	lits := make([]jen.Code, 0, len(g.accepts))
	for _, acc := range g.accepts {
		if seen[acc] {
			continue
		}
		seen[acc] = true
		lits = append(lits, jen.Lit(acc))
	}
	return lits
}
