// Command tablefsa evaluates input strings against a table-driven finite
// state automaton, or compiles the table into standalone Go matcher
// functions.
//
// Evaluate inputs against a table:
//
//	tablefsa -table table1.txt abbc abba
//
// Generate a Go matcher from a table:
//
//	tablefsa -table table1.txt -gen -out sample.go -package sample -name Sample
//
// Run from a confl formatted config file:
//
//	tablefsa -config run.conf
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	u "github.com/araddon/gou"

	"github.com/tablefsa/tablefsa/internal/config"
	"github.com/tablefsa/tablefsa/pkg/fsa"
	"github.com/tablefsa/tablefsa/pkg/tablefsa"
)

// arrayFlags collects repeated occurrences of a flag.
type arrayFlags []string

func (f *arrayFlags) String() string {
	return strings.Join(*f, ", ")
}

func (f *arrayFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

var (
	tableFile  = flag.String("table", "", "transition table file")
	configFile = flag.String("config", "", "confl formatted run config file")
	logLevel   = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
	show       = flag.Bool("show", false, "print the parsed table back in its textual form")
	gen        = flag.Bool("gen", false, "generate a Go matcher instead of evaluating inputs")
	genOut     = flag.String("out", "", "output file for generated code")
	genPkg     = flag.String("package", "main", "package name for generated code")
	genName    = flag.String("name", "", "name prefix for generated functions")
	verbose    = flag.Bool("verbose", false, "log generation decisions to stderr")
	testInputs arrayFlags
)

func main() {
	flag.Var(&testInputs, "test-input", "sample input for the generated test file (repeatable)")
	flag.Parse()

	inputs := flag.Args()

	if *configFile != "" {
		conf, err := config.LoadFromFile(*configFile)
		if err != nil {
			u.Errorf("could not load config: %v", err)
			os.Exit(1)
		}
		if conf.Table != "" {
			*tableFile = conf.Table
		}
		if conf.LogLevel != "" {
			*logLevel = conf.LogLevel
		}
		inputs = append(inputs, conf.Inputs...)
		if cg := conf.Codegen; cg != nil {
			*gen = true
			*genOut = cg.Out
			*genPkg = cg.Package
			*genName = cg.Name
			testInputs = append(testInputs, cg.TestInputs...)
		}
	}

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if *tableFile == "" {
		u.Errorf("must supply a table file via -table or -config")
		flag.Usage()
		os.Exit(1)
	}

	if *gen {
		err := tablefsa.Generate(tablefsa.Options{
			TableFile:      *tableFile,
			Name:           *genName,
			OutputFile:     *genOut,
			Package:        *genPkg,
			TestFileInputs: testInputs,
			Verbose:        *verbose,
		})
		if err != nil {
			u.Errorf("generation failed: %v", err)
			os.Exit(1)
		}
		return
	}

	automaton, err := fsa.Load(*tableFile)
	if err != nil {
		// Load already reported the reason on the error log.
		os.Exit(1)
	}

	if *show {
		fmt.Print(automaton)
	}

	for _, input := range inputs {
		verdict := "reject"
		if automaton.ProcessString(input) {
			verdict = "accept"
		}
		fmt.Printf("%s\t%q\n", verdict, input)
	}
}
