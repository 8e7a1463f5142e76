// Package config loads confl formatted run manifests for the tablefsa CLI.
package config

import (
	"os"

	"github.com/lytics/confl"
)

// LoadFromFile reads a confl formatted run config file from disk.
func LoadFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Load(string(confBytes))
}

// Load decodes a confl formatted run config from a string (assumes it came
// from a file or was passed in). Environment variables are expanded first.
func Load(conf string) (*Config, error) {
	var c Config
	if _, err := confl.Decode(os.ExpandEnv(conf), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

type (
	// Config for a tablefsa run made up of blocks
	// 1) the transition table file to load
	// 2) input strings to evaluate against it
	// 3) optional code generation output
	Config struct {
		LogLevel string         `json:"log_level"` // [debug,info,warn,error]
		Table    string         `json:"table"`     // transition table file path
		Inputs   []string       `json:"inputs"`    // input strings to evaluate
		Codegen  *CodegenConfig `json:"codegen"`   // optional generated matcher output
	}

	// CodegenConfig describes the generated matcher output
	CodegenConfig struct {
		Out        string   `json:"out"`         // output .go file
		Package    string   `json:"package"`     // package name for generated code
		Name       string   `json:"name"`        // function name prefix
		TestInputs []string `json:"test_inputs"` // sample inputs for the generated test file
	}
)
