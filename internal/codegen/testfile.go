package codegen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

// generateTestFile writes a _test.go companion next to the generated
// matcher. Expected results come from running each sample input through the
// interpreted automaton, so the generated tests assert that the unrolled
// matcher agrees with the table it was generated from.
func (g *Generator) generateTestFile() error {
	inputs := g.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	funcName := g.config.Name + ProcessStringSuffix

	values := make([]jen.Code, 0, len(inputs))
	for _, input := range inputs {
		want := g.config.Automaton.ProcessString(input)
		g.logger.Log("test input %q: want %v", input, want)
		values = append(values, jen.Values(jen.Lit(input), jen.Lit(want)))
	}

	tf := jen.NewFile(g.config.Package)
	tf.Comment(fmt.Sprintf("Code generated by tablefsa for automaton %s. DO NOT EDIT.", g.config.Name))
	tf.Line()

	tf.Func().Id("Test" + UpperFirst(funcName)).
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("tests").Op(":=").Index().Struct(
				jen.Id(InputName).String(),
				jen.Id("want").Bool(),
			).Values(values...),
			jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
				jen.If(
					jen.Id("got").Op(":=").Id(funcName).Call(jen.Id("tt").Dot(InputName)),
					jen.Id("got").Op("!=").Id("tt").Dot("want"),
				).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit(funcName+"(%q) = %v, want %v"),
						jen.Id("tt").Dot(InputName),
						jen.Id("got"),
						jen.Id("tt").Dot("want"),
					),
				),
			),
		)

	path := testFilePath(g.config.OutputFile)
	if err := tf.Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// testFilePath derives the test file name from the matcher's output file.
func testFilePath(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}
