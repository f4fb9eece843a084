// Command pegcat runs one of the bundled example grammars (arithmetic,
// json, symtab) against an input file or stdin and prints the resulting
// value stack, colorized diagnostics on failure, or the combinator graph
// itself when asked to just describe the grammar.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/solvik/peg"
	"github.com/solvik/peg/ascii"
	"github.com/solvik/peg/examples/arithmetic"
	"github.com/solvik/peg/examples/json"
	"github.com/solvik/peg/examples/symtab"
)

type args struct {
	grammar     *string
	inputPath   *string
	describe    *bool
	trace       *bool
	noWellForm  *bool
	interactive *bool
}

func readArgs() *args {
	a := &args{
		grammar:     flag.String("grammar", "arithmetic", "Grammar to run: arithmetic, json, or symtab"),
		inputPath:   flag.String("input", "", "Path to the input file (omit for an interactive prompt)"),
		describe:    flag.Bool("describe", false, "Print the combinator graph instead of parsing"),
		trace:       flag.Bool("trace", false, "Collect and print per-combinator metrics after parsing"),
		noWellForm:  flag.Bool("no-well-formed", false, "Skip the pre-parse well-formedness check"),
		interactive: flag.Bool("interactive", false, "Force the interactive prompt even with -input set"),
	}
	flag.Parse()
	return a
}

func grammarFor(name string) (*peg.Parser, func(*peg.Options) *peg.Options, error) {
	switch name {
	case "arithmetic":
		return arithmetic.Grammar(), func(o *peg.Options) *peg.Options { return o }, nil
	case "json":
		return json.Grammar(), func(o *peg.Options) *peg.Options { return o }, nil
	case "symtab":
		env := map[string]float64{}
		return symtab.Grammar(), func(o *peg.Options) *peg.Options { return o.WithCustom(symtab.EnvKey, env) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown grammar %q (want arithmetic, json, or symtab)", name)
	}
}

func main() {
	a := readArgs()

	grammar, withEnv, err := grammarFor(*a.grammar)
	if err != nil {
		fatal("%s", err)
	}

	if *a.describe {
		fmt.Print(peg.Describe(grammar))
		return
	}

	opts := peg.DefaultOptions()
	opts.WellFormednessCheck = !*a.noWellForm
	if *a.trace {
		opts.WithTrace(true)
	}
	opts = withEnv(opts)

	if *a.inputPath == "" || *a.interactive {
		repl(grammar, opts)
		return
	}

	text, err := os.ReadFile(*a.inputPath)
	if err != nil {
		fatal("can't open input file: %s", err)
	}
	runOnce(grammar, strings.TrimRight(string(text), "\n"), opts)
}

func repl(grammar *peg.Parser, opts *peg.Options) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\n")
		if line != "" {
			runOnce(grammar, line, opts)
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
	}
}

func runOnce(grammar *peg.Parser, text string, opts *peg.Options) {
	res := peg.ParseString(grammar, text, opts)

	for _, d := range res.Diagnostics {
		fmt.Println(ascii.Color(ascii.DefaultTheme.Warning, "well-formedness: %s", d))
	}

	if !res.Success {
		printFailure(text, res)
		return
	}
	if !res.FullMatch {
		fmt.Println(ascii.Color(ascii.DefaultTheme.Warning, "matched only %d of %d runes", res.MatchSize, len([]rune(text))))
	}
	for _, v := range res.ValueStack {
		fmt.Println(ascii.Color(ascii.DefaultTheme.Success, "%#v", v))
	}

	if res.Metrics != nil {
		for name, m := range res.Metrics.ByName() {
			fmt.Println(ascii.Color(ascii.DefaultTheme.Muted, "  %s: %d/%d", name, m.Successes, m.Invocations))
		}
	}
}

func printFailure(text string, res peg.Result) {
	if res.Thrown != nil {
		fmt.Println(ascii.Color(ascii.DefaultTheme.Error, "%s: %s", res.Thrown.Label, res.Thrown.Message))
		return
	}
	line, col := locate(text, res.ErrorPosition)
	expected := "input"
	if len(res.ErrorExpected) > 0 {
		expected = strings.Join(res.ErrorExpected, " or ")
	}
	fmt.Println(ascii.Color(ascii.DefaultTheme.Error, "parse error at %d:%d: expected %s", line, col, expected))
	if len(res.ErrorCallStack) > 0 {
		fmt.Println(ascii.Color(ascii.DefaultTheme.Muted, "  while matching: %s", strings.Join(res.ErrorCallStack, " > ")))
	}
}

// locate turns a rune offset into a 1-indexed line/column pair, the same
// convention as the teacher's grammar source-map locations.
func locate(text string, offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range []rune(text) {
		if i == offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func fatal(format string, args ...any) {
	fmt.Fprint(os.Stderr, ascii.Color(ascii.DefaultTheme.Error, "error: "))
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
