// Command fatool builds an FA from one or more inputs (re: or text:; dot:
// and dottikz: are output-only), optionally determinizes and minimizes it,
// then either emits it as text:/dot:/dottikz: or runs a single test string
// against it (spec.md
// §6), grounded on original_source/fatool.c.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/determinize"
	"github.com/coregx/fa/minimize"
	"github.com/coregx/fa/regexpfa"
	"github.com/coregx/fa/serialize"
	"github.com/coregx/fa/sim"
)

type options struct {
	In      goflags.StringSlice
	Out     string
	Test    string
	Label   string
	DFA     bool
	Min     bool
	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Finite-automata swiss-army tool: build, transform, and emit FAs.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.In, "in", "i", nil, "input FMT:ARG (re:, text:), repeatable", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("transform", "Transform",
		flagSet.BoolVarP(&opts.DFA, "dfa", "d", false, "determinize via subset construction"),
		flagSet.BoolVarP(&opts.Min, "min", "m", false, "minimize (implies --dfa)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Out, "out", "o", "", "output FMT:ARG (text:, dot:, dottikz:)"),
		flagSet.StringVarP(&opts.Test, "test", "t", "", "run a single test string against the built FA instead of emitting --out"),
		flagSet.StringVarP(&opts.Label, "label", "l", "", "label attached to text:/dot: output (dottikz: ignores it)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	return opts
}

// splitFormat splits "FMT:ARG" into its format name and argument, the way
// original_source/fatool.c's get_format matches each formats[] entry's
// name (including its trailing colon) as a prefix.
func splitFormat(spec string) (string, string, error) {
	for _, name := range []string{"re:", "text:", "dottikz:", "dot:"} {
		if strings.HasPrefix(spec, name) {
			return name[:len(name)-1], spec[len(name):], nil
		}
	}
	return "", "", fmt.Errorf("unrecognized format %q (want re:, text:, dot:, or dottikz:)", spec)
}

func readInput(spec string) (*automaton.FA, error) {
	format, arg, err := splitFormat(spec)
	if err != nil {
		return nil, err
	}
	switch format {
	case "re":
		return regexpfa.Compile(arg, automaton.Limits{})
	case "text":
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return serialize.ReadText(f)
	default:
		return nil, fmt.Errorf("--in not supported for format %s:", format)
	}
}

func openOutput(arg string) (*os.File, func(), error) {
	if arg == "" || arg == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(arg)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func writeOutput(fa *automaton.FA, spec, label string) error {
	format, arg, err := splitFormat(spec)
	if err != nil {
		return err
	}
	w, closeFn, err := openOutput(arg)
	if err != nil {
		return err
	}
	defer closeFn()

	switch format {
	case "text":
		return serialize.WriteText(w, fa, label)
	case "dot":
		return serialize.WriteGraphViz(w, fa, label, stateNameByIndex)
	case "dottikz":
		return serialize.WriteGraphVizTikZ(w, fa, stateNameByIndex)
	default:
		return fmt.Errorf("--out not supported for format %s:", format)
	}
}

// stateNameByIndex renders an accepting state's --in index as its
// display label, matching original_source/fatool.c's state_name callback.
func stateNameByIndex(s *automaton.State) string {
	if !s.Accepting() {
		return ""
	}
	idx, ok := s.Opaque.(int)
	if !ok {
		return ""
	}
	return strconv.Itoa(idx)
}

func tagAccepting(fa *automaton.FA, idx int) {
	for _, s := range fa.States() {
		if s.Accepting() {
			s.Opaque = idx
		}
	}
}

func priorityLowestIndex(opaques []interface{}) interface{} {
	best := opaques[0].(int)
	for _, o := range opaques[1:] {
		if v := o.(int); v < best {
			best = v
		}
	}
	return best
}

func distinguishByIndex(a, b interface{}) bool {
	ai, aok := a.(int)
	bi, bok := b.(int)
	if !aok || !bok {
		return false
	}
	return ai != bi
}

// runTest feeds test verbatim (original_source/fatool.c's --test does not
// unescape, unlike faregress.c's case lines).
func runTest(fa *automaton.FA, test string) {
	d := sim.BuildDense(fa)
	run := d.Init()
	switch d.Run(run, []byte(test)) {
	case sim.Accept:
		gologger.Info().Msgf("match %d", run.Opaque)
	case sim.Reject:
		gologger.Info().Msgf("no match")
	case sim.More:
		gologger.Info().Msgf("more")
	}
}

func main() {
	opts := parseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if len(opts.In) == 0 {
		gologger.Fatal().Msgf("please specify --in")
	}
	if opts.Test == "" && opts.Out == "" {
		gologger.Fatal().Msgf("please specify --out or --test")
	}

	inputs := make([]*automaton.FA, 0, len(opts.In))
	for i, spec := range opts.In {
		f, err := readInput(spec)
		if err != nil {
			gologger.Fatal().Msgf("in format failed with argument %s: %s", spec, err)
		}
		tagAccepting(f, i)
		gologger.Info().Msgf("NFA[%s]: states=%d trans=%d", spec, f.StateCount(), f.TransCount())
		inputs = append(inputs, f)
	}

	var fa *automaton.FA
	if len(inputs) > 1 {
		f, err := automaton.UnionList(inputs, automaton.Limits{})
		if err != nil {
			gologger.Fatal().Msgf("union: %s", err)
		}
		fa = f
	} else {
		fa = inputs[0]
	}
	gologger.Info().Msgf("NFA: states=%d trans=%d", fa.StateCount(), fa.TransCount())

	if opts.DFA || opts.Min {
		d, err := determinize.Determinize(fa, determinize.DefaultConfig().WithPriority(priorityLowestIndex))
		if err != nil {
			gologger.Fatal().Msgf("determinize: %s", err)
		}
		fa = d
		gologger.Info().Msgf("DFA: states=%d trans=%d", fa.StateCount(), fa.TransCount())
	}

	if opts.Min {
		m, err := minimize.Minimize(fa, minimize.DefaultConfig().WithCmp(distinguishByIndex))
		if err != nil {
			gologger.Fatal().Msgf("minimize: %s", err)
		}
		fa = m
		gologger.Info().Msgf("MDFA: states=%d trans=%d", fa.StateCount(), fa.TransCount())
	}

	if opts.Test != "" {
		runTest(fa, opts.Test)
		return
	}

	if err := writeOutput(fa, opts.Out, opts.Label); err != nil {
		gologger.Fatal().Msgf("out format failed with argument %s: %s", opts.Out, err)
	}
}
