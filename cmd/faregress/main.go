// Command faregress runs the ".test" regression harness (spec.md §6) over
// every fixture file in a directory, grounded on
// original_source/faregress.c's test_dir/test_do driver; the parsing and
// execution themselves live in package regress so regexpfa's own tests
// can drive the same fixtures without shelling out to this binary.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/fa/regress"
)

type options struct {
	Dir     string
	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Regression test harness executing fatool-style .test fixture directories.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Dir, "dir", "d", "", "directory of .test fixture files to execute"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display failures only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	return opts
}

func main() {
	opts := parseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Dir == "" {
		gologger.Fatal().Msgf("please specify --dir")
	}

	blocks, err := regress.ParseDir(opts.Dir)
	if err != nil {
		gologger.Fatal().Msgf("reading %s: %s", opts.Dir, err)
	}

	var tests, cases, failed int
	for _, t := range blocks {
		tests++
		outcome := t.Run()
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s\n", outcome.Err)
			continue
		}
		for _, r := range outcome.Results {
			cases++
			if r.Pass {
				continue
			}
			failed++
			fmt.Fprintf(os.Stderr, "%s:%d: %q: got %s, should %s\n",
				t.File, r.Case.Line, r.Case.Text, r.Got, regress.WantDescription(r.Case))
		}
	}

	gologger.Info().Msgf("%d tests, %d cases, %d failed", tests, cases, failed)

	if failed > 0 {
		os.Exit(1)
	}
}
