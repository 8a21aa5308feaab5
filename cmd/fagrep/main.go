// Command fagrep filters stdin lines against a single regexp, printing
// the lines that match (spec.md §6 "fagrep REGEX"), grounded on
// original_source/fagrep.c. When the regexp is a plain literal, an
// Aho-Corasick prefilter (automaton.UnionStrings) skips lines that
// provably can't match before the compiled automaton ever runs,
// following coregx/coregex/meta.compile.go's literal-bypass pairing.
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp/syntax"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/fa"
	"github.com/coregx/fa/automaton"
)

type options struct {
	Regex   string
	Verbose bool
	Silent  bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Filters stdin lines matching a regexp, printing the lines that match.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Regex, "regex", "e", "", "pattern to match each stdin line against"),
	)
	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display matches only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}
	return opts
}

// literalPrefilter builds an automaton.LiteralPrefilter for pattern when
// it parses as a plain, case-sensitive literal run with no anchors —
// the common case original_source/fagrep.c's callers exercise (a bare
// substring search) — or nil otherwise.
func literalPrefilter(pattern string) *automaton.LiteralPrefilter {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil || re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase != 0 {
		return nil
	}
	lit := make([]byte, len(re.Rune))
	for i, r := range re.Rune {
		lit[i] = byte(r)
	}
	if len(lit) == 0 {
		return nil
	}
	litFA, err := automaton.String(lit, automaton.Limits{})
	if err != nil {
		return nil
	}
	_, prefilter, err := automaton.UnionStrings([][]byte{lit}, []*automaton.FA{litFA}, automaton.Limits{})
	if err != nil {
		return nil
	}
	return prefilter
}

func main() {
	opts := parseFlags()

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Regex == "" {
		gologger.Fatal().Msgf("please specify --regex")
	}

	pattern, err := fa.Compile(opts.Regex)
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	prefilter := literalPrefilter(opts.Regex)

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for sc.Scan() {
		line := sc.Bytes()
		if prefilter != nil {
			if _, _, ok := prefilter.Find(line, 0); !ok {
				continue
			}
		}
		if pattern.Match(line) {
			fmt.Fprintln(out, string(line))
		}
	}
	if err := sc.Err(); err != nil {
		gologger.Fatal().Msgf("reading stdin: %s", err)
	}
}
