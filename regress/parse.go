package regress

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Case outcome sentinels, matching original_source/faregress.c's
// TEST_ERROR/TEST_REJECT/TEST_MORE; a non-negative Num means "must be
// accepted by regexp Num".
const (
	ErrorCase  = -1
	RejectCase = -2
	MoreCase   = -3
)

// Regexp is one "N: PATTERN" declaration line within a test block.
type Regexp struct {
	Num     int
	Pattern string
	Line    int
}

// Case is one indented case line within a test block: the text to feed
// the compiled union, and the expected outcome (a Regexp.Num to match, or
// one of the Case sentinels).
type Case struct {
	Num  int
	Text []byte
	Line int
}

// Opts holds the "key=value" option lines of a test block (dotall,
// dtimeout, mtimeout, states, trans, removeacceptingtrans, ignorepcre).
type Opts map[string]string

// Get returns the option value, or def if unset.
func (o Opts) Get(name, def string) string {
	if v, ok := o[name]; ok {
		return v
	}
	return def
}

// GetInt returns the option value parsed as an int, def if unset, or 0 if
// set but unparsable (matching test_opt_get_int's atoi, which yields 0 on
// a non-numeric string).
func (o Opts) GetInt(name string, def int) int {
	v, ok := o[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Test is one blank-line-delimited block within a .test file: zero or
// more regexp declarations, case lines, and options.
type Test struct {
	File    string
	Line    int
	Regexps []Regexp
	Cases   []Case
	Opts    Opts
}

// ParseFile parses every test block in a single file (original_source/
// faregress.c's test_file): lines are trimmed of leading spaces, "#"
// starts a comment, a blank line flushes the current block, a non-
// indented "N:PATTERN" line declares a regexp, an indented "label:TEXT"
// line declares a case (label is "e"/"!"/"m" or a regexp number), and a
// "key=value" line (no colon) sets an option. A missing trailing newline
// on the file's last line is tolerated.
func ParseFile(path string) ([]*Test, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var blocks []*Test
	var cur *Test
	line := 0

	flush := func() {
		if cur != nil {
			blocks = append(blocks, cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 4096), 1<<20)
	for sc.Scan() {
		line++
		raw := sc.Text()
		trimmed := strings.TrimLeft(raw, " ")
		indented := trimmed != raw

		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}

		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			eq := strings.Index(trimmed, "=")
			if eq < 0 {
				continue
			}
			if cur == nil {
				cur = &Test{File: path, Line: line, Opts: Opts{}}
			}
			if cur.Opts == nil {
				cur.Opts = Opts{}
			}
			cur.Opts[trimmed[:eq]] = trimmed[eq+1:]
			continue
		}

		if cur == nil {
			cur = &Test{File: path, Line: line, Opts: Opts{}}
		}

		label := trimmed[:colon]
		rest := trimmed[colon+1:]

		if !indented {
			num, err := strconv.Atoi(label)
			if err != nil {
				continue
			}
			cur.Regexps = append(cur.Regexps, Regexp{Num: num, Pattern: rest, Line: line})
			continue
		}

		var num int
		switch label {
		case "e":
			num = ErrorCase
		case "!":
			num = RejectCase
		case "m":
			num = MoreCase
		default:
			num, _ = strconv.Atoi(label)
		}
		cur.Cases = append(cur.Cases, Case{Num: num, Text: Unescape(rest), Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return blocks, nil
}

// ParseDir parses every regular file directly inside dir (original_source/
// faregress.c's test_dir: readdir with no filtering, so subdirectories and
// files that fail to parse as a test are simply skipped).
func ParseDir(dir string) ([]*Test, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var all []*Test
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		blocks, err := ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		all = append(all, blocks...)
	}
	return all, nil
}
