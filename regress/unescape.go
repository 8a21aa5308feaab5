// Package regress implements the ".test" regression-file format and
// execution harness (spec.md §6 "faregress"), grounded on
// original_source/faregress.c: regexp declarations, case lines, and
// key=value options parsed from a directory of test files, then executed
// against the same regexpfa -> determinize -> minimize -> sim pipeline
// fatool and the root fa package use. cmd/faregress is a thin CLI wrapper
// around this package; regexpfa's own tests call it directly against
// testdata/*.test fixtures, mirroring how original_source/faregress.c
// doubled as both a standalone binary and the project's own test suite.
package regress

import "strconv"

// Unescape decodes the backslash escapes original_source/faregress.c's
// test_case_unescape recognizes in a case line's text: \xHH (hex byte),
// \r \n \t \v \f \e \a \b \0, and a literal passthrough for any other
// escaped character (including \\ and \:). A trailing lone backslash is
// kept as-is, matching test_case_unescape's `l-(i+1) > 0` guard.
func Unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			out = append(out, c)
			continue
		}
		i++
		switch s[i] {
		case 'x':
			if i+2 < len(s) {
				v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
				if err == nil {
					out = append(out, byte(v))
					i += 2
					continue
				}
			}
			out = append(out, s[i])
		case 'r':
			out = append(out, '\r')
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'f':
			out = append(out, '\f')
		case 'e':
			out = append(out, 0x1b)
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case '0':
			out = append(out, 0x00)
		default:
			out = append(out, s[i])
		}
	}
	return out
}
