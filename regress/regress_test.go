package regress

import (
	"bytes"
	"testing"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{`abc`, []byte("abc")},
		{`\x41\x42`, []byte("AB")},
		{`\r\n\t\v\f\a\b`, []byte{'\r', '\n', '\t', '\v', '\f', '\a', '\b'}},
		{`\0`, []byte{0x00}},
		{`\e`, []byte{0x1b}},
		{`\\`, []byte(`\`)},
		{`\:`, []byte(`:`)},
		{``, []byte{}},
	}
	for _, c := range cases {
		got := Unescape(c.in)
		if !bytes.Equal(got, c.want) {
			t.Errorf("Unescape(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFileSample(t *testing.T) {
	blocks, err := ParseFile("testdata/sample.test")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	first := blocks[0]
	if len(first.Regexps) != 2 {
		t.Fatalf("first block: got %d regexps, want 2", len(first.Regexps))
	}
	if first.Regexps[0].Pattern != "^abc$" || first.Regexps[1].Pattern != "^a+$" {
		t.Fatalf("unexpected regexp patterns: %+v", first.Regexps)
	}
	if len(first.Cases) != 4 {
		t.Fatalf("first block: got %d cases, want 4", len(first.Cases))
	}

	second := blocks[1]
	if second.Opts.GetInt("dtimeout", -1) != 0 {
		t.Fatalf("expected dtimeout=0, got %v", second.Opts["dtimeout"])
	}
	if second.Opts.GetInt("states", -1) != 0 {
		t.Fatalf("expected states=0, got %v", second.Opts["states"])
	}
	if len(second.Regexps) != 1 || second.Regexps[0].Pattern != "^[0-9]+$" {
		t.Fatalf("unexpected second block regexps: %+v", second.Regexps)
	}
}

func TestRunSample(t *testing.T) {
	blocks, err := ParseFile("testdata/sample.test")
	if err != nil {
		t.Fatal(err)
	}
	for _, block := range blocks {
		outcome := block.Run()
		if outcome.Err != nil {
			t.Fatalf("block at line %d: unexpected error: %s", block.Line, outcome.Err)
		}
		for _, r := range outcome.Results {
			if !r.Pass {
				t.Errorf("block at line %d, case at line %d (%q): got %s, want %s",
					block.Line, r.Case.Line, r.Case.Text, r.Got, WantDescription(r.Case))
			}
		}
	}
}

func TestParseDirSample(t *testing.T) {
	blocks, err := ParseDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks from dir, want 2", len(blocks))
	}
}
