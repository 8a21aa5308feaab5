package regexpfa

import (
	"testing"

	"github.com/coregx/fa/regress"
)

// TestCompileRegressionFile drives testdata/compile.test through the
// regress engine, the same harness cmd/faregress runs over a whole
// directory (SPEC_FULL.md §6.5: faregress doubles as both a CLI tool and
// the engine behind regexpfa's own .test fixtures).
func TestCompileRegressionFile(t *testing.T) {
	blocks, err := regress.ParseFile("testdata/compile.test")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	for _, block := range blocks {
		outcome := block.Run()
		if outcome.Err != nil {
			t.Fatalf("block at line %d: %s", block.Line, outcome.Err)
		}
		for _, r := range outcome.Results {
			if !r.Pass {
				t.Errorf("block at line %d, case at line %d (%q): got %s, want %s",
					block.Line, r.Case.Line, r.Case.Text, r.Got, regress.WantDescription(r.Case))
			}
		}
	}
}
