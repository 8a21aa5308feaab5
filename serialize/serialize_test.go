package serialize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coregx/fa/automaton"
)

func TestTextRoundTrip(t *testing.T) {
	fa, err := automaton.String([]byte("ab"), automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, fa, "roundtrip"); err != nil {
		t.Fatal(err)
	}

	parsed, err := ReadText(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}

	if parsed.StateCount() != fa.StateCount() {
		t.Fatalf("expected %d states, got %d", fa.StateCount(), parsed.StateCount())
	}

	var accepting int
	for _, s := range parsed.States() {
		if s.Accepting() {
			accepting++
		}
	}
	if accepting != 1 {
		t.Fatalf("expected 1 accepting state after round-trip, got %d", accepting)
	}
	if parsed.Start() == automaton.InvalidState {
		t.Fatal("expected a valid start state after round-trip")
	}
}

func TestTextRoundTripNonPrintableByte(t *testing.T) {
	fa := automaton.New(nil)
	s0 := fa.AddState()
	s1 := fa.AddState()
	fa.SetStart(s0)
	fa.AddTrans(s0, automaton.Symbol(0x01), s1)
	fa.State(s1).SetAccepting(true)

	var buf bytes.Buffer
	if err := WriteText(&buf, fa, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "0x1") {
		t.Fatalf("expected 0x1 notation for non-printable byte, got:\n%s", buf.String())
	}

	parsed, err := ReadText(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	trans := parsed.State(parsed.Start()).Transitions()
	if len(trans) != 1 || trans[0].SymFrom != automaton.Symbol(0x01) {
		t.Fatalf("expected a transition on 0x01, got %+v", trans)
	}
}

func TestTextRoundTripEpsilon(t *testing.T) {
	fa := automaton.New(nil)
	s0 := fa.AddState()
	s1 := fa.AddState()
	fa.SetStart(s0)
	fa.AddTrans(s0, automaton.Epsilon, s1)
	fa.State(s1).SetAccepting(true)

	var buf bytes.Buffer
	if err := WriteText(&buf, fa, ""); err != nil {
		t.Fatal(err)
	}

	parsed, err := ReadText(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}
	trans := parsed.State(parsed.Start()).Transitions()
	if len(trans) != 1 || !trans[0].IsEpsilon() {
		t.Fatalf("expected a single epsilon transition, got %+v", trans)
	}
}

func TestWriteGraphVizContainsStartAndNodes(t *testing.T) {
	fa, _ := automaton.String([]byte("a"), automaton.Limits{})
	var buf bytes.Buffer
	if err := WriteGraphViz(&buf, fa, "", nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph fa {") {
		t.Fatal("expected digraph header")
	}
	if !strings.Contains(out, "start -> ") {
		t.Fatal("expected start edge")
	}
	if !strings.Contains(out, "doublecircle") {
		t.Fatal("expected an accepting doublecircle node")
	}
}

func TestWriteGraphVizTikZContainsPicture(t *testing.T) {
	fa, _ := automaton.String([]byte("a"), automaton.Limits{})
	var buf bytes.Buffer
	if err := WriteGraphVizTikZ(&buf, fa, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\\begin{tikzpicture}") || !strings.Contains(out, "\\end{tikzpicture}") {
		t.Fatal("expected a tikzpicture block")
	}
}
