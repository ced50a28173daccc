package kwg

import (
	"testing"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/tilemapping"
	"github.com/matryer/is"
)

func testAlphabet(t *testing.T) *tilemapping.TileMapping {
	t.Helper()
	ld, err := tilemapping.EnglishLetterDistribution(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return ld.Alphabet()
}

// buildTiny hand-packs a tiny DAWG accepting exactly {"AT", "ATE", "AS"}.
// The root's arc list is the single node A; A's arc list is S, T (sorted,
// T last); T's arc list is the single node E.
func buildTiny(t *testing.T, alph *tilemapping.TileMapping) *KWG {
	t.Helper()
	mw, err := alph.ParseRack("A")
	if err != nil {
		t.Fatal(err)
	}
	a := mw[0]
	mw, _ = alph.ParseRack("S")
	s := mw[0]
	mw, _ = alph.ParseRack("T")
	tt := mw[0]
	mw, _ = alph.ParseRack("E")
	e := mw[0]

	// indices: 0 root(unused tile, arc_index=1)
	// 1: A, arc_index=2, is_end=true (only sibling in the root's list)
	// 2: S, accepts=true, arc_index=0, is_end=false (more siblings follow)
	// 3: T, accepts=true, arc_index=4, is_end=true
	// 4: E, accepts=true, arc_index=0, is_end=true
	nodes := []Node{
		makeNode(0, false, true, 1),
		makeNode(a, false, true, 2),
		makeNode(s, true, false, 0),
		makeNode(tt, true, true, 4),
		makeNode(e, true, true, 0),
	}
	return &KWG{lexiconName: "TINY", alph: alph, nodes: nodes}
}

func TestSeekAndAccepts(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	g := buildTiny(t, alph)

	is.True(g.AcceptsWord(mustParse(t, alph, "AT")))
	is.True(g.AcceptsWord(mustParse(t, alph, "AS")))
	is.True(g.AcceptsWord(mustParse(t, alph, "ATE")))
	is.True(!g.AcceptsWord(mustParse(t, alph, "A")))
	is.True(!g.AcceptsWord(mustParse(t, alph, "AX")))
}

func TestAcceptsAlphaMatchesAnyPermutation(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	g := buildTiny(t, alph)

	// "TA" is an anagram of accepted word "AT".
	is.True(g.AcceptsAlpha(mustParse(t, alph, "TA")))
	is.True(g.AcceptsAlpha(mustParse(t, alph, "ETA")))
	is.True(!g.AcceptsAlpha(mustParse(t, alph, "ZZ")))
}

func mustParse(t *testing.T, alph *tilemapping.TileMapping, s string) tilemapping.MachineWord {
	t.Helper()
	mw, err := alph.ParseRack(s)
	if err != nil {
		t.Fatal(err)
	}
	return mw
}
