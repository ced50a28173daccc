package lexicon

import (
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

func testAlphabet(t *testing.T) *tilemapping.TileMapping {
	t.Helper()
	dist, err := tilemapping.EnglishLetterDistribution(&config.Config{})
	if err != nil {
		t.Fatalf("EnglishLetterDistribution: %v", err)
	}
	return dist.Alphabet()
}

func mustParse(t *testing.T, alph *tilemapping.TileMapping, s string) tilemapping.MachineWord {
	t.Helper()
	w, err := alph.ParseRack(s)
	if err != nil {
		t.Fatalf("ParseRack(%q): %v", s, err)
	}
	return w
}

func TestIntersectSortedFindsCommonWords(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	ref := []tilemapping.MachineWord{
		mustParse(t, alph, "AT"),
		mustParse(t, alph, "CAT"),
		mustParse(t, alph, "DOG"),
	}
	big := []tilemapping.MachineWord{
		mustParse(t, alph, "AT"),
		mustParse(t, alph, "ATE"),
		mustParse(t, alph, "CAT"),
		mustParse(t, alph, "ZOO"),
	}

	got := intersectSorted(ref, big)
	var words []string
	for _, w := range got {
		words = append(words, alph.FormatRack(w))
	}
	is.Equal(words, []string{"AT", "CAT"})
}

func TestIntersectSortedEmptyWhenDisjoint(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	ref := []tilemapping.MachineWord{mustParse(t, alph, "AT")}
	big := []tilemapping.MachineWord{mustParse(t, alph, "DOG")}

	is.Equal(len(intersectSorted(ref, big)), 0)
}

func TestBuildLengthImportancesWeightsRarerLengthsHigher(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	words := []tilemapping.MachineWord{
		mustParse(t, alph, "AT"),
		mustParse(t, alph, "AS"),
		mustParse(t, alph, "IT"),
		mustParse(t, alph, "ATE"),
	}
	g, err := kwg.BuildFromWords("TEST", alph, words)
	is.NoErr(err)

	importances := buildLengthImportances(g)
	is.True(importances[3] > importances[2])
}
