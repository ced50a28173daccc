package kwg

import (
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/internal/tilemapping"
)

func TestBuildFromWordsRoundTripsThroughAcceptsWord(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	words := []tilemapping.MachineWord{
		mustParse(t, alph, "AT"),
		mustParse(t, alph, "ATE"),
		mustParse(t, alph, "AS"),
		mustParse(t, alph, "EAT"),
	}

	g, err := BuildFromWords("TEST", alph, words)
	is.NoErr(err)

	is.True(g.AcceptsWord(mustParse(t, alph, "AT")))
	is.True(g.AcceptsWord(mustParse(t, alph, "ATE")))
	is.True(g.AcceptsWord(mustParse(t, alph, "AS")))
	is.True(g.AcceptsWord(mustParse(t, alph, "EAT")))
	is.True(!g.AcceptsWord(mustParse(t, alph, "A")))
	is.True(!g.AcceptsWord(mustParse(t, alph, "ATS")))
}

func TestEnumerateYieldsWordsInSortedOrder(t *testing.T) {
	is := is.New(t)
	alph := testAlphabet(t)
	words := []tilemapping.MachineWord{
		mustParse(t, alph, "AT"),
		mustParse(t, alph, "AS"),
		mustParse(t, alph, "ATE"),
	}
	g, err := BuildFromWords("TEST", alph, words)
	is.NoErr(err)

	var got []string
	g.Enumerate(func(word tilemapping.MachineWord) bool {
		got = append(got, alph.FormatRack(word))
		return true
	})
	is.Equal(got, []string{"AS", "AT", "ATE"})
}
