package picker

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/klv"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/movegen"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

func testDist(t *testing.T) *tilemapping.LetterDistribution {
	t.Helper()
	ld, err := tilemapping.EnglishLetterDistribution(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return ld
}

// buildAcceptsATGraph mirrors movegen's own test fixture: a two-node KWG
// that accepts exactly "AT".
func buildAcceptsATGraph(t *testing.T, alph *tilemapping.TileMapping) *kwg.KWG {
	t.Helper()
	a, err := alph.ParseRack("A")
	if err != nil {
		t.Fatal(err)
	}
	tt, err := alph.ParseRack("T")
	if err != nil {
		t.Fatal(err)
	}
	raw := []byte{
		0, 0, 1, 0,
		byte(a[0]), 2, 2, 0,
		byte(tt[0]), 3, 0, 0,
	}
	g, err := kwg.Load("TEST", alph, raw, false, false)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestHastyPickReturnsPassOnEmptyRack(t *testing.T) {
	is := is.New(t)
	dist := testDist(t)
	alph := dist.Alphabet()
	gen := movegen.NewGenerator(buildAcceptsATGraph(t, alph), klv.EmptyLeaves(), dist, false, 50, 7)
	h := NewHasty(gen)
	b := board.MakeBoard(board.CrosswordGameBoard)
	rack := tilemapping.NewRack(alph)

	play := h.Pick(b, rack, filter.Unfiltered(), false, frand.New())
	is.Equal(play.Action(), game.PlayActionPass)
}

func TestHastyPickFindsThePlacement(t *testing.T) {
	is := is.New(t)
	dist := testDist(t)
	alph := dist.Alphabet()
	gen := movegen.NewGenerator(buildAcceptsATGraph(t, alph), klv.EmptyLeaves(), dist, false, 50, 7)
	h := NewHasty(gen)
	b := board.MakeBoard(board.CrosswordGameBoard)
	rack := tilemapping.NewRack(alph)
	tiles, err := alph.ParseRack("AT")
	is.NoErr(err)
	rack.Set(tiles)

	play := h.Pick(b, rack, filter.Unfiltered(), false, frand.New())
	is.Equal(play.Action(), game.PlayActionPlay)
	is.Equal(alph.FormatPlay(play.Tiles()), "AT")
}

func TestHastyPickUnderTiltNeverReturnsNil(t *testing.T) {
	is := is.New(t)
	dist := testDist(t)
	alph := dist.Alphabet()
	gen := movegen.NewGenerator(buildAcceptsATGraph(t, alph), klv.EmptyLeaves(), dist, false, 50, 7)
	h := NewHasty(gen)
	b := board.MakeBoard(board.CrosswordGameBoard)
	rack := tilemapping.NewRack(alph)
	tiles, err := alph.ParseRack("AT")
	is.NoErr(err)
	rack.Set(tiles)

	tilt := filter.NewTilt(1.0, 0.5, 1, map[int]float64{2: 1.0})
	play := h.Pick(b, rack, tilt, false, frand.New())
	is.True(play != nil)
}
