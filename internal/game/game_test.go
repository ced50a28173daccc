package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	ld, err := tilemapping.EnglishLetterDistribution(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return NewConfig(VarClassic, ld, nil)
}

func TestNewBagHasOneHundredTiles(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	b := NewBag(cfg.Dist)
	is.Equal(b.TilesRemaining(), 100)
}

func TestDrawRemovesFromBag(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	b := NewBag(cfg.Dist)
	drawn, err := b.Draw(7)
	is.NoErr(err)
	is.Equal(len(drawn), 7)
	is.Equal(b.TilesRemaining(), 93)
}

func TestExchangeKeepsBagSizeConstant(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	b := NewBag(cfg.Dist)
	drawn, err := b.Draw(3)
	is.NoErr(err)
	replacement, err := b.Exchange(drawn)
	is.NoErr(err)
	is.Equal(len(replacement), 3)
	is.Equal(b.TilesRemaining(), 97)
}

func TestNewGameStartsWithEmptyBoardAndFullBag(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	g := NewGame(cfg, "alice", "bob")
	is.True(g.Board.IsEmptyBoard())
	is.Equal(g.Bag.TilesRemaining(), 100)
	is.Equal(g.Turn, 0)
	is.True(g.Playing)
}

func TestPlayMovePassIncrementsScorelessTurns(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	g := NewGame(cfg, "alice", "bob")
	g.PlayMove(passMove{})
	is.Equal(g.ScorelessTurns, 1)
	is.Equal(g.Turn, 1)
}

func TestSixConsecutivePassesEndsGame(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	g := NewGame(cfg, "alice", "bob")
	for i := 0; i < 6; i++ {
		g.PlayMove(passMove{})
	}
	is.True(!g.Playing)
}

// passMove is a minimal PlayMaker used by tests that don't need an actual
// board placement.
type passMove struct{}

func (passMove) Action() PlayAction               { return PlayActionPass }
func (passMove) Score() int                       { return 0 }
func (passMove) Tiles() tilemapping.MachineWord    { return nil }
func (passMove) Leave() tilemapping.MachineWord    { return nil }
func (passMove) TilesPlayed() int                  { return 0 }
func (passMove) RowStart() int                     { return 0 }
func (passMove) ColStart() int                     { return 0 }
func (passMove) Vertical() bool                    { return false }
