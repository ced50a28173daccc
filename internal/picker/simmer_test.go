package picker

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/klv"
	"github.com/andy-k/omgbot/internal/movegen"
)

func TestSimmerPickReturnsPassWhenNoCandidates(t *testing.T) {
	is := is.New(t)
	dist := testDist(t)
	alph := dist.Alphabet()
	graph := buildAcceptsATGraph(t, alph)
	cfg := game.NewConfig(game.VarClassic, dist, graph)
	g := game.NewGame(cfg, "p0", "p1")
	zob := game.NewZobrist(g.Board.Dim())

	hasty := NewHasty(movegen.NewGenerator(graph, klv.EmptyLeaves(), dist, false, cfg.BingoBonus, cfg.RackSize))
	sim := NewSimmer(hasty)

	play, err := sim.Pick(context.Background(), g, zob, nil, filter.Unfiltered(), false)
	is.NoErr(err)
	is.Equal(play.Action(), game.PlayActionPass)
}

func TestSimmerPickWithSingleCandidateSkipsPlayouts(t *testing.T) {
	is := is.New(t)
	dist := testDist(t)
	alph := dist.Alphabet()
	graph := buildAcceptsATGraph(t, alph)
	cfg := game.NewConfig(game.VarClassic, dist, graph)
	g := game.NewGame(cfg, "p0", "p1")
	zob := game.NewZobrist(g.Board.Dim())

	hasty := NewHasty(movegen.NewGenerator(graph, klv.EmptyLeaves(), dist, false, cfg.BingoBonus, cfg.RackSize))
	sim := NewSimmer(hasty)

	tiles, err := alph.ParseRack("AT")
	is.NoErr(err)
	only := movegen.NewPlacementPlay(4, tiles, nil, false, 7, 7, 2, alph)

	play, err := sim.Pick(context.Background(), g, zob, []*movegen.Play{only}, filter.Unfiltered(), false)
	is.NoErr(err)
	is.Equal(play, only) // single candidate: alive never exceeds 1, no playout runs
}
