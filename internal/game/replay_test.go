package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// buildAcceptsATGraph builds a two-node KWG (via the real Load entry
// point, not package-internal literals) that accepts exactly "AT".
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
		0, 0, 1, 0, // root: arc -> node 1
		byte(a[0]), 2, 2, 0, // node 1: tile A, is_end, arc -> node 2
		byte(tt[0]), 3, 0, 0, // node 2: tile T, accepts+is_end
	}
	g, err := kwg.Load("TEST", alph, raw, false, false)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestReplayHistoryPlacesTilesAndSetsScore(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	hist := &pb.GameHistory{
		Players: [2]pb.PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
		Events: []pb.GameEvent{
			{Type: pb.EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "AT", Cumulative: 4},
		},
	}
	res, err := ReplayHistory(cfg, hist, nil, false)
	is.NoErr(err)
	is.True(!res.Challenged)
	is.Equal(res.Game.Players[0].Score, 4)
	is.Equal(res.Game.Board.GetLetter(7, 7), mustLetter(t, cfg.Alphabet, "A"))
	is.Equal(res.Game.Board.GetLetter(7, 8), mustLetter(t, cfg.Alphabet, "T"))
	is.Equal(res.Game.Turn, 1)
}

func TestReplayHistoryFlagsPhonyFinalPlacement(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	graph := buildAcceptsATGraph(t, cfg.Alphabet)
	hist := &pb.GameHistory{
		Players: [2]pb.PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
		Events: []pb.GameEvent{
			{Type: pb.EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "ZZ", Cumulative: 20},
		},
	}
	res, err := ReplayHistory(cfg, hist, graph, false)
	is.NoErr(err)
	is.True(res.Challenged)
}

func TestReplayHistoryDoesNotCheckNonFinalPlacements(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	graph := buildAcceptsATGraph(t, cfg.Alphabet)
	hist := &pb.GameHistory{
		Players: [2]pb.PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
		Events: []pb.GameEvent{
			{Type: pb.EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "ZZ", Cumulative: 20},
			{Type: pb.EventPass, PlayerIndex: 1, Nickname: "bob", Cumulative: 0},
		},
	}
	res, err := ReplayHistory(cfg, hist, graph, false)
	is.NoErr(err)
	is.True(!res.Challenged)
	is.Equal(res.Game.Turn, 0)
}

func TestReplayHistoryPhonyTilesReturnedRetractsPlacement(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	hist := &pb.GameHistory{
		Players: [2]pb.PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
		Events: []pb.GameEvent{
			{Type: pb.EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "ZZ", Cumulative: 20},
			{Type: pb.EventPhonyTilesReturned, PlayerIndex: 0, Nickname: "alice", Cumulative: 0},
		},
	}
	res, err := ReplayHistory(cfg, hist, nil, false)
	is.NoErr(err)
	is.True(!res.Challenged)
	is.True(res.Game.Board.IsEmptyBoard())
	is.Equal(res.Game.Players[0].Score, 0)
}

func TestReplayHistoryRejectsPlacementOverlappingFilledSquare(t *testing.T) {
	is := is.New(t)
	cfg := testConfig(t)
	hist := &pb.GameHistory{
		Players: [2]pb.PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
		Events: []pb.GameEvent{
			{Type: pb.EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "AT", Cumulative: 4},
			{Type: pb.EventTilePlacement, PlayerIndex: 1, Nickname: "bob",
				Direction: pb.Horizontal, Row: 7, Column: 7, PlayedTiles: "AS", Cumulative: 4},
		},
	}
	_, err := ReplayHistory(cfg, hist, nil, false)
	is.True(err != nil)
}

func mustLetter(t *testing.T, alph *tilemapping.TileMapping, s string) tilemapping.MachineLetter {
	t.Helper()
	mw, err := alph.ParseRack(s)
	if err != nil {
		t.Fatal(err)
	}
	return mw[0]
}
