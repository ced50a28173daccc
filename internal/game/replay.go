package game

import (
	"fmt"

	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// ReplayResult is the outcome of replaying a game's history.
type ReplayResult struct {
	Game       *Game
	Challenged bool // the final placement was phony; pipeline should reply Challenge
}

type placedCell struct{ row, col int }

// ValidatePlacement checks one tile-placement event against board and,
// when graph is non-nil, against the lexicon (spec §4.5). It mutates
// board, filling in the newly-placed (non-play-through) tiles, and
// returns the list of cells it filled (so a later PhonyTilesReturned
// event can retract them) along with whether the formed word(s) are
// accepted. A non-nil error means the placement is structurally
// inconsistent (not a phony-word case, a genuine malformed-history
// error); wordOK=false with a nil error means "structurally fine, but
// spells a non-word" (spec step 9 — the caller turns this into a
// Challenge response, not an error).
func ValidatePlacement(b *board.GameBoard, p board.Placement, graph *kwg.KWG, jumbled bool) (wordOK bool, cells []placedCell, err error) {
	s := b.Across(p.Lane)
	if p.Down {
		s = b.Down(p.Lane)
	}

	if len(p.Tiles) < 2 {
		return false, nil, fmt.Errorf("game: placement covers fewer than 2 squares")
	}
	anyNew := false
	for _, t := range p.Tiles {
		if t != tilemapping.PlayedThroughMarker {
			anyNew = true
			break
		}
	}
	if !anyNew {
		return false, nil, fmt.Errorf("game: placement has no new tiles")
	}

	end := p.Idx + len(p.Tiles)
	if end > s.Len() {
		return false, nil, fmt.Errorf("game: placement extends past the edge of the board")
	}
	if p.Idx > 0 {
		r, c := rowColFor(p, p.Idx-1)
		if !b.IsEmpty(r, c) {
			return false, nil, fmt.Errorf("game: placement has a non-empty square immediately before it (prefix conflict)")
		}
	}
	if end < s.Len() {
		r, c := rowColFor(p, end)
		if !b.IsEmpty(r, c) {
			return false, nil, fmt.Errorf("game: placement has a non-empty square immediately after it (suffix conflict)")
		}
	}

	cells = make([]placedCell, 0, len(p.Tiles))
	for i, t := range p.Tiles {
		r, c := rowColFor(p, p.Idx+i)
		if t == tilemapping.PlayedThroughMarker {
			if b.IsEmpty(r, c) {
				return false, nil, fmt.Errorf("game: play-through square at (%d,%d) is empty", r, c)
			}
			continue
		}
		if !b.IsEmpty(r, c) {
			return false, nil, fmt.Errorf("game: square at (%d,%d) is already occupied", r, c)
		}
		b.SetLetter(r, c, t)
		cells = append(cells, placedCell{r, c})
	}

	// Step 7 (spec §4.5, open question in §9): first-move star coverage
	// and connectivity are deliberately NOT enforced here. History is
	// trusted to have been legal when it was produced.

	if graph == nil {
		return true, cells, nil
	}

	main := b.MainWord(p)
	if !acceptsWord(graph, main, jumbled) {
		return false, cells, nil
	}
	for _, cw := range b.CrossWords(p) {
		if !acceptsWord(graph, cw, jumbled) {
			return false, cells, nil
		}
	}
	return true, cells, nil
}

// rowColFor maps a strider position along p's lane to board coordinates,
// mirroring board's own (unexported) rowCol since Placement's fields are
// public but the mapping helper isn't.
func rowColFor(p board.Placement, pos int) (int, int) {
	if p.Down {
		return pos, p.Lane
	}
	return p.Lane, pos
}

func acceptsWord(graph *kwg.KWG, word tilemapping.MachineWord, jumbled bool) bool {
	if jumbled {
		return graph.AcceptsAlpha(word)
	}
	return graph.AcceptsWord(word)
}

// eventPlayerIndex resolves an event's player either from its explicit
// index or, failing that, by matching its nickname against hist.Players.
func eventPlayerIndex(ev *pb.GameEvent, hist *pb.GameHistory) int {
	if ev.PlayerIndex == 0 || ev.PlayerIndex == 1 {
		if ev.Nickname == "" || ev.Nickname == hist.Players[ev.PlayerIndex].Nickname {
			return ev.PlayerIndex
		}
	}
	for i, p := range hist.Players {
		if p.Nickname == ev.Nickname {
			return i
		}
	}
	return 0
}

func placementFromEvent(ev *pb.GameEvent, alph *tilemapping.TileMapping) (board.Placement, error) {
	tiles, err := alph.ParsePlay(ev.PlayedTiles)
	if err != nil {
		return board.Placement{}, fmt.Errorf("game: malformed played_tiles %q: %w", ev.PlayedTiles, err)
	}
	down := ev.Direction == pb.Vertical
	var lane, idx int
	if down {
		lane, idx = int(ev.Column), int(ev.Row)
	} else {
		lane, idx = int(ev.Row), int(ev.Column)
	}
	return board.Placement{Down: down, Lane: lane, Idx: idx, Tiles: tiles}, nil
}

// ReplayHistory reconstructs a Game by replaying every event of hist in
// order (spec §4.10 step 4). graph, when non-nil, is used to validate the
// word(s) formed by the history's final placement only; every earlier
// placement is trusted.
func ReplayHistory(cfg *Config, hist *pb.GameHistory, graph *kwg.KWG, jumbled bool) (*ReplayResult, error) {
	if len(hist.Players) != 2 || hist.Players[0].Nickname == "" || hist.Players[1].Nickname == "" {
		return nil, fmt.Errorf("game: history must name exactly two players")
	}
	if hist.Players[0].Nickname == hist.Players[1].Nickname {
		return nil, fmt.Errorf("game: two players with same nickname not supported")
	}

	g := NewGame(cfg, hist.Players[0].Nickname, hist.Players[1].Nickname)
	var lastCells []placedCell

	for i := range hist.Events {
		ev := &hist.Events[i]
		pIdx := eventPlayerIndex(ev, hist)
		isLastEvent := i == len(hist.Events)-1

		switch ev.Type {
		case pb.EventTilePlacement:
			p, err := placementFromEvent(ev, cfg.Alphabet)
			if err != nil {
				return nil, err
			}
			var checkGraph *kwg.KWG
			if isLastEvent {
				checkGraph = graph
			}
			wordOK, cells, err := ValidatePlacement(g.Board, p, checkGraph, jumbled)
			if err != nil {
				return nil, err
			}
			lastCells = cells
			g.Players[pIdx].Score = int(ev.Cumulative)
			if isLastEvent && !wordOK {
				return &ReplayResult{Game: g, Challenged: true}, nil
			}
		case pb.EventPhonyTilesReturned:
			for _, c := range lastCells {
				g.Board.SetLetter(c.row, c.col, 0)
			}
			lastCells = nil
			g.Players[pIdx].Score = int(ev.Cumulative)
		default:
			g.Players[pIdx].Score = int(ev.Cumulative)
		}
	}

	g.Turn = determineTurn(hist)
	return &ReplayResult{Game: g, Challenged: false}, nil
}

// determineTurn implements spec §4.10 step 7: if there are no events, use
// the deprecated_second_went_first bit; else the opposite of the last
// event's player.
func determineTurn(hist *pb.GameHistory) int {
	if len(hist.Events) == 0 {
		if hist.SecondWentFirst {
			return 1
		}
		return 0
	}
	last := &hist.Events[len(hist.Events)-1]
	return eventPlayerIndex(last, hist) ^ 1
}
