package movegen

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/klv"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Generator enumerates every legal play for a rack/board combination
// (spec §4.6). One Generator is built per (lexicon, variant) registry
// entry and shared read-only across requests; GenAll takes its own
// scratch board copy so concurrent callers never interfere.
type Generator struct {
	Graph      *kwg.KWG
	Leaves     *klv.Leaves
	Dist       *tilemapping.LetterDistribution
	Jumbled    bool
	BingoBonus int
	RackSize   int
}

// NewGenerator builds a Generator over an already-loaded graph/leave
// store, mirroring the call shape of the teacher pack's
// movegen.NewGordonGenerator(gd, bd, ld) (see
// vividsid94-scrabble-move-generator/main-for-scrabble.go) adapted to a
// per-request rather than long-lived-board API.
func NewGenerator(graph *kwg.KWG, leaves *klv.Leaves, dist *tilemapping.LetterDistribution, jumbled bool, bingoBonus, rackSize int) *Generator {
	return &Generator{Graph: graph, Leaves: leaves, Dist: dist, Jumbled: jumbled, BingoBonus: bingoBonus, RackSize: rackSize}
}

// searchState carries the mutable context threaded through the
// recursive placement search so the recursive signature stays small.
type searchState struct {
	b      *board.GameBoard
	rack   *tilemapping.Rack
	alph   *tilemapping.TileMapping
	down   bool
	lane   int
	start  int
	anchor int
	dim    int
	seen   map[string]bool
	plays  *[]*Play
}

// GenAll enumerates every legal play for rack on b: every placement
// reachable from an anchor square, every non-empty exchange subset, and
// Pass. It never raises; an empty board with an empty rack yields only
// Pass (spec §4.6 failure mode).
func (g *Generator) GenAll(b *board.GameBoard, rack *tilemapping.Rack) []*Play {
	alph := g.Dist.Alphabet()
	plays := []*Play{NewPassPlay(alph)}

	g.genExchanges(rack, alph, &plays)

	scratch := b.Copy()
	seen := map[string]bool{}
	dim := scratch.Dim()

	type cell struct{ row, col int }
	all := make([]cell, 0, dim*dim)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			all = append(all, cell{row, col})
		}
	}
	anchors := lo.Filter(all, func(c cell, _ int) bool { return scratch.IsAnchor(c.row, c.col) })
	for _, c := range anchors {
		g.searchFromAnchor(scratch, rack, alph, false, c.row, c.col, seen, &plays)
		g.searchFromAnchor(scratch, rack, alph, true, c.row, c.col, seen, &plays)
	}

	sortPlays(plays)
	return plays
}

func (g *Generator) searchFromAnchor(b *board.GameBoard, rack *tilemapping.Rack, alph *tilemapping.TileMapping,
	down bool, anchorRow, anchorCol int, seen map[string]bool, plays *[]*Play) {

	lane, anchorIdx := anchorRow, anchorCol
	if down {
		lane, anchorIdx = anchorCol, anchorRow
	}
	s := b.Across(lane)
	if down {
		s = b.Down(lane)
	}
	dim := s.Len()
	rackSize := rack.NumTiles()
	if rackSize == 0 {
		return
	}

	// Walk left from the anchor: filled squares are played through for
	// free, and at most rackSize-1 empty squares may precede the anchor.
	minStart := anchorIdx
	for empties := 0; minStart > 0; minStart-- {
		r, c := rowColFor(board.Placement{Down: down, Lane: lane}, minStart-1)
		if b.IsEmpty(r, c) {
			if empties == rackSize-1 {
				break
			}
			empties++
		}
	}
	for start := minStart; start <= anchorIdx; start++ {
		if start > 0 {
			r, c := rowColFor(board.Placement{Down: down, Lane: lane}, start-1)
			if !b.IsEmpty(r, c) {
				continue
			}
		}
		st := &searchState{b: b, rack: rack.Copy(), alph: alph, down: down, lane: lane, start: start, anchor: anchorIdx, dim: dim, seen: seen, plays: plays}
		rootArc := g.Graph.ArcIndex(g.Graph.GetRootNodeIndex())
		g.extend(st, start, rootArc, 0, nil, nil, 0)
	}
}

// extend is the recursive backtracking placement search. pos is the
// lane position about to be filled; arc/curNode track the forward KWG
// walk (ignored under jumbled rules, where only the final multiset
// matters); tiles/actual carry the placement-so-far (tiles uses 0 for
// play-through squares, actual carries the literal letter either way).
func (g *Generator) extend(st *searchState, pos int, arc uint32, curNode uint32, tiles, actual tilemapping.MachineWord, newCount int) {
	if pos >= st.dim {
		return
	}
	row, col := rowColFor(board.Placement{Down: st.down, Lane: st.lane}, pos)
	existing := st.b.GetLetter(row, col)

	type candidate struct {
		ml    tilemapping.MachineLetter
		isNew bool
	}
	var candidates []candidate
	if existing != 0 {
		candidates = []candidate{{existing, false}}
	} else {
		for idx, cnt := range st.rack.LetArr {
			if idx == 0 || cnt == 0 {
				continue
			}
			candidates = append(candidates, candidate{tilemapping.MachineLetter(idx), true})
		}
		if st.rack.LetArr[0] > 0 {
			for idx := 1; idx <= st.alph.NumLetters(); idx++ {
				candidates = append(candidates, candidate{tilemapping.MachineLetter(idx) | tilemapping.BlankMask, true})
			}
		}
	}

	for _, c := range candidates {
		dictLetter := c.ml.Unblank()
		var nextArc, nextNode uint32
		if !g.Jumbled {
			found := g.Graph.Seek(arc, dictLetter)
			if found < 0 {
				continue
			}
			nextNode = uint32(found)
			nextArc = g.Graph.ArcIndex(nextNode)
		}

		if c.isNew {
			if c.ml.IsBlanked() {
				st.rack.LetArr[0]--
			} else {
				st.rack.LetArr[int(c.ml)]--
			}
			st.b.SetLetter(row, col, c.ml)
		}

		placedTile := tilemapping.PlayedThroughMarker
		if c.isNew {
			placedTile = c.ml
		}
		nextTiles := append(append(tilemapping.MachineWord(nil), tiles...), placedTile)
		nextActual := append(append(tilemapping.MachineWord(nil), actual...), c.ml)
		nextNewCount := newCount
		if c.isNew {
			nextNewCount++
		}

		wordLen := pos - st.start + 1
		coversAnchor := pos >= st.anchor
		nextPos := pos + 1
		nextIsEmpty := nextPos >= st.dim
		if !nextIsEmpty {
			nr, nc := rowColFor(board.Placement{Down: st.down, Lane: st.lane}, nextPos)
			nextIsEmpty = st.b.IsEmpty(nr, nc)
		}

		if coversAnchor && nextNewCount >= 1 && wordLen >= 2 && nextIsEmpty {
			accepted := false
			if g.Jumbled {
				accepted = g.Graph.AcceptsAlpha(nextActual)
			} else {
				accepted = g.Graph.Accepts(nextNode)
			}
			if accepted {
				g.tryEmit(st, nextTiles)
			}
		}

		if nextPos < st.dim {
			g.extend(st, nextPos, nextArc, nextNode, nextTiles, nextActual, nextNewCount)
		}

		if c.isNew {
			st.b.SetLetter(row, col, 0)
			if c.ml.IsBlanked() {
				st.rack.LetArr[0]++
			} else {
				st.rack.LetArr[int(c.ml)]++
			}
		}
	}
}

func (g *Generator) tryEmit(st *searchState, tiles tilemapping.MachineWord) {
	p := board.Placement{Down: st.down, Lane: st.lane, Idx: st.start, Tiles: tiles}
	for _, cw := range st.b.CrossWords(p) {
		if g.Jumbled {
			if !g.Graph.AcceptsAlpha(cw) {
				return
			}
		} else if !g.Graph.AcceptsWord(cw) {
			return
		}
	}

	rowStart, colStart := rowColFor(board.Placement{Down: st.down, Lane: st.lane}, st.start)
	key := fmt.Sprintf("%v|%d|%d|%s", st.down, rowStart, colStart, st.alph.FormatPlay(tiles))
	if st.seen[key] {
		return
	}
	st.seen[key] = true

	score := scorePlacement(st.b, p, st.alph, g.BingoBonus, g.RackSize)
	newCount := 0
	for _, t := range tiles {
		if t != tilemapping.PlayedThroughMarker {
			newCount++
		}
	}
	leave := st.rack.TilesOn()
	lv := g.Leaves.LeaveValue(leave)
	play := NewPlacementPlay(score, tiles, leave, st.down, rowStart, colStart, newCount, st.alph)
	play.SetEquity(equity(score, leave, lv, st.alph))
	*st.plays = append(*st.plays, play)
}

// genExchanges emits one Exchange candidate per non-empty sub-multiset of
// rack (spec §4.6: "for every non-empty subset of the rack... emit
// Exchange{tiles}").
func (g *Generator) genExchanges(rack *tilemapping.Rack, alph *tilemapping.TileMapping, plays *[]*Play) {
	present := lo.Filter(lo.Range(len(rack.LetArr)), func(idx int, _ int) bool { return rack.LetArr[idx] > 0 })
	types := present
	if len(types) == 0 {
		return
	}
	counts := make([]int, len(types))
	var rec func(i int)
	rec = func(i int) {
		if i == len(types) {
			total := 0
			for _, c := range counts {
				total += c
			}
			if total == 0 {
				return
			}
			var tiles tilemapping.MachineWord
			for j, idx := range types {
				for k := 0; k < counts[j]; k++ {
					tiles = append(tiles, tilemapping.MachineLetter(idx))
				}
			}
			leave := leaveAfterExchange(rack, tiles)
			p := NewExchangePlay(tiles, leave, alph)
			lv := g.Leaves.LeaveValue(leave)
			p.SetEquity(equity(0, leave, lv, alph))
			*plays = append(*plays, p)
			return
		}
		maxCount := int(rack.LetArr[types[i]])
		for c := 0; c <= maxCount; c++ {
			counts[i] = c
			rec(i + 1)
		}
	}
	rec(0)
}

func leaveAfterExchange(rack *tilemapping.Rack, exchanged tilemapping.MachineWord) tilemapping.MachineWord {
	remaining := rack.Copy()
	for _, t := range exchanged {
		remaining.Take(t)
	}
	return remaining.TilesOn()
}
