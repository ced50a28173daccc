package movegen

import (
	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// rowColFor maps a strider position along p's lane to board coordinates.
// Mirrors board's own unexported rowCol (formed_words.go); duplicated here
// since Placement carries public fields but not that helper.
func rowColFor(p board.Placement, pos int) (int, int) {
	if p.Down {
		return pos, p.Lane
	}
	return p.Lane, pos
}

// scorePlacement computes the play's score, assuming p.Tiles is already
// reflected on b: the main word's value (premiums applied only to newly-
// placed squares), plus every newly-placed tile's cross word, plus the
// bingo bonus if the play places rackSize tiles (spec §4.6).
func scorePlacement(b *board.GameBoard, p board.Placement, alph *tilemapping.TileMapping, bingoBonus, rackSize int) int {
	wordMult := 1
	mainSum := 0
	newCount := 0
	for i, t := range p.Tiles {
		row, col := rowColFor(p, p.Idx+i)
		if t == tilemapping.PlayedThroughMarker {
			mainSum += alph.Score(b.GetLetter(row, col))
			continue
		}
		newCount++
		mainSum += alph.Score(t) * b.LetterMultiplier(row, col)
		wordMult *= b.WordMultiplier(row, col)
	}
	total := mainSum * wordMult

	for i, t := range p.Tiles {
		if t == tilemapping.PlayedThroughMarker {
			continue
		}
		row, col := rowColFor(p, p.Idx+i)
		total += crossWordScore(b, p.Down, row, col, t, alph)
	}

	if newCount == rackSize {
		total += bingoBonus
	}
	return total
}

// crossWordScore sums the perpendicular word through (row, col), applying
// (row, col)'s own letter/word multiplier (it is the only newly-placed
// square in that word) and every other square's plain value. Returns 0 if
// there is no perpendicular word (neighbors on both sides are empty).
func crossWordScore(b *board.GameBoard, mainDown bool, row, col int, newTile tilemapping.MachineLetter, alph *tilemapping.TileMapping) int {
	perp := board.Placement{Down: !mainDown}
	if mainDown {
		perp.Lane, perp.Idx = row, col
	} else {
		perp.Lane, perp.Idx = col, row
	}
	s := b.Across(perp.Lane)
	if perp.Down {
		s = b.Down(perp.Lane)
	}
	start := perp.Idx
	for start > 0 {
		r, c := rowColFor(perp, start-1)
		if b.IsEmpty(r, c) {
			break
		}
		start--
	}
	end := perp.Idx
	for end+1 < s.Len() {
		r, c := rowColFor(perp, end+1)
		if b.IsEmpty(r, c) {
			break
		}
		end++
	}
	if start == end {
		return 0
	}
	sum := 0
	for pos := start; pos <= end; pos++ {
		if pos == perp.Idx {
			sum += alph.Score(newTile) * b.LetterMultiplier(row, col)
			continue
		}
		r, c := rowColFor(perp, pos)
		sum += alph.Score(b.GetLetter(r, c))
	}
	return sum * b.WordMultiplier(row, col)
}

// equity combines raw score with estimated leave value and a small
// positional adjustment (spec §4.6: "equity = score + leave_value +
// positional_heuristics"). The positional term is deliberately minimal: a
// per-vowel penalty on the leave, the same shape as the teacher's
// "shared tiles" leave heuristics referenced in ai/runner but computed
// locally here since that package was not carried forward.
func equity(score int, leave tilemapping.MachineWord, leaveValue float32, alph *tilemapping.TileMapping) float64 {
	positional := 0.0
	for _, t := range leave {
		if isVowel(t, alph) {
			positional -= 0.05
		}
	}
	return float64(score) + float64(leaveValue) + positional
}

func isVowel(t tilemapping.MachineLetter, alph *tilemapping.TileMapping) bool {
	switch alph.FormatBoardTile(t.Unblank()) {
	case "A", "E", "I", "O", "U":
		return true
	}
	return false
}
