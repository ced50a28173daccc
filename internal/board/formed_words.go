package board

import "github.com/andy-k/omgbot/internal/tilemapping"

// Placement describes one tile-placement event in direction/lane/idx
// terms shared by the validator (C6), the move generator (C7), and the
// tilt filter (C8)'s FormedWords lookups.
//
// Down is true for vertical plays. Lane is the row (horizontal) or column
// (vertical); Idx is the starting position along the lane. Tiles holds
// the played tiles in lane order; a 0 entry means "play-through", i.e.
// the board already held a tile there.
type Placement struct {
	Down  bool
	Lane  int
	Idx   int
	Tiles tilemapping.MachineWord
}

// strider returns the lane strider this placement runs along.
func (b *GameBoard) strider(p Placement) Strider {
	if p.Down {
		return b.Down(p.Lane)
	}
	return b.Across(p.Lane)
}

// rowCol maps a strider position to board coordinates.
func (b *GameBoard) rowCol(p Placement, pos int) (int, int) {
	if p.Down {
		return pos, p.Lane
	}
	return p.Lane, pos
}

// MainWord reads the full contiguous word along p's lane that covers the
// placement, assuming p.Tiles is already reflected on the board. It scans
// backward to the nearest empty square, then forward to the next empty
// square or the strider's end.
func (b *GameBoard) MainWord(p Placement) tilemapping.MachineWord {
	s := b.strider(p)
	start := p.Idx
	for start > 0 {
		r, c := b.rowCol(p, start-1)
		if b.IsEmpty(r, c) {
			break
		}
		start--
	}
	var word tilemapping.MachineWord
	for i := start; i < s.Len(); i++ {
		r, c := b.rowCol(p, i)
		if b.IsEmpty(r, c) {
			break
		}
		word = append(word, b.GetLetter(r, c))
	}
	return word
}

// CrossWords returns, for each non-play-through tile in p.Tiles, the
// perpendicular word it extends (nil if that tile has no perpendicular
// neighbor, i.e. it forms no cross word). Assumes p.Tiles is already on
// the board.
func (b *GameBoard) CrossWords(p Placement) []tilemapping.MachineWord {
	out := make([]tilemapping.MachineWord, 0, len(p.Tiles))
	for i, t := range p.Tiles {
		if t == tilemapping.PlayedThroughMarker {
			continue
		}
		row, col := b.rowCol(p, p.Idx+i)
		var perp Placement
		if p.Down {
			perp = Placement{Down: false, Lane: row, Idx: col}
		} else {
			perp = Placement{Down: true, Lane: col, Idx: row}
		}
		w := b.MainWord(perp)
		if len(w) > 1 {
			out = append(out, w)
		}
	}
	return out
}

// IsAnchor reports whether (row, col) is a legal anchor square: empty and
// orthogonally adjacent to a filled square, or the centre star on an
// empty board (spec §4.6).
func (b *GameBoard) IsAnchor(row, col int) bool {
	if !b.IsEmpty(row, col) {
		return false
	}
	if b.IsEmptyBoard() {
		return b.IsCenterSquare(row, col)
	}
	return !b.IsEmpty(row-1, col) || !b.IsEmpty(row+1, col) ||
		!b.IsEmpty(row, col-1) || !b.IsEmpty(row, col+1)
}
