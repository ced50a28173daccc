package game

import (
	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Zobrist hashes a game position so the simmer (component C9) can dedupe
// repeated positions within a single playout instead of rescoring them. Adapted from the teacher's zobrist/hash.go, which built
// this for endgame transposition tables (out of this service's scope);
// here it keys a small per-request memo table instead.
type Zobrist struct {
	posTable     [][]uint64
	rackTable    [][]uint64
	toMove       uint64
	boardDim     int
}

const bignum = 1<<63 - 2

// NewZobrist builds fresh random tables sized for boardDim and the
// current alphabet.
func NewZobrist(boardDim int) *Zobrist {
	z := &Zobrist{boardDim: boardDim}
	z.posTable = make([][]uint64, boardDim*boardDim)
	for i := range z.posTable {
		z.posTable[i] = make([]uint64, tilemapping.MaxAlphabetSize*2)
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.rackTable = make([][]uint64, tilemapping.MaxAlphabetSize)
	for i := range z.rackTable {
		z.rackTable[i] = make([]uint64, RackTileLimit+1)
		for j := range z.rackTable[i] {
			z.rackTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.toMove = frand.Uint64n(bignum) + 1
	return z
}

// Hash computes a position key from the board's flat tile array, the
// player-on-turn's rack, and whose turn it is.
func (z *Zobrist) Hash(g *Game) uint64 {
	key := uint64(0)
	dim := g.Board.Dim()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			t := g.Board.GetLetter(r, c)
			if t == 0 {
				continue
			}
			idx := t.IntrinsicTileIdx()
			if t.IsBlanked() {
				idx += tilemapping.MaxAlphabetSize
			}
			key ^= z.posTable[r*dim+c][idx]
		}
	}
	for idx, ct := range g.CurrentPlayer().Rack.LetArr {
		if idx < len(z.rackTable) && int(ct) < len(z.rackTable[idx]) {
			key ^= z.rackTable[idx][ct]
		}
	}
	if g.Turn == 1 {
		key ^= z.toMove
	}
	return key
}
