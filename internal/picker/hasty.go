// Package picker implements the move picker (component C9): Hasty
// (best-of-filtered-candidates) and Simmer (Monte-Carlo playout
// comparison), both fed by a shared movegen.Generator.
package picker

import (
	"sort"

	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/movegen"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Hasty generates, filters, and returns the single highest-equity
// candidate (spec §4.8: "run generator through filter, return the
// highest-equity candidate").
type Hasty struct {
	Gen *movegen.Generator
}

// NewHasty wraps an already-built generator.
func NewHasty(gen *movegen.Generator) *Hasty {
	return &Hasty{Gen: gen}
}

// Pick runs GenAll, the filter, and (for Tilt states) a leave-rescaled
// re-rank, returning the winner. Pass is always a legal fallback, so this
// never returns nil.
func (h *Hasty) Pick(b *board.GameBoard, rack *tilemapping.Rack, filt filter.State, jumbled bool, rng *frand.RNG) *movegen.Play {
	plays := h.Gen.GenAll(b, rack)
	plays = filt.Apply(plays, jumbled, rng)
	if len(plays) == 0 {
		return movegen.NewPassPlay(h.Gen.Dist.Alphabet())
	}
	if filt.Mode == filter.ModeUnfiltered {
		return plays[0]
	}
	sort.SliceStable(plays, func(i, j int) bool {
		return filt.AdjustedEquity(plays[i]) > filt.AdjustedEquity(plays[j])
	})
	return plays[0]
}
