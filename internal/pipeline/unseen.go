package pipeline

import (
	"fmt"

	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// computeUnseen implements spec §4.10 step 5: the unseen-tile multiset is
// alphabet_frequencies − racks − board, rejecting any negative count
// (more copies of a letter accounted for than the distribution holds).
func computeUnseen(dist *tilemapping.LetterDistribution, b *board.GameBoard,
	racks ...tilemapping.MachineWord) ([]tilemapping.MachineLetter, error) {

	alph := dist.Alphabet()
	counts := make([]int, alph.NumLetters()+1)
	for idx := range counts {
		counts[idx] = int(alph.Freq(tilemapping.MachineLetter(idx)))
	}

	dim := b.Dim()
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			t := b.GetLetter(r, c)
			if t == 0 {
				continue
			}
			idx := t.IntrinsicTileIdx()
			counts[idx]--
		}
	}
	for _, rack := range racks {
		for _, t := range rack {
			counts[t.IntrinsicTileIdx()]--
		}
	}

	var unseen []tilemapping.MachineLetter
	for idx, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("pipeline: accounted-for tiles exceed the distribution at letter index %d", idx)
		}
		for i := 0; i < n; i++ {
			unseen = append(unseen, tilemapping.MachineLetter(idx))
		}
	}
	return unseen, nil
}
