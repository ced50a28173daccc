package game

import (
	"errors"

	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Bag is an ordered sequence of tile codes; the head (index 0) is the
// next tile to be drawn. Shuffling is uniform over the remaining
// sequence. One Bag belongs to exactly one in-flight request's GameState
// and is never shared across requests (spec §3).
type Bag struct {
	tiles []tilemapping.MachineLetter
	dist  *tilemapping.LetterDistribution
}

// NewBag builds a full, unshuffled bag from a letter distribution.
func NewBag(dist *tilemapping.LetterDistribution) *Bag {
	alph := dist.Alphabet()
	b := &Bag{dist: dist}
	b.tiles = make([]tilemapping.MachineLetter, 0, dist.NumLetters())
	for tok, freq := range dist.Distribution {
		var ml tilemapping.MachineLetter
		if tok == "?" {
			ml = tilemapping.BlankMachineLetter
		} else {
			mw, err := alph.ParseRack(tok)
			if err != nil || len(mw) != 1 {
				continue
			}
			ml = mw[0]
		}
		for i := uint8(0); i < freq; i++ {
			b.tiles = append(b.tiles, ml)
		}
	}
	return b
}

// NewBagFromTiles builds a bag directly from an explicit tile sequence,
// used by the request pipeline once it has computed the unseen-tile
// multiset (spec §4.10 step 5-6).
func NewBagFromTiles(dist *tilemapping.LetterDistribution, tiles []tilemapping.MachineLetter) *Bag {
	b := &Bag{dist: dist, tiles: append([]tilemapping.MachineLetter(nil), tiles...)}
	return b
}

// LetterDistribution returns the distribution this bag was built from.
func (b *Bag) LetterDistribution() *tilemapping.LetterDistribution { return b.dist }

// TilesRemaining returns the number of tiles left in the bag.
func (b *Bag) TilesRemaining() int { return len(b.tiles) }

// Shuffle randomizes the bag's remaining tile order using a per-goroutine
// RNG (spec §5: "one per worker thread, seeded from OS entropy; never
// shared across threads").
func (b *Bag) Shuffle(rng *frand.RNG) {
	rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw removes and returns exactly n tiles from the bag's head. It errors
// if fewer than n tiles remain.
func (b *Bag) Draw(n int) ([]tilemapping.MachineLetter, error) {
	if n > len(b.tiles) {
		return nil, errors.New("game: not enough tiles in bag")
	}
	drawn := append([]tilemapping.MachineLetter(nil), b.tiles[:n]...)
	b.tiles = b.tiles[n:]
	return drawn, nil
}

// DrawAtMost draws up to n tiles, drawing fewer (even zero) if the bag
// doesn't have enough; it never errors.
func (b *Bag) DrawAtMost(n int) []tilemapping.MachineLetter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := append([]tilemapping.MachineLetter(nil), b.tiles[:n]...)
	b.tiles = b.tiles[n:]
	return drawn
}

// Exchange returns the given tiles to the bag (after shuffling them in
// conceptually, handled by the caller drawing fresh ones first) and draws
// replacement tiles of the same count.
func (b *Bag) Exchange(tiles []tilemapping.MachineLetter) ([]tilemapping.MachineLetter, error) {
	if len(tiles) > len(b.tiles) {
		return nil, errors.New("game: not enough tiles in bag to exchange")
	}
	drawn, err := b.Draw(len(tiles))
	if err != nil {
		return nil, err
	}
	b.tiles = append(b.tiles, tiles...)
	return drawn, nil
}

// RemoveTiles removes the given tiles from the bag (used when
// reconstructing a bag state from an explicit unseen-tile computation and
// one more tile needs pulling out for a specific scenario, e.g. tests).
func (b *Bag) RemoveTiles(tiles []tilemapping.MachineLetter) error {
	for _, t := range tiles {
		idx := -1
		for i, bt := range b.tiles {
			if bt == t {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errors.New("game: tile not found in bag")
		}
		b.tiles = append(b.tiles[:idx], b.tiles[idx+1:]...)
	}
	return nil
}

// Copy returns a deep copy of the bag (used by the simmer between
// playouts).
func (b *Bag) Copy() *Bag {
	return &Bag{dist: b.dist, tiles: append([]tilemapping.MachineLetter(nil), b.tiles...)}
}
