package kwg

import "github.com/andy-k/omgbot/internal/tilemapping"

// AcceptsAlpha implements the alpha-DAWG (KAD) query: it succeeds iff some
// permutation of multiset is an accepted sequence in the graph, i.e.
// "∃ permutation π : seek(π(word)) accepts" (spec §8 property 7). Used
// only for jumbled ("wordsmog") rules.
//
// A depth-first traversal respects the available count per tile: at each
// node we only try arcs whose tile still has remaining count, decrement,
// recurse, and restore on backtrack. This is depth-first over at most
// len(multiset) levels with branching bounded by the graph's fan-out, so
// it stays fast for rack-sized (<= 7, or <= 21 for super) multisets.
func (k *KWG) AcceptsAlpha(multiset tilemapping.MachineWord) bool {
	counts := make(map[tilemapping.MachineLetter]int, len(multiset))
	total := 0
	for _, ml := range multiset {
		counts[ml.Unblank()]++
		total++
	}
	return k.acceptsAlphaFrom(k.ArcIndex(k.GetRootNodeIndex()), counts, total)
}

func (k *KWG) acceptsAlphaFrom(arc uint32, counts map[tilemapping.MachineLetter]int, remaining int) bool {
	if remaining == 0 {
		// The caller already verified the previous node accepts; this
		// branch only reaches here via the top-level empty-multiset case.
		return false
	}
	if arc == 0 {
		return false
	}
	p := arc
	for {
		n := k.node(p)
		tile := n.Tile()
		if counts[tile] > 0 {
			counts[tile]--
			if remaining == 1 {
				if n.Accepts() {
					counts[tile]++
					return true
				}
			} else if k.acceptsAlphaFrom(k.ArcIndex(p), counts, remaining-1) {
				counts[tile]++
				return true
			}
			counts[tile]++
		}
		if n.IsEnd() {
			return false
		}
		p++
	}
}
