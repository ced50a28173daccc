// Package klv implements the leave-value store (component C3): a KWG
// whose accepted "words" are sorted rack multisets, paired with a
// parallel array of float32 leave values addressed by the position index
// assigned during the underlying DAWG traversal.
package klv

import (
	"sort"

	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Leaves maps canonicalized rack multisets to their leave value.
type Leaves struct {
	graph  *kwg.KWG
	values []float32
	// leafIndex maps an accepting node index to its slot in values,
	// mirroring how the teacher's KLV assigns one DAWG traversal position
	// per accepted multiset.
	leafIndex map[uint32]int
}

// NewLeaves builds a Leaves store from a KWG over rack multisets and a
// parallel slice of values, one per accepting node in graph (in the order
// graph's nodes appear).
func NewLeaves(graph *kwg.KWG, values []float32, leafNodeIndices []uint32) *Leaves {
	idx := make(map[uint32]int, len(leafNodeIndices))
	for i, n := range leafNodeIndices {
		idx[n] = i
	}
	return &Leaves{graph: graph, values: values, leafIndex: idx}
}

// EmptyLeaves returns the constant empty-KLV: LeaveValue is 0.0 for every
// rack. The lexicon registry falls back to it when no leave file loads
// (spec §4.3).
func EmptyLeaves() *Leaves {
	return &Leaves{}
}

// LeaveValue canonicalizes rack (sorted by tile) and returns its stored
// value, or 0.0 if the rack multiset isn't present.
func (l *Leaves) LeaveValue(rack tilemapping.MachineWord) float32 {
	if l.graph == nil || len(rack) == 0 {
		return 0.0
	}
	sorted := append(tilemapping.MachineWord(nil), rack...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	p := l.graph.GetRootNodeIndex()
	arc := l.graph.ArcIndex(p)
	for i, ml := range sorted {
		found := l.graph.Seek(arc, ml.Unblank())
		if found < 0 {
			return 0.0
		}
		p = uint32(found)
		if i == len(sorted)-1 {
			if !l.graph.Accepts(p) {
				return 0.0
			}
			if slot, ok := l.leafIndex[p]; ok && slot < len(l.values) {
				return l.values[slot]
			}
			return 0.0
		}
		arc = l.graph.ArcIndex(p)
	}
	return 0.0
}
