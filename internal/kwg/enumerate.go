package kwg

import "github.com/andy-k/omgbot/internal/tilemapping"

// Enumerate walks every accepted word in lexicographic order (relies on
// Seek's invariant that siblings are sorted by tile) and calls cb for
// each. Stops early if cb returns false. Used to build the common-word
// sublexicon intersection (spec §4.9): "enumerate its words in sorted
// order... intersect... linear merge of two sorted enumerations."
func (k *KWG) Enumerate(cb func(word tilemapping.MachineWord) bool) {
	root := k.GetRootNodeIndex()
	arc := k.ArcIndex(root)
	var prefix tilemapping.MachineWord
	k.enumerateFrom(arc, &prefix, cb)
}

func (k *KWG) enumerateFrom(arc uint32, prefix *tilemapping.MachineWord, cb func(tilemapping.MachineWord) bool) bool {
	if arc == 0 {
		return true
	}
	p := arc
	for {
		n := k.node(p)
		*prefix = append(*prefix, n.Tile())
		if n.Accepts() {
			if !cb(append(tilemapping.MachineWord(nil), *prefix...)) {
				*prefix = (*prefix)[:len(*prefix)-1]
				return false
			}
		}
		if !k.enumerateFrom(k.ArcIndex(p), prefix, cb) {
			*prefix = (*prefix)[:len(*prefix)-1]
			return false
		}
		*prefix = (*prefix)[:len(*prefix)-1]
		if n.IsEnd() {
			return true
		}
		p++
	}
}
