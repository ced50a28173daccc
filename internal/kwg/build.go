package kwg

import (
	"sort"

	"github.com/andy-k/omgbot/internal/tilemapping"
)

// trieNode is the intermediate build-time representation; BuildFromWords
// serializes it into the same flat Node array Load produces, so every
// other accessor in this package is agnostic to how a graph was built.
type trieNode struct {
	children map[tilemapping.MachineLetter]*trieNode
	accepts  bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: map[tilemapping.MachineLetter]*trieNode{}}
}

func (t *trieNode) insert(word tilemapping.MachineWord) {
	cur := t
	for _, ml := range word {
		ml = ml.Unblank()
		child, ok := cur.children[ml]
		if !ok {
			child = newTrieNode()
			cur.children[ml] = child
		}
		cur = child
	}
	cur.accepts = true
}

// BuildFromWords builds a KWG directly from a word list: an unminimized
// trie flattened into the package's node-array layout (not the fully
// minimized DAWG a production lexicon compiler would emit — this is a
// documented simplification; see DESIGN.md). Used by the lexicon registry
// to materialize the common-word sublexicon (spec §4.9): the intersection
// of a larger lexicon with a reference word list like ECWL/CGL.
func BuildFromWords(lexiconName string, alph *tilemapping.TileMapping, words []tilemapping.MachineWord) (*KWG, error) {
	root := newTrieNode()
	for _, w := range words {
		root.insert(w)
	}

	nodes := make([]Node, 1) // index 0: synthetic root header, arc patched below
	type queued struct {
		tn   *trieNode
		slot int
	}
	queue := []queued{{root, 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if len(it.tn.children) == 0 {
			continue
		}
		letters := make([]tilemapping.MachineLetter, 0, len(it.tn.children))
		for l := range it.tn.children {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

		start := len(nodes)
		for i, l := range letters {
			child := it.tn.children[l]
			nodes = append(nodes, makeNode(l, child.accepts, i == len(letters)-1, 0))
			queue = append(queue, queued{child, start + i})
		}
		existing := nodes[it.slot]
		nodes[it.slot] = makeNode(existing.Tile(), existing.Accepts(), existing.IsEnd(), int32(start))
	}

	return &KWG{lexiconName: lexiconName, alph: alph, nodes: nodes}, nil
}
