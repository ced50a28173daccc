package kwg

import (
	"os"

	"github.com/andy-k/omgbot/internal/tilemapping"
)

// LoadFile reads a packed node array off disk and parses it with Load.
// wide should be true for a .kbwg source (5-byte records, 24-bit arc
// index), false for .kwg/.kad (4-byte records, 16-bit arc index).
func LoadFile(path, lexiconName string, alph *tilemapping.TileMapping, isGaddag, wide bool) (*KWG, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(lexiconName, alph, raw, isGaddag, wide)
}
