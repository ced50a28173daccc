package klv

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// klvNodeRecSize is the on-disk node width for the KWG embedded in a
// .klv2 file: leave-value graphs are always narrow (never GADDAG, never
// wide-index), per spec §6's ".klv2: an embedded KWG followed by a
// parallel f32 leave-value array."
const klvNodeRecSize = 4

// LoadFile reads a .klv2/super-<lex>.klv2 file: a 4-byte little-endian
// node count, that many 4-byte KWG node records, then one little-endian
// float32 per accepting node (in node-array order). This framing is
// internal to this exercise (no on-disk .klv2 files are read by the
// retrieved pack slice); LoadFile exists so the registry has one real
// entry point to target, mirroring kwg.Load's own note.
func LoadFile(path string, alph *tilemapping.TileMapping) (*Leaves, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("klv: %q too short for a node-count header", path)
	}
	nodeCount := binary.LittleEndian.Uint32(raw[:4])
	nodeBytes := int(nodeCount) * klvNodeRecSize
	if len(raw) < 4+nodeBytes {
		return nil, fmt.Errorf("klv: %q truncated node array", path)
	}
	graph, err := kwg.Load(path, alph, raw[4:4+nodeBytes], false, false)
	if err != nil {
		return nil, err
	}

	valueBytes := raw[4+nodeBytes:]
	if len(valueBytes)%4 != 0 {
		return nil, fmt.Errorf("klv: %q has a misaligned value array", path)
	}
	values := make([]float32, len(valueBytes)/4)
	var leafNodes []uint32
	for i := range values {
		bits := binary.LittleEndian.Uint32(valueBytes[i*4 : i*4+4])
		values[i] = math.Float32frombits(bits)
	}

	for idx := uint32(0); int(idx) < int(nodeCount) && len(leafNodes) < len(values); idx++ {
		if graph.Accepts(idx) {
			leafNodes = append(leafNodes, idx)
		}
	}
	return NewLeaves(graph, values, leafNodes), nil
}
