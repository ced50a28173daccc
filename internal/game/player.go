package game

import "github.com/andy-k/omgbot/internal/tilemapping"

// Player is the minimal per-seat state the generator/picker need: rack
// and cumulative score. Nicknames are carried separately on GameHistory
// and only copied here for logging.
type Player struct {
	Nickname string
	Rack     *tilemapping.Rack
	Score    int
}

func newPlayer(nickname string, alph *tilemapping.TileMapping) *Player {
	return &Player{Nickname: nickname, Rack: tilemapping.NewRack(alph)}
}

// SetRack replaces this player's rack contents.
func (p *Player) SetRack(tiles tilemapping.MachineWord) {
	p.Rack.Set([]tilemapping.MachineLetter(tiles))
}
