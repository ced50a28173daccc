// Package movegen implements the move generator (component C7): anchor
// enumeration, dictionary-pruned placement search, exchange/pass
// enumeration, and equity scoring. It is the algorithmic centerpiece of
// the service (spec §4.6).
package movegen

import (
	"fmt"
	"strconv"

	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Play is a candidate move: a placement, an exchange, or a pass. It
// satisfies game.PlayMaker so game.Game.PlayMove can apply it directly,
// the way the teacher's move.Move satisfies move.PlayMaker.
type Play struct {
	action      game.PlayAction
	score       int
	equity      float64
	tiles       tilemapping.MachineWord
	leave       tilemapping.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

// NewPlacementPlay builds a Play for a tile placement. tiles is in lane
// order (0 entries are play-through squares); tilesPlayed counts only the
// newly-placed (non-0) entries.
func NewPlacementPlay(score int, tiles, leave tilemapping.MachineWord, vertical bool,
	rowStart, colStart, tilesPlayed int, alph *tilemapping.TileMapping) *Play {
	return &Play{
		action: game.PlayActionPlay, score: score, tiles: tiles, leave: leave,
		vertical: vertical, rowStart: rowStart, colStart: colStart,
		tilesPlayed: tilesPlayed, alph: alph,
	}
}

// NewExchangePlay builds a Play that returns tiles to the bag and keeps
// leave.
func NewExchangePlay(tiles, leave tilemapping.MachineWord, alph *tilemapping.TileMapping) *Play {
	return &Play{action: game.PlayActionExchange, tiles: tiles, leave: leave, alph: alph}
}

// NewPassPlay builds the always-available Pass candidate.
func NewPassPlay(alph *tilemapping.TileMapping) *Play {
	return &Play{action: game.PlayActionPass, alph: alph}
}

func (p *Play) Action() game.PlayAction            { return p.action }
func (p *Play) Score() int                         { return p.score }
func (p *Play) Tiles() tilemapping.MachineWord     { return p.tiles }
func (p *Play) Leave() tilemapping.MachineWord     { return p.leave }
func (p *Play) TilesPlayed() int                   { return p.tilesPlayed }
func (p *Play) RowStart() int                      { return p.rowStart }
func (p *Play) ColStart() int                       { return p.colStart }
func (p *Play) Vertical() bool                      { return p.vertical }
func (p *Play) Equity() float64                    { return p.equity }
func (p *Play) SetEquity(e float64)                { p.equity = e }
func (p *Play) Bingo() bool                         { return p.tilesPlayed >= 7 && p.action == game.PlayActionPlay }

// BoardCoords renders this placement's starting square in the spec's
// position string format: horizontal plays as "<row><col-letter>",
// vertical plays as "<col-letter><row>" (spec §6).
func (p *Play) BoardCoords() string {
	if p.action != game.PlayActionPlay {
		return ""
	}
	return ToBoardGameCoords(p.rowStart, p.colStart, p.vertical)
}

// ToBoardGameCoords converts (row, col, vertical) to the wire position
// string.
func ToBoardGameCoords(row, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

func (p *Play) String() string {
	switch p.action {
	case game.PlayActionPlay:
		return fmt.Sprintf("<play %s %s score:%d equity:%.3f leave:%s>",
			p.BoardCoords(), p.alph.FormatPlay(p.tiles), p.score, p.equity, p.alph.FormatRack(p.leave))
	case game.PlayActionExchange:
		return fmt.Sprintf("<exchange %s equity:%.3f>", p.alph.FormatRack(p.tiles), p.equity)
	default:
		return fmt.Sprintf("<pass equity:%.3f>", p.equity)
	}
}
