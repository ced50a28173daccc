package game

import (
	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// PlayAction is the kind of a PlayMaker.
type PlayAction int

const (
	PlayActionPlay PlayAction = iota
	PlayActionExchange
	PlayActionPass
)

// PlayMaker is the minimal shape PlayMove needs from a candidate play.
// movegen.Play satisfies this structurally, the way the teacher's
// move.PlayMaker interface is consumed by zobrist/hash.go without either
// package importing the other's concrete type.
type PlayMaker interface {
	Action() PlayAction
	Score() int
	Tiles() tilemapping.MachineWord
	Leave() tilemapping.MachineWord
	TilesPlayed() int
	RowStart() int
	ColStart() int
	Vertical() bool
}

// Game is the per-request reconstructed state: board, bag, two players,
// and whose turn it is. One Game belongs to exactly one in-flight
// request and is dropped at task end (spec §3 lifecycle).
type Game struct {
	Config         *Config
	Board          *board.GameBoard
	Bag            *Bag
	Players        [2]*Player
	Turn           int
	ScorelessTurns int
	Playing        bool
}

// NewGame creates a fresh game from cfg with an empty board and a full,
// unshuffled bag. Callers needing a pre-shuffled, request-specific bag
// (the usual case for the pipeline) should call Bag.Shuffle afterward or
// replace g.Bag with game.NewBagFromTiles.
func NewGame(cfg *Config, nick0, nick1 string) *Game {
	g := &Game{
		Config:  cfg,
		Board:   board.MakeBoard(cfg.BoardLayout),
		Bag:     NewBag(cfg.Dist),
		Playing: true,
	}
	g.Players[0] = newPlayer(nick0, cfg.Alphabet)
	g.Players[1] = newPlayer(nick1, cfg.Alphabet)
	return g
}

// Alphabet is a convenience accessor.
func (g *Game) Alphabet() *tilemapping.TileMapping { return g.Config.Alphabet }

// CurrentPlayer returns the player on turn.
func (g *Game) CurrentPlayer() *Player { return g.Players[g.Turn] }

// Opponent returns the player not on turn.
func (g *Game) Opponent() *Player { return g.Players[g.Turn^1] }

// calculateRackPts sums the point value of the tiles remaining on a
// player's rack, used for end-of-game scoring adjustments.
func (g *Game) calculateRackPts(playerIdx int) int {
	pts := 0
	for idx, ct := range g.Players[playerIdx].Rack.LetArr {
		pts += int(ct) * g.Config.Alphabet.Score(tilemapping.MachineLetter(idx))
	}
	return pts
}

// PlayMove applies m to the board/bag/rack/score, advances the turn, and
// detects end-of-game conditions (six consecutive scoreless turns, or a
// player emptying their rack). This is used by the simmer to roll forward
// playouts; the request pipeline itself only ever replays committed
// history (see replay.go) and never calls PlayMove for the move it is
// about to choose.
func (g *Game) PlayMove(m PlayMaker) {
	onturn := g.Turn
	switch m.Action() {
	case PlayActionPlay:
		g.placeTiles(m)
		score := m.Score()
		if score != 0 {
			g.ScorelessTurns = 0
		} else {
			g.ScorelessTurns++
		}
		g.Players[onturn].Score += score
		drew := g.Bag.DrawAtMost(m.TilesPlayed())
		rack := append(drew, []tilemapping.MachineLetter(m.Leave())...)
		g.Players[onturn].SetRack(rack)
		if g.Players[onturn].Rack.NumTiles() == 0 {
			g.Playing = false
			g.Players[onturn].Score += g.calculateRackPts(onturn^1) * 2
		}
	case PlayActionPass:
		g.ScorelessTurns++
	case PlayActionExchange:
		drew, err := g.Bag.Exchange([]tilemapping.MachineLetter(m.Tiles()))
		if err == nil {
			rack := append(drew, []tilemapping.MachineLetter(m.Leave())...)
			g.Players[onturn].SetRack(rack)
		}
		g.ScorelessTurns++
	}
	if g.ScorelessTurns == 6 {
		g.Playing = false
		for i := range g.Players {
			g.Players[i].Score -= g.calculateRackPts(i)
		}
	}
	g.Turn ^= 1
}

func (g *Game) placeTiles(m PlayMaker) {
	row, col, vertical := m.RowStart(), m.ColStart(), m.Vertical()
	ri, ci := 0, 1
	if vertical {
		ri, ci = 1, 0
	}
	for i, t := range m.Tiles() {
		if t == tilemapping.PlayedThroughMarker {
			continue
		}
		g.Board.SetLetter(row+ri*i, col+ci*i, t)
	}
}

// Copy returns a deep copy of the game, used by the simmer to back up and
// restore state between playouts without re-replaying history.
func (g *Game) Copy() *Game {
	cp := &Game{
		Config:         g.Config,
		Board:          g.Board.Copy(),
		Bag:            g.Bag.Copy(),
		Turn:           g.Turn,
		ScorelessTurns: g.ScorelessTurns,
		Playing:        g.Playing,
	}
	for i, p := range g.Players {
		cp.Players[i] = &Player{Nickname: p.Nickname, Rack: p.Rack.Copy(), Score: p.Score}
	}
	return cp
}
