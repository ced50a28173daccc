// Package game implements the per-request game state (component C5: bag,
// racks, board, turn) and the history-replay placement validator
// (component C6).
package game

import (
	"github.com/andy-k/omgbot/internal/board"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Variant names a rule flavor + board size combination (spec §6).
type Variant string

const (
	VarClassic       Variant = "classic"
	VarWordSmog      Variant = "wordsmog"
	VarClassicSuper  Variant = "classic_super"
	VarWordSmogSuper Variant = "wordsmog_super"
)

// Jumbled reports whether this variant uses alpha-DAWG (anagram)
// acceptance instead of sequential acceptance.
func (v Variant) Jumbled() bool {
	return v == VarWordSmog || v == VarWordSmogSuper
}

// Super reports whether this variant uses the 21x21 board.
func (v Variant) Super() bool {
	return v == VarClassicSuper || v == VarWordSmogSuper
}

// ParseVariant maps a request's variant string to a Variant, defaulting
// unknown/empty strings to classic 15x15 (spec §6).
func ParseVariant(s string) Variant {
	switch Variant(s) {
	case VarWordSmog, VarClassicSuper, VarWordSmogSuper:
		return Variant(s)
	default:
		return VarClassic
	}
}

// BingoBonus is the fixed score bonus for using an entire rack in one
// play.
const BingoBonus = 50

// RackTileLimit is the maximum number of tiles a standard rack holds.
const RackTileLimit = 7

// SuperRackTileLimit is the rack size for the "super" (21x21) variant.
const SuperRackTileLimit = 21

// Config is the immutable configuration shared by every game of a given
// (lexicon, variant) combination: alphabet, board layout, rack size, and
// rule flavor.
type Config struct {
	Alphabet       *tilemapping.TileMapping
	Dist           *tilemapping.LetterDistribution
	BoardLayout    []string
	RackSize       int
	Variant        Variant
	BingoBonus     int
}

// NewConfig builds a Config for the given variant, dist, and graph (the
// graph is only consulted for its alphabet; callers pass the right KWG
// for the (lexicon, variant) combination from the registry).
func NewConfig(v Variant, dist *tilemapping.LetterDistribution, graph *kwg.KWG) *Config {
	layout := board.CrosswordGameBoard
	rackSize := RackTileLimit
	if v.Super() {
		layout = board.SuperCrosswordGameBoard
		rackSize = SuperRackTileLimit
	}
	alph := dist.Alphabet()
	if graph != nil {
		alph = graph.GetAlphabet()
	}
	return &Config{
		Alphabet:    alph,
		Dist:        dist,
		BoardLayout: layout,
		RackSize:    rackSize,
		Variant:     v,
		BingoBonus:  BingoBonus,
	}
}
