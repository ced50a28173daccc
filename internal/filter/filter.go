// Package filter implements the move filter ("Tilt", component C8): it
// biases the generator's equity-sorted candidate list toward what a
// weaker simulated player would actually find, the way the teacher's
// ai/runner/filters.go biases CEL-bot findability by word length and
// letter-arrangement count.
package filter

import (
	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/movegen"
)

// Mode selects whether a filter passes every candidate through untouched
// or applies the tilt roll.
type Mode int

const (
	ModeUnfiltered Mode = iota
	ModeTilt
)

// State is one bot personality's filter configuration (spec §4.7).
// Jumbled games cannot use ModeTilt; callers must check Variant.Jumbled()
// before constructing one (the pipeline's classify step enforces this,
// §4.10 step 9).
type State struct {
	Mode              Mode
	TiltFactor        float64 // [0,1]: weight applied against long words
	LeaveScale        float64 // [0,1]: how strongly leave value counts
	BotLevel          int     // 1..5; higher raises acceptance
	LengthImportances map[int]float64
}

// Unfiltered passes every candidate through.
func Unfiltered() State { return State{Mode: ModeUnfiltered} }

// NewTilt builds a Tilt filter state.
func NewTilt(tiltFactor, leaveScale float64, botLevel int, lengthImportances map[int]float64) State {
	return State{
		Mode: ModeTilt, TiltFactor: tiltFactor, LeaveScale: leaveScale,
		BotLevel: botLevel, LengthImportances: lengthImportances,
	}
}

// Apply runs plays (already equity-sorted by the generator) through the
// tilt roll and returns the surviving subset, in order. Pass and Exchange
// candidates are never gated — only Play candidates are, mirroring
// ai/runner/filters.go's filter() which only calls its filterFunction for
// move.MoveTypePlay. jumbled forces a pass-through regardless of Mode
// (spec §4.7: "Jumbled games cannot use Tilt").
func (s State) Apply(plays []*movegen.Play, jumbled bool, rng *frand.RNG) []*movegen.Play {
	if s.Mode == ModeUnfiltered || jumbled {
		return plays
	}
	out := make([]*movegen.Play, 0, len(plays))
	for _, p := range plays {
		if p.Action() != game.PlayActionPlay {
			out = append(out, p)
			continue
		}
		length := len(p.Tiles())
		if rng.Float64() >= s.threshold(length) {
			out = append(out, p)
		}
	}
	return out
}

// threshold(length, bot_level, tilt_factor): the roll must clear this for
// a play of the given word length to survive. Lower bot levels and longer
// (or otherwise weighted) words raise the threshold, so they're found
// less often; a higher bot_level divides it down, raising acceptance, per
// spec §4.7.
func (s State) threshold(length int) float64 {
	importance := 1.0
	if v, ok := s.LengthImportances[length]; ok {
		importance = v
	}
	level := s.BotLevel
	if level < 1 {
		level = 1
	}
	return s.TiltFactor * importance / float64(level)
}

// AdjustedEquity rescales a play's leave-value component by LeaveScale,
// leaving its score contribution untouched. Used by the picker to re-rank
// filter-surviving candidates for Tilt bots, so a "tilted" bot can
// genuinely undervalue leave the way a tilt_factor alone (which only
// gates Play candidates) cannot express.
func (s State) AdjustedEquity(p *movegen.Play) float64 {
	if s.Mode == ModeUnfiltered {
		return p.Equity()
	}
	leavePortion := p.Equity() - float64(p.Score())
	return float64(p.Score()) + s.LeaveScale*leavePortion
}
