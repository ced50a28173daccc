// Package pipeline implements the request pipeline (component C10):
// decode, validate, replay, classify the requested bot personality, drive
// the picker, and format the response. Grounded on
// original_source/src/main.rs's single dispatch function for control
// flow and step ordering, and analyzer/analyzer.go's "decode a request,
// drive the engine, format a move" shape for the Go-side split into
// small, independently testable steps.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/lexicon"
	"github.com/andy-k/omgbot/internal/movegen"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/picker"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// Pipeline wires the registry into the per-request decode-replay-pick-
// respond sequence. One Pipeline is built at boot and shared read-only
// across every worker task (spec §5).
type Pipeline struct {
	Registry *lexicon.Registry
}

func New(reg *lexicon.Registry) *Pipeline {
	return &Pipeline{Registry: reg}
}

// Handle decodes and processes one inbound bot.commands message,
// returning the game UID (for the caller to derive the reply subject)
// and the Response to publish. It never panics; every failure mode
// becomes an Err response (spec §4.10 step 1: "reject (reply with error)
// malformed payloads").
func (p *Pipeline) Handle(ctx context.Context, raw []byte) (gameUID string, resp *pb.Response) {
	start := time.Now()

	req, err := pb.UnmarshalRequest(raw)
	if err != nil {
		return "", &pb.Response{Err: fmt.Sprintf("pipeline: malformed request: %v", err)}
	}
	hist := req.History
	if hist == nil {
		return "", &pb.Response{Err: "pipeline: request has no game_history"}
	}
	gameUID = hist.UID

	if hist.Players[0].Nickname == "" || hist.Players[1].Nickname == "" ||
		hist.Players[0].Nickname == hist.Players[1].Nickname {
		return gameUID, &pb.Response{GameID: gameUID, Err: "pipeline: history must name exactly two distinct players"}
	}

	variant := game.ParseVariant(hist.Variant)
	entry, ok := p.Registry.Resolve(hist.Lexicon, variant)
	if !ok {
		return gameUID, &pb.Response{GameID: gameUID,
			Err: fmt.Sprintf("pipeline: no registered lexicon for %q/%q", hist.Lexicon, hist.Variant)}
	}

	cls := classify(req.BotType, variant.Jumbled(), entry.CommonWordGraph != nil)
	if cls.kind == kindUnsupported {
		return gameUID, nil // spec §4.10 step 9: unsupported combination -> don't reply
	}

	result, err := game.ReplayHistory(entry.Config, hist, entry.Graph, variant.Jumbled())
	if err != nil {
		return gameUID, &pb.Response{GameID: gameUID, Err: fmt.Sprintf("pipeline: %v", err)}
	}
	if result.Challenged {
		return gameUID, &pb.Response{GameID: gameUID, Move: &pb.GameEvent{Type: pb.EventChallenge}}
	}
	g := result.Game
	onTurn := g.Turn

	alph := entry.Config.Alphabet
	ownRack, err := alph.ParseRack(hist.LastKnownRacks[onTurn])
	if err != nil {
		return gameUID, &pb.Response{GameID: gameUID, Err: fmt.Sprintf("pipeline: bad rack: %v", err)}
	}
	g.Players[onTurn].SetRack(ownRack)

	var oppRack tilemapping.MachineWord
	oppRackStr := hist.LastKnownRacks[onTurn^1]
	if oppRackStr != "" {
		oppRack, err = alph.ParseRack(oppRackStr)
		if err != nil {
			return gameUID, &pb.Response{GameID: gameUID, Err: fmt.Sprintf("pipeline: bad opponent rack: %v", err)}
		}
		g.Players[onTurn^1].SetRack(oppRack)
	}

	unseen, err := computeUnseen(entry.Config.Dist, g.Board, ownRack, oppRack)
	if err != nil {
		return gameUID, &pb.Response{GameID: gameUID, Err: fmt.Sprintf("pipeline: %v", err)}
	}
	rng := frand.New()
	g.Bag = game.NewBagFromTiles(entry.Config.Dist, unseen)
	g.Bag.Shuffle(rng)

	// Step 8: bag empty and opponent's rack empty -> the player on turn
	// must pass or challenge. Forcing an empty rack into the picker makes
	// GenAll emit only the always-present Pass candidate.
	rack := g.Players[onTurn].Rack
	if g.Bag.TilesRemaining() == 0 && g.Players[onTurn^1].Rack.NumTiles() == 0 {
		rack = tilemapping.NewRack(alph)
	}

	play, err := p.pick(ctx, entry, g, rack, variant, cls, rng)
	if err != nil {
		return gameUID, &pb.Response{GameID: gameUID, Err: fmt.Sprintf("pipeline: %v", err)}
	}

	event := formatEvent(play, alph, g.Players[onTurn].Rack)

	if cls.kind == kindTilt && play.Action() != game.PlayActionPass {
		simulateThinking(start, rng)
	}

	return gameUID, &pb.Response{GameID: gameUID, Move: event}
}

// simulateThinking sleeps the remainder of a uniformly random 2000-4000ms
// window not already spent processing (spec §4.10 step 11).
func simulateThinking(start time.Time, rng *frand.RNG) {
	target := time.Duration(2000+rng.Intn(2001)) * time.Millisecond
	elapsed := time.Since(start)
	if remaining := target - elapsed; remaining > 0 {
		time.Sleep(remaining)
	}
}

// pick dispatches to the right generator/picker combination for cls
// (spec §4.7-4.8), substituting the common-word graph when requested.
func (p *Pipeline) pick(ctx context.Context, entry *lexicon.Entry, g *game.Game, rack *tilemapping.Rack,
	variant game.Variant, cls classification, rng *frand.RNG) (*movegen.Play, error) {

	gen := entry.Generator
	if cls.useCommonWord {
		gen = movegen.NewGenerator(entry.CommonWordGraph, entry.Leaves, entry.Config.Dist,
			false, entry.Config.BingoBonus, entry.Config.RackSize)
	}
	hasty := picker.NewHasty(gen)

	switch cls.kind {
	case kindNoLeave:
		plays := gen.GenAll(g.Board, rack)
		return bestByScore(plays, gen.Dist.Alphabet()), nil
	case kindTilt:
		filt := entry.NewTilt(tiltFactorForLevel(cls.level), leaveScaleForLevel(cls.level), cls.level)
		return hasty.Pick(g.Board, rack, filt, variant.Jumbled(), rng), nil
	case kindSim:
		plays := gen.GenAll(g.Board, rack)
		filt := filter.Unfiltered()
		zob := game.NewZobrist(g.Board.Dim())
		sim := picker.NewSimmer(hasty)
		return sim.Pick(ctx, g, zob, plays, filt, variant.Jumbled())
	default: // kindUnfiltered
		return hasty.Pick(g.Board, rack, filter.Unfiltered(), variant.Jumbled(), rng), nil
	}
}

// bestByScore picks the highest-raw-score Play, ignoring equity/leave
// entirely (NoLeaveBot, spec's bot-code naming: a hasty bot that still
// ignores leave value when ranking).
func bestByScore(plays []*movegen.Play, alph *tilemapping.TileMapping) *movegen.Play {
	best := movegen.NewPassPlay(alph)
	for _, p := range plays {
		if p.Score() > best.Score() {
			best = p
		}
	}
	return best
}

// formatEvent translates a chosen Play into the wire response event
// (spec §4.10 step 10).
func formatEvent(p *movegen.Play, alph *tilemapping.TileMapping, rack *tilemapping.Rack) *pb.GameEvent {
	ev := &pb.GameEvent{Rack: alph.FormatRack(rack.TilesOn())}
	switch p.Action() {
	case game.PlayActionPlay:
		ev.Type = pb.EventTilePlacement
		if p.Vertical() {
			ev.Direction = pb.Vertical
		} else {
			ev.Direction = pb.Horizontal
		}
		ev.Row = int32(p.RowStart())
		ev.Column = int32(p.ColStart())
		ev.Position = p.BoardCoords()
		ev.PlayedTiles = alph.FormatPlay(p.Tiles())
		ev.Score = int32(p.Score())
	case game.PlayActionExchange:
		ev.Type = pb.EventExchange
		ev.Exchanged = alph.FormatRack(p.Tiles())
	default:
		ev.Type = pb.EventPass
	}
	return ev
}
