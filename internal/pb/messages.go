// Package pb defines the wire request/response messages (spec §6):
// GameHistory, GameEvent, PlayerInfo, BotRequest, and the Move/Error
// response. These mirror the shape of the teacher's generated
// `gen/api/proto/macondo` messages (seen in gcgio/gcg.go and
// analyzer/analyzer.go) and the Rust source's `macondo::GameEvent` /
// `bot_request::BotCode` (original_source/src/main.rs).
//
// No protoc run happens in this exercise, so these are hand-written Go
// structs rather than protoc-generated code; codec.go frames them
// on the wire by hand with google.golang.org/protobuf/encoding/protowire,
// which is real use of that dependency at the varint level instead of
// through generated marshalers.
package pb

// EventType enumerates the kinds of history event a game can contain.
type EventType int

const (
	EventUnknown EventType = iota
	EventTilePlacement
	EventPhonyTilesReturned
	EventPass
	EventExchange
	EventChallenge
	EventChallengeBonus
	EventEndRackPoints
	EventTimePenalty
)

// Direction is the orientation of a tile-placement event.
type Direction int

const (
	DirectionUnspecified Direction = iota
	Horizontal
	Vertical
)

// PlayerInfo identifies one seat at the table.
type PlayerInfo struct {
	Nickname string
}

// GameEvent is one entry in a game's history, or (when used as a
// response) the chosen move to play.
type GameEvent struct {
	Type          EventType
	PlayerIndex   int
	Nickname      string
	Cumulative    int32
	Direction     Direction
	Row           int32
	Column        int32
	Position      string
	PlayedTiles   string
	Exchanged     string
	Rack          string
	Score         int32
}

// GameHistory is the full two-player game record a request carries.
type GameHistory struct {
	UID             string
	Lexicon         string
	Variant         string
	Players         [2]PlayerInfo
	Events          []GameEvent
	LastKnownRacks  [2]string
	SecondWentFirst bool
}

// BotCode enumerates the requestable bot personalities (spec §6,
// confirmed against original_source/src/main.rs's
// macondo::bot_request::BotCode).
type BotCode int

const (
	BotUnknown BotCode = iota
	HastyBot
	Level1Probabilistic
	Level2Probabilistic
	Level3Probabilistic
	Level4Probabilistic
	Level5Probabilistic
	Level1CommonWordBot
	Level2CommonWordBot
	Level3CommonWordBot
	Level4CommonWordBot
	NoLeaveBot
	SimmingBot
	// Recognized but explicitly unsupported by this service (spec §7):
	// the request pipeline silently drops these rather than replying.
	HastyPlusEndgameBot
	SimmingInferBot
	FastMlBot
	RandomBotWithTemperature
	SimmingWithMlEvalBot
)

// BotRequest is the decoded inbound message on bot.commands.
type BotRequest struct {
	History *GameHistory
	BotType BotCode
}

// Response is the oneof published to bot.publish_event.<game_uid>.
type Response struct {
	GameID string
	Move   *GameEvent // nil if Err is set
	Err    string     // non-empty on error
}
