package pb

import (
	"testing"

	"github.com/matryer/is"
)

func TestRequestRoundTrip(t *testing.T) {
	is := is.New(t)
	req := &BotRequest{
		BotType: HastyBot,
		History: &GameHistory{
			UID:     "abc123",
			Lexicon: "NWL20",
			Variant: "",
			Players: [2]PlayerInfo{{Nickname: "alice"}, {Nickname: "bob"}},
			Events: []GameEvent{
				{
					Type: EventTilePlacement, PlayerIndex: 0, Nickname: "alice",
					Cumulative: 74, Direction: Horizontal, Row: 7, Column: 3,
					Position: "8D", PlayedTiles: "RETAINS", Rack: "AEINRST", Score: 74,
				},
			},
			LastKnownRacks:  [2]string{"ABC", "DEF"},
			SecondWentFirst: true,
		},
	}
	data := MarshalRequest(nil, req)
	got, err := UnmarshalRequest(data)
	is.NoErr(err)
	is.Equal(got.BotType, HastyBot)
	is.Equal(got.History.UID, "abc123")
	is.Equal(got.History.Players[0].Nickname, "alice")
	is.Equal(got.History.Players[1].Nickname, "bob")
	is.Equal(len(got.History.Events), 1)
	is.Equal(got.History.Events[0].PlayedTiles, "RETAINS")
	is.Equal(got.History.Events[0].Score, int32(74))
	is.Equal(got.History.SecondWentFirst, true)
}

func TestMarshalResponseProducesBytes(t *testing.T) {
	is := is.New(t)
	resp := &Response{GameID: "abc123", Err: "not familiar with the lexicon"}
	data := MarshalResponse(nil, resp)
	// Response only has a Marshal side; this checks that marshaling an
	// error response yields a non-empty encoding.
	is.True(len(data) > 0)
}
