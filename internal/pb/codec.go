package pb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers, assigned once and used by both the encoder and decoder.
const (
	fEventType        = 1
	fEventPlayerIndex = 2
	fEventNickname    = 3
	fEventCumulative  = 4
	fEventDirection   = 5
	fEventRow         = 6
	fEventColumn      = 7
	fEventPosition    = 8
	fEventPlayedTiles = 9
	fEventExchanged   = 10
	fEventRack        = 11
	fEventScore       = 12

	fPlayerNickname = 1

	fHistUID            = 1
	fHistLexicon        = 2
	fHistVariant        = 3
	fHistPlayers        = 4
	fHistEvents         = 5
	fHistLastKnownRacks = 6
	fHistSecondFirst    = 7

	fReqHistory = 1
	fReqBotType = 2

	fRespGameID = 1
	fRespMove   = 2
	fRespErr    = 3
)

// MarshalEvent appends the wire encoding of e to dst.
func MarshalEvent(dst []byte, e *GameEvent) []byte {
	dst = protowire.AppendTag(dst, fEventType, protowire.VarintType)
	dst = protowire.AppendVarint(dst, uint64(e.Type))
	dst = protowire.AppendTag(dst, fEventPlayerIndex, protowire.VarintType)
	dst = protowire.AppendVarint(dst, uint64(e.PlayerIndex))
	if e.Nickname != "" {
		dst = protowire.AppendTag(dst, fEventNickname, protowire.BytesType)
		dst = protowire.AppendString(dst, e.Nickname)
	}
	dst = protowire.AppendTag(dst, fEventCumulative, protowire.VarintType)
	dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(e.Cumulative)))
	dst = protowire.AppendTag(dst, fEventDirection, protowire.VarintType)
	dst = protowire.AppendVarint(dst, uint64(e.Direction))
	dst = protowire.AppendTag(dst, fEventRow, protowire.VarintType)
	dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(e.Row)))
	dst = protowire.AppendTag(dst, fEventColumn, protowire.VarintType)
	dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(e.Column)))
	if e.Position != "" {
		dst = protowire.AppendTag(dst, fEventPosition, protowire.BytesType)
		dst = protowire.AppendString(dst, e.Position)
	}
	if e.PlayedTiles != "" {
		dst = protowire.AppendTag(dst, fEventPlayedTiles, protowire.BytesType)
		dst = protowire.AppendString(dst, e.PlayedTiles)
	}
	if e.Exchanged != "" {
		dst = protowire.AppendTag(dst, fEventExchanged, protowire.BytesType)
		dst = protowire.AppendString(dst, e.Exchanged)
	}
	if e.Rack != "" {
		dst = protowire.AppendTag(dst, fEventRack, protowire.BytesType)
		dst = protowire.AppendString(dst, e.Rack)
	}
	dst = protowire.AppendTag(dst, fEventScore, protowire.VarintType)
	dst = protowire.AppendVarint(dst, protowire.EncodeZigZag(int64(e.Score)))
	return dst
}

// UnmarshalEvent parses a GameEvent from data.
func UnmarshalEvent(data []byte) (*GameEvent, error) {
	e := &GameEvent{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("pb: bad event tag")
		}
		data = data[n:]
		switch num {
		case fEventType:
			v, n := protowire.ConsumeVarint(data)
			e.Type = EventType(v)
			data = data[check(n):]
		case fEventPlayerIndex:
			v, n := protowire.ConsumeVarint(data)
			e.PlayerIndex = int(v)
			data = data[check(n):]
		case fEventNickname:
			v, n := protowire.ConsumeBytes(data)
			e.Nickname = string(v)
			data = data[check(n):]
		case fEventCumulative:
			v, n := protowire.ConsumeVarint(data)
			e.Cumulative = int32(protowire.DecodeZigZag(v))
			data = data[check(n):]
		case fEventDirection:
			v, n := protowire.ConsumeVarint(data)
			e.Direction = Direction(v)
			data = data[check(n):]
		case fEventRow:
			v, n := protowire.ConsumeVarint(data)
			e.Row = int32(protowire.DecodeZigZag(v))
			data = data[check(n):]
		case fEventColumn:
			v, n := protowire.ConsumeVarint(data)
			e.Column = int32(protowire.DecodeZigZag(v))
			data = data[check(n):]
		case fEventPosition:
			v, n := protowire.ConsumeBytes(data)
			e.Position = string(v)
			data = data[check(n):]
		case fEventPlayedTiles:
			v, n := protowire.ConsumeBytes(data)
			e.PlayedTiles = string(v)
			data = data[check(n):]
		case fEventExchanged:
			v, n := protowire.ConsumeBytes(data)
			e.Exchanged = string(v)
			data = data[check(n):]
		case fEventRack:
			v, n := protowire.ConsumeBytes(data)
			e.Rack = string(v)
			data = data[check(n):]
		case fEventScore:
			v, n := protowire.ConsumeVarint(data)
			e.Score = int32(protowire.DecodeZigZag(v))
			data = data[check(n):]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			data = data[check(n):]
		}
	}
	return e, nil
}

func check(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// MarshalHistory appends the wire encoding of h to dst.
func MarshalHistory(dst []byte, h *GameHistory) []byte {
	dst = protowire.AppendTag(dst, fHistUID, protowire.BytesType)
	dst = protowire.AppendString(dst, h.UID)
	dst = protowire.AppendTag(dst, fHistLexicon, protowire.BytesType)
	dst = protowire.AppendString(dst, h.Lexicon)
	dst = protowire.AppendTag(dst, fHistVariant, protowire.BytesType)
	dst = protowire.AppendString(dst, h.Variant)
	for _, p := range h.Players {
		dst = protowire.AppendTag(dst, fHistPlayers, protowire.BytesType)
		dst = protowire.AppendBytes(dst, marshalPlayer(p))
	}
	for i := range h.Events {
		dst = protowire.AppendTag(dst, fHistEvents, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalEvent(nil, &h.Events[i]))
	}
	for _, r := range h.LastKnownRacks {
		dst = protowire.AppendTag(dst, fHistLastKnownRacks, protowire.BytesType)
		dst = protowire.AppendString(dst, r)
	}
	dst = protowire.AppendTag(dst, fHistSecondFirst, protowire.VarintType)
	v := uint64(0)
	if h.SecondWentFirst {
		v = 1
	}
	dst = protowire.AppendVarint(dst, v)
	return dst
}

func marshalPlayer(p PlayerInfo) []byte {
	var dst []byte
	dst = protowire.AppendTag(dst, fPlayerNickname, protowire.BytesType)
	dst = protowire.AppendString(dst, p.Nickname)
	return dst
}

func unmarshalPlayer(data []byte) (PlayerInfo, error) {
	p := PlayerInfo{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return p, fmt.Errorf("pb: bad player tag")
		}
		data = data[n:]
		if num == fPlayerNickname {
			v, n := protowire.ConsumeBytes(data)
			p.Nickname = string(v)
			data = data[check(n):]
		} else {
			n := protowire.ConsumeFieldValue(num, typ, data)
			data = data[check(n):]
		}
	}
	return p, nil
}

// UnmarshalHistory parses a GameHistory from data.
func UnmarshalHistory(data []byte) (*GameHistory, error) {
	h := &GameHistory{}
	playerIdx, rackIdx := 0, 0
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("pb: bad history tag")
		}
		data = data[n:]
		switch num {
		case fHistUID:
			v, n := protowire.ConsumeBytes(data)
			h.UID = string(v)
			data = data[check(n):]
		case fHistLexicon:
			v, n := protowire.ConsumeBytes(data)
			h.Lexicon = string(v)
			data = data[check(n):]
		case fHistVariant:
			v, n := protowire.ConsumeBytes(data)
			h.Variant = string(v)
			data = data[check(n):]
		case fHistPlayers:
			v, n := protowire.ConsumeBytes(data)
			p, err := unmarshalPlayer(v)
			if err != nil {
				return nil, err
			}
			if playerIdx < 2 {
				h.Players[playerIdx] = p
				playerIdx++
			}
			data = data[check(n):]
		case fHistEvents:
			v, n := protowire.ConsumeBytes(data)
			e, err := UnmarshalEvent(v)
			if err != nil {
				return nil, err
			}
			h.Events = append(h.Events, *e)
			data = data[check(n):]
		case fHistLastKnownRacks:
			v, n := protowire.ConsumeBytes(data)
			if rackIdx < 2 {
				h.LastKnownRacks[rackIdx] = string(v)
				rackIdx++
			}
			data = data[check(n):]
		case fHistSecondFirst:
			v, n := protowire.ConsumeVarint(data)
			h.SecondWentFirst = v != 0
			data = data[check(n):]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			data = data[check(n):]
		}
	}
	return h, nil
}

// MarshalRequest appends the wire encoding of r to dst.
func MarshalRequest(dst []byte, r *BotRequest) []byte {
	if r.History != nil {
		dst = protowire.AppendTag(dst, fReqHistory, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalHistory(nil, r.History))
	}
	dst = protowire.AppendTag(dst, fReqBotType, protowire.VarintType)
	dst = protowire.AppendVarint(dst, uint64(r.BotType))
	return dst
}

// UnmarshalRequest parses a BotRequest from the length-prefixed binary
// envelope described in spec §6.
func UnmarshalRequest(data []byte) (*BotRequest, error) {
	r := &BotRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("pb: bad request tag")
		}
		data = data[n:]
		switch num {
		case fReqHistory:
			v, n := protowire.ConsumeBytes(data)
			h, err := UnmarshalHistory(v)
			if err != nil {
				return nil, err
			}
			r.History = h
			data = data[check(n):]
		case fReqBotType:
			v, n := protowire.ConsumeVarint(data)
			r.BotType = BotCode(v)
			data = data[check(n):]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			data = data[check(n):]
		}
	}
	return r, nil
}

// MarshalResponse appends the wire encoding of r to dst.
func MarshalResponse(dst []byte, r *Response) []byte {
	dst = protowire.AppendTag(dst, fRespGameID, protowire.BytesType)
	dst = protowire.AppendString(dst, r.GameID)
	if r.Move != nil {
		dst = protowire.AppendTag(dst, fRespMove, protowire.BytesType)
		dst = protowire.AppendBytes(dst, MarshalEvent(nil, r.Move))
	}
	if r.Err != "" {
		dst = protowire.AppendTag(dst, fRespErr, protowire.BytesType)
		dst = protowire.AppendString(dst, r.Err)
	}
	return dst
}
