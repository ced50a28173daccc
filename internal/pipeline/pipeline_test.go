package pipeline

import (
	"testing"

	"github.com/matryer/is"

	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/movegen"
	"github.com/andy-k/omgbot/internal/pb"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

func TestFormatEventRendersPlacement(t *testing.T) {
	is := is.New(t)
	alph := testDist(t).Alphabet()
	tiles, err := alph.ParseRack("AT")
	is.NoErr(err)
	play := movegen.NewPlacementPlay(4, tiles, nil, false, 7, 7, 2, alph)

	rack := tilemapping.NewRack(alph)
	ev := formatEvent(play, alph, rack)

	is.Equal(ev.Type, pb.EventTilePlacement)
	is.Equal(ev.Direction, pb.Horizontal)
	is.Equal(int(ev.Row), 7)
	is.Equal(int(ev.Column), 7)
	is.Equal(ev.PlayedTiles, "AT")
	is.Equal(int(ev.Score), 4)
}

func TestFormatEventRendersPass(t *testing.T) {
	is := is.New(t)
	alph := testDist(t).Alphabet()
	play := movegen.NewPassPlay(alph)
	rack := tilemapping.NewRack(alph)

	ev := formatEvent(play, alph, rack)
	is.Equal(ev.Type, pb.EventPass)
}

func TestBestByScorePicksHighestScoringPlay(t *testing.T) {
	is := is.New(t)
	alph := testDist(t).Alphabet()
	low := movegen.NewPlacementPlay(2, nil, nil, false, 0, 0, 2, alph)
	high := movegen.NewPlacementPlay(20, nil, nil, false, 0, 0, 2, alph)
	pass := movegen.NewPassPlay(alph)

	best := bestByScore([]*movegen.Play{pass, low, high}, alph)
	is.Equal(best.Score(), 20)
}

func TestBestByScoreFallsBackToPassWhenNoPlaysScore(t *testing.T) {
	is := is.New(t)
	alph := testDist(t).Alphabet()
	pass := movegen.NewPassPlay(alph)

	best := bestByScore([]*movegen.Play{pass}, alph)
	is.Equal(best.Action(), game.PlayActionPass)
}
