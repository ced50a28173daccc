package tilemapping

import (
	"testing"

	"github.com/andy-k/omgbot/config"
	"github.com/matryer/is"
)

func englishAlphabet(t *testing.T) *TileMapping {
	t.Helper()
	ld, err := EnglishLetterDistribution(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return ld.Alphabet()
}

func TestParseFormatRackRoundTrip(t *testing.T) {
	is := is.New(t)
	a := englishAlphabet(t)

	for _, rack := range []string{"AEINRST", "???????", "QZ", "a", ""} {
		tiles, err := a.ParseRack(rack)
		is.NoErr(err)
		is.Equal(len(tiles), len(rack))
	}
	// Round trip on an uppercase rack is the identity.
	tiles, err := a.ParseRack("RETAIN")
	is.NoErr(err)
	is.Equal(a.FormatRack(tiles), "RETAIN")
}

func TestParseFormatPlayRoundTrip(t *testing.T) {
	is := is.New(t)
	a := englishAlphabet(t)

	tiles, err := a.ParsePlay("RE.AIN")
	is.NoErr(err)
	is.Equal(a.FormatPlay(tiles), "RE.AIN")

	// A blank played as a lowercase letter round-trips to the same
	// lowercase form.
	tiles, err = a.ParsePlay("rETAIN")
	is.NoErr(err)
	is.True(tiles[0].IsBlanked())
	is.Equal(a.FormatPlay(tiles), "rETAIN")
}

func TestParseRackRejectsUnmatchedByte(t *testing.T) {
	is := is.New(t)
	a := englishAlphabet(t)
	_, err := a.ParseRack("A1B")
	is.True(err != nil)
}

func TestSpanishDigraphTokenizesLongestFirst(t *testing.T) {
	is := is.New(t)
	ld, err := SpanishLetterDistribution(&config.Config{})
	is.NoErr(err)
	a := ld.Alphabet()

	tiles, err := a.ParseRack("CHACO")
	is.NoErr(err)
	// CH must be consumed as a single tile, not C then H.
	is.Equal(len(tiles), 4)
	is.Equal(a.FormatRack(tiles), "CHACO")
}

func TestEnglishDistributionHas100Tiles(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(&config.Config{})
	is.NoErr(err)
	is.Equal(int(ld.NumLetters()), 100)
}
