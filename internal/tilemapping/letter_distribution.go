package tilemapping

import (
	"fmt"

	"github.com/andy-k/omgbot/config"
)

// LetterDistribution pairs a TileMapping with the bag-fill counts used to
// build a fresh bag.
type LetterDistribution struct {
	alph         *TileMapping
	Distribution map[string]uint8
	numLetters   uint8
}

// Alphabet returns the underlying TileMapping.
func (ld *LetterDistribution) Alphabet() *TileMapping { return ld.alph }

// NumLetters returns the total number of tiles a fresh bag holds.
func (ld *LetterDistribution) NumLetters() uint8 { return ld.numLetters }

func newLetterDistribution(name string, tokens []string, values []int, freqs []uint8) (*LetterDistribution, error) {
	alph, err := NewTileMapping(name, tokens, values, freqs)
	if err != nil {
		return nil, err
	}
	dist := map[string]uint8{}
	var total uint8
	for i, tok := range tokens {
		dist[tok] = freqs[i]
		total += freqs[i]
	}
	return &LetterDistribution{alph: alph, Distribution: dist, numLetters: total}, nil
}

// EnglishLetterDistribution returns the classic English (NWL/CSW) 100-tile
// distribution: A=1..Z=26, blank=0.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	tokens := []string{
		"?", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	}
	values := []int{0, 1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10}
	freqs := []uint8{2, 9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1}
	return newLetterDistribution(AlphabetNameEnglish, tokens, values, freqs)
}

// GermanLetterDistribution returns the German tile distribution (102
// tiles, blank=0), including the "Ä"/"Ö"/"Ü" tokens.
func GermanLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	tokens := []string{
		"?", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
		"Ä", "Ö", "Ü",
	}
	values := []int{
		0, 1, 3, 4, 1, 1, 4, 2, 2, 1, 6, 4, 2, 3, 1, 2, 4, 10, 1, 1, 1, 1, 6, 3, 8, 10, 3, 6, 8, 6,
	}
	freqs := []uint8{
		2, 5, 2, 2, 4, 15, 2, 3, 4, 6, 1, 2, 3, 4, 9, 3, 1, 1, 6, 7, 6, 6, 1, 1, 1, 1, 1, 1, 1, 1,
	}
	return newLetterDistribution(AlphabetNameGerman, tokens, values, freqs)
}

// FrenchLetterDistribution returns the standard French 102-tile
// distribution (no diacritics; accented letters are folded).
func FrenchLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	tokens := []string{
		"?", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	}
	values := []int{0, 1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 10, 1, 2, 1, 1, 3, 8, 1, 1, 1, 1, 4, 10, 10, 10, 10}
	freqs := []uint8{2, 9, 2, 2, 3, 15, 2, 2, 2, 8, 1, 1, 5, 3, 6, 6, 2, 1, 6, 6, 6, 6, 2, 1, 1, 1, 1}
	return newLetterDistribution(AlphabetNameFrench, tokens, values, freqs)
}

// SpanishLetterDistribution returns the Spanish 100-tile distribution,
// including "CH", "LL", "RR" digraph tiles (demonstrating the
// longest-match tokenizer requirement in spec §4.1).
func SpanishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	tokens := []string{
		"?", "A", "B", "C", "CH", "D", "E", "F", "G", "H", "I", "J", "L", "LL",
		"M", "N", "Ñ", "O", "P", "Q", "R", "RR", "S", "T", "U", "V", "X", "Y", "Z",
	}
	values := []int{
		0, 1, 3, 3, 5, 2, 1, 4, 2, 4, 1, 8, 1, 8,
		3, 1, 8, 1, 3, 5, 1, 8, 1, 1, 1, 4, 8, 4, 10,
	}
	freqs := []uint8{
		2, 12, 2, 4, 1, 5, 12, 1, 2, 2, 6, 1, 4, 1,
		2, 5, 1, 9, 2, 1, 5, 1, 6, 4, 5, 1, 1, 1, 1,
	}
	return newLetterDistribution(AlphabetNameSpanish, tokens, values, freqs)
}

// Names of supported alphabets.
const (
	AlphabetNameEnglish = "English"
	AlphabetNameGerman  = "German"
	AlphabetNameFrench  = "French"
	AlphabetNameSpanish = "Spanish"
)

// GetDistribution dispatches a named letter distribution, mirroring the
// teacher's tilemapping.GetDistribution(settings, name) entry point.
func GetDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	switch name {
	case AlphabetNameEnglish, "":
		return EnglishLetterDistribution(cfg)
	case AlphabetNameGerman:
		return GermanLetterDistribution(cfg)
	case AlphabetNameFrench:
		return FrenchLetterDistribution(cfg)
	case AlphabetNameSpanish:
		return SpanishLetterDistribution(cfg)
	default:
		return nil, fmt.Errorf("tilemapping: unknown letter distribution %q", name)
	}
}
