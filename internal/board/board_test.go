package board

import (
	"testing"

	"github.com/andy-k/omgbot/internal/tilemapping"
	"github.com/matryer/is"
)

func TestCenterSquareIsAnchorOnEmptyBoard(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	is.True(b.IsAnchor(7, 7))
	is.True(!b.IsAnchor(0, 0))
}

func TestAnchorsAppearAdjacentToFilledSquares(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	b.SetLetter(7, 7, tilemapping.MachineLetter(1))
	is.True(b.IsAnchor(7, 8))
	is.True(b.IsAnchor(6, 7))
	is.True(!b.IsAnchor(7, 7)) // no longer empty
	is.True(!b.IsAnchor(5, 5))
}

func TestStriderAtMatchesManualIndexing(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	across := b.Across(3)
	is.Equal(across.At(5), 3*b.Dim()+5)
	down := b.Down(3)
	is.Equal(down.At(5), 5*b.Dim()+3)
}

func TestMainWordScansToEmptySquares(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	word := tilemapping.MachineWord{1, 2, 3}
	for i, t := range word {
		b.SetLetter(7, 7+i, t)
	}
	got := b.MainWord(Placement{Down: false, Lane: 7, Idx: 7, Tiles: word})
	is.Equal(len(got), 3)
}
