package klv

import (
	"testing"

	"github.com/matryer/is"
)

func TestEmptyLeavesAlwaysZero(t *testing.T) {
	is := is.New(t)
	l := EmptyLeaves()
	is.Equal(l.LeaveValue(nil), float32(0.0))
}
