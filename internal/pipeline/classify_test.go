package pipeline

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/andy-k/omgbot/internal/pb"
)

func TestClassifyHastyBotIsUnfiltered(t *testing.T) {
	is := is.New(t)
	cls := classify(pb.HastyBot, false, false)
	is.Equal(cls.kind, kindUnfiltered)
}

func TestClassifyProbabilisticBotIsTiltWithLevel(t *testing.T) {
	is := is.New(t)
	cls := classify(pb.Level3Probabilistic, false, false)
	is.Equal(cls.kind, kindTilt)
	is.Equal(cls.level, 3)
	is.True(!cls.useCommonWord)
}

func TestClassifyProbabilisticBotUnsupportedWhenJumbled(t *testing.T) {
	is := is.New(t)
	cls := classify(pb.Level3Probabilistic, true, false)
	is.Equal(cls.kind, kindUnsupported)
}

func TestClassifyCommonWordBotRequiresSublexicon(t *testing.T) {
	is := is.New(t)
	withSub := classify(pb.Level2CommonWordBot, false, true)
	is.Equal(withSub.kind, kindTilt)
	is.True(withSub.useCommonWord)

	withoutSub := classify(pb.Level2CommonWordBot, false, false)
	is.Equal(withoutSub.kind, kindUnsupported)
}

func TestClassifySimmingBotUnsupportedWhenJumbled(t *testing.T) {
	is := is.New(t)
	is.Equal(classify(pb.SimmingBot, false, false).kind, kindSim)
	is.Equal(classify(pb.SimmingBot, true, false).kind, kindUnsupported)
}

func TestClassifyUnrecognizedBotCodeIsUnsupported(t *testing.T) {
	is := is.New(t)
	is.Equal(classify(pb.FastMlBot, false, false).kind, kindUnsupported)
	is.Equal(classify(pb.BotUnknown, false, false).kind, kindUnsupported)
}

// TestTiltTablesAreMonotonicByLevel checks the per-level calibration table
// moves toward level 5 in both dimensions (tilt factor falling, leave
// scale rising), table-driven the way a
// multi-case numeric sweep reads best.
func TestTiltTablesAreMonotonicByLevel(t *testing.T) {
	cases := []struct {
		level              int
		wantTiltAtMost     float64
		wantLeaveScaleAtLeast float64
	}{
		{1, 0.85, 0.2},
		{2, 0.65, 0.4},
		{3, 0.45, 0.6},
		{4, 0.25, 0.8},
		{5, 0.10, 1.0},
	}

	var prevTilt = 1.1
	var prevLeave = -0.1
	for _, c := range cases {
		tilt := tiltFactorForLevel(c.level)
		leave := leaveScaleForLevel(c.level)

		require.LessOrEqualf(t, tilt, c.wantTiltAtMost, "level %d tilt factor", c.level)
		require.GreaterOrEqualf(t, leave, c.wantLeaveScaleAtLeast, "level %d leave scale", c.level)
		require.Lessf(t, tilt, prevTilt, "level %d tilt factor should be lower than the previous level", c.level)
		require.Greaterf(t, leave, prevLeave, "level %d leave scale should be higher than the previous level", c.level)

		prevTilt, prevLeave = tilt, leave
	}
}
