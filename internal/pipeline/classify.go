package pipeline

import "github.com/andy-k/omgbot/internal/pb"

type kind int

const (
	kindUnfiltered kind = iota
	kindTilt
	kindSim
	kindNoLeave
	kindUnsupported
)

type classification struct {
	kind          kind
	level         int
	useCommonWord bool
}

// classify maps a requested bot code onto one of {Unfiltered, Tilt, Sim,
// NoLeave, Unsupported} plus whether it should read through the common-word
// sublexicon (spec §4.10 step 9). Bot codes the teacher's own enum lists
// as recognized-but-out-of-scope (HastyPlusEndgameBot, SimmingInferBot,
// FastMlBot, RandomBotWithTemperature, SimmingWithMlEvalBot) fall through
// to Unsupported, same as an unrecognized code.
func classify(bot pb.BotCode, jumbled, hasCommonWord bool) classification {
	switch bot {
	case pb.HastyBot:
		return classification{kind: kindUnfiltered}
	case pb.NoLeaveBot:
		return classification{kind: kindNoLeave}
	case pb.SimmingBot:
		if jumbled {
			return classification{kind: kindUnsupported}
		}
		return classification{kind: kindSim}
	case pb.Level1Probabilistic, pb.Level2Probabilistic, pb.Level3Probabilistic,
		pb.Level4Probabilistic, pb.Level5Probabilistic:
		if jumbled {
			return classification{kind: kindUnsupported}
		}
		return classification{kind: kindTilt, level: probabilisticLevel(bot)}
	case pb.Level1CommonWordBot, pb.Level2CommonWordBot, pb.Level3CommonWordBot, pb.Level4CommonWordBot:
		if jumbled || !hasCommonWord {
			return classification{kind: kindUnsupported}
		}
		return classification{kind: kindTilt, level: commonWordLevel(bot), useCommonWord: true}
	default:
		return classification{kind: kindUnsupported}
	}
}

func probabilisticLevel(bot pb.BotCode) int {
	switch bot {
	case pb.Level1Probabilistic:
		return 1
	case pb.Level2Probabilistic:
		return 2
	case pb.Level3Probabilistic:
		return 3
	case pb.Level4Probabilistic:
		return 4
	default:
		return 5
	}
}

func commonWordLevel(bot pb.BotCode) int {
	switch bot {
	case pb.Level1CommonWordBot:
		return 1
	case pb.Level2CommonWordBot:
		return 2
	case pb.Level3CommonWordBot:
		return 3
	default:
		return 4
	}
}

// tiltFactorForLevel and leaveScaleForLevel give each bot level a
// concrete (tilt_factor, leave_scale) pair. spec.md leaves the exact
// numbers unspecified (§9 Open Question); these descend/ascend with
// level the same direction as the teacher's own BotConfigs findability
// table in ai/runner/filters.go (weaker levels reject more candidates),
// recorded as a decision in DESIGN.md rather than invented silently.
func tiltFactorForLevel(level int) float64 {
	switch level {
	case 1:
		return 0.85
	case 2:
		return 0.65
	case 3:
		return 0.45
	case 4:
		return 0.25
	default:
		return 0.10
	}
}

func leaveScaleForLevel(level int) float64 {
	switch level {
	case 1:
		return 0.2
	case 2:
		return 0.4
	case 3:
		return 0.6
	case 4:
		return 0.8
	default:
		return 1.0
	}
}
