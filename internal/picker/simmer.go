package picker

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"

	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/movegen"
)

// zCritical is the one-sided 95% z threshold used to prune a candidate
// whose mean is provably worse than the current leader's (spec §4.8 step
// 3: "one-sided statistical test; simple z-score suffices").
const zCritical = 1.645

// Simmer runs Monte-Carlo playouts over the top-N Hasty candidates and
// keeps only the survivor, the way the teacher's endgame/negamax solver
// fans helper goroutines out over an errgroup and checks ctx.Err() at
// each iteration boundary to support cancellation — generalized here from
// exact-search helper threads to independent statistical playouts.
type Simmer struct {
	Hasty            *Hasty
	TopN             int // candidates carried into simulation (spec: "e.g. 15")
	Plies            int // D: total plies per playout, including the fixed root move
	PlayoutsPerBlock int // K: playouts run per candidate before a prune check
	MaxBlocks        int // hard stop if no candidate is pruned out by then
	Concurrency      int // max in-flight playout goroutines
}

// NewSimmer builds a Simmer with the spec's suggested defaults.
func NewSimmer(hasty *Hasty) *Simmer {
	return &Simmer{
		Hasty: hasty, TopN: 15, Plies: 2, PlayoutsPerBlock: 10,
		MaxBlocks: 20, Concurrency: 8,
	}
}

type candidateStat struct {
	play    *movegen.Play
	mu      sync.Mutex
	samples []float64
}

func (c *candidateStat) record(v float64) {
	c.mu.Lock()
	c.samples = append(c.samples, v)
	c.mu.Unlock()
}

func (c *candidateStat) meanVariance() (mean, variance float64, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n = len(c.samples)
	if n == 0 {
		return 0, 0, 0
	}
	if n == 1 {
		return c.samples[0], 0, 1
	}
	mean, variance = stat.MeanVariance(c.samples, nil)
	return mean, variance, n
}

// Pick takes rootGame (on the candidate owner's turn, with plays already
// generated and filtered by the caller) and returns the surviving
// candidate. It never blocks past ctx's cancellation: a cancelled
// context returns whatever candidate currently leads.
func (s *Simmer) Pick(ctx context.Context, rootGame *game.Game, zob *game.Zobrist, plays []*movegen.Play, ownFilter filter.State, jumbled bool) (*movegen.Play, error) {
	if len(plays) == 0 {
		return movegen.NewPassPlay(rootGame.Alphabet()), nil
	}
	candidates := plays
	if len(candidates) > s.TopN {
		candidates = candidates[:s.TopN]
	}
	stats := make([]*candidateStat, len(candidates))
	for i, p := range candidates {
		stats[i] = &candidateStat{play: p}
	}
	alive := make([]int, len(candidates))
	for i := range alive {
		alive[i] = i
	}
	owner := rootGame.Turn

	for block := 0; block < s.MaxBlocks && len(alive) > 1; block++ {
		if ctx.Err() != nil {
			break
		}
		sem := semaphore.NewWeighted(int64(s.Concurrency))
		eg, egCtx := errgroup.WithContext(ctx)
		for _, idx := range alive {
			idx := idx
			for k := 0; k < s.PlayoutsPerBlock; k++ {
				if err := sem.Acquire(egCtx, 1); err != nil {
					break
				}
				eg.Go(func() error {
					defer sem.Release(1)
					diff := s.playout(rootGame, zob, owner, stats[idx].play, ownFilter, jumbled)
					stats[idx].record(diff)
					return nil
				})
			}
		}
		_ = eg.Wait() // a cancelled context just stops early; partial samples still count

		alive = pruneWorse(stats, alive)
	}

	best := alive[0]
	bestMean, _, _ := stats[best].meanVariance()
	for _, idx := range alive[1:] {
		mean, _, _ := stats[idx].meanVariance()
		if mean > bestMean {
			best, bestMean = idx, mean
		}
	}
	return stats[best].play, nil
}

// pruneWorse drops every candidate whose mean is provably worse than the
// current leader's via a one-sided z-test, keeping at least the leader.
func pruneWorse(stats []*candidateStat, alive []int) []int {
	leader := alive[0]
	leaderMean, leaderVar, leaderN := stats[leader].meanVariance()
	for _, idx := range alive[1:] {
		mean, variance, n := stats[idx].meanVariance()
		if mean > leaderMean {
			leader, leaderMean, leaderVar, leaderN = idx, mean, variance, n
		}
	}
	survivors := []int{leader}
	for _, idx := range alive {
		if idx == leader {
			continue
		}
		mean, variance, n := stats[idx].meanVariance()
		if n == 0 || leaderN == 0 {
			survivors = append(survivors, idx)
			continue
		}
		se := math.Sqrt(leaderVar/float64(leaderN) + variance/float64(n))
		if se == 0 {
			if mean < leaderMean {
				continue
			}
			survivors = append(survivors, idx)
			continue
		}
		z := (leaderMean - mean) / se
		if z > zCritical {
			continue // provably worse than the leader; drop
		}
		survivors = append(survivors, idx)
	}
	return survivors
}

// playout fixes root's move to candidate, then alternates Hasty moves for
// both sides for the remaining plies, returning the candidate owner's
// final score differential. zob keys a memo of Hasty picks that lives for
// this one playout only (the teacher's zobrist/hash.go,
// adapted from endgame transposition tables to playout memoization, per
// its own doc comment).
func (s *Simmer) playout(rootGame *game.Game, zob *game.Zobrist, owner int, candidate *movegen.Play, ownFilter filter.State, jumbled bool) float64 {
	rng := frand.New()
	sim := rootGame.Copy()
	sim.Bag.Shuffle(rng)

	sim.PlayMove(candidate)

	memo := map[uint64]*movegen.Play{}
	for ply := 1; ply < s.Plies && sim.Playing; ply++ {
		fillRackFromBag(sim, rng)
		filt := filter.Unfiltered()
		if sim.Turn == owner {
			filt = ownFilter
		}
		key := zob.Hash(sim)
		move, ok := memo[key]
		if !ok {
			move = s.Hasty.Pick(sim.Board, sim.CurrentPlayer().Rack, filt, jumbled, rng)
			memo[key] = move
		}
		sim.PlayMove(move)
	}

	return float64(sim.Players[owner].Score - sim.Players[owner^1].Score)
}

// fillRackFromBag tops the player on turn's rack up to the configured
// rack size by drawing uniformly from the bag, simulating an unknown
// opponent holding a full random hand from the unseen pool (spec §4.8
// step 2: "draws tiles uniformly from the unseen set for the opponent").
func fillRackFromBag(sim *game.Game, rng *frand.RNG) {
	p := sim.CurrentPlayer()
	need := sim.Config.RackSize - p.Rack.NumTiles()
	if need <= 0 {
		return
	}
	sim.Bag.Shuffle(rng)
	drawn := sim.Bag.DrawAtMost(need)
	if len(drawn) == 0 {
		return
	}
	for _, t := range drawn {
		p.Rack.Add(t)
	}
}
