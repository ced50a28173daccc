// Package lexicon implements the lexicon registry (component C11): boot-
// time loading of every (language, lexicon, variant) combination's KWG/
// KAD/KLV artifacts, plus the ECWL/CGL common-word sublexicon. Grounded
// on the teacher's gaddag.GetDawg(cfg, "ECWL")-style lookup referenced
// from ai/runner/filters.go and the kwg.Get/tilemapping.GetDistribution
// loader shape implied by game/rules.go.
package lexicon

import (
	"path/filepath"
	"sort"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/andy-k/omgbot/config"
	"github.com/andy-k/omgbot/internal/filter"
	"github.com/andy-k/omgbot/internal/game"
	"github.com/andy-k/omgbot/internal/klv"
	"github.com/andy-k/omgbot/internal/kwg"
	"github.com/andy-k/omgbot/internal/movegen"
	"github.com/andy-k/omgbot/internal/tilemapping"
)

// referenceLexicon names the "common word" reference list per language
// (spec §4.9: "for English: ECWL; for German: CGL").
var referenceLexicon = map[string]string{
	tilemapping.AlphabetNameEnglish: "ECWL",
	tilemapping.AlphabetNameGerman:  "CGL",
}

// Spec names one (language, lexicon) pair the registry should attempt to
// load at boot, across all four variants.
type Spec struct {
	Language string
	Lexicon  string
}

// DefaultCatalog is the (language, lexicon) catalog both cmd/botbot and
// cmd/botbot-lambda boot from, restricted to the languages this module's
// tilemapping package implements letter distributions for (English,
// German, French, Spanish), taken from the wider catalog in
// original_source/src/main.rs.
var DefaultCatalog = []Spec{
	{Language: "English", Lexicon: "CSW19"},
	{Language: "English", Lexicon: "CSW19X"},
	{Language: "English", Lexicon: "CSW21"},
	{Language: "English", Lexicon: "CSW24"},
	{Language: "English", Lexicon: "CSW24X"},
	{Language: "English", Lexicon: "ECWL"},
	{Language: "English", Lexicon: "NSWL20"},
	{Language: "English", Lexicon: "NWL18"},
	{Language: "English", Lexicon: "NWL20"},
	{Language: "English", Lexicon: "NWL23"},
	{Language: "German", Lexicon: "CGL"},
	{Language: "German", Lexicon: "RD28"},
	{Language: "German", Lexicon: "RD29"},
	{Language: "French", Lexicon: "FRA20"},
	{Language: "French", Lexicon: "FRA24"},
	{Language: "Spanish", Lexicon: "FILE2017"},
}

// Key identifies one fully-resolved registry entry.
type Key struct {
	Language string
	Lexicon  string
	Variant  game.Variant
}

// Entry bundles everything a request needs to play a (language, lexicon,
// variant) combination: the immutable graph/leave artifacts, a ready
// Generator, and a prebuilt tilt-filter length-importance curve. Every
// field is read-only after Load returns and shared by reference across
// every in-flight request (spec §5).
type Entry struct {
	Key               Key
	Config            *game.Config
	Graph             *kwg.KWG // kwg/kbwg for sequential variants, kad for jumbled
	Leaves            *klv.Leaves
	Generator         *movegen.Generator
	CommonWordGraph   *kwg.KWG // nil unless a reference lexicon intersection was built
	LengthImportances map[int]float64
}

// Registry is the boot-time-populated, read-only-after-Load lookup table
// (spec §4.9: "Register the triple (lexicon, variant, super?) → {...}").
type Registry struct {
	entries map[Key]*Entry
}

// Get resolves a registry entry, or (nil, false) if it was never loaded
// (a missing combination is a request-time error, not a panic — spec §7).
func (r *Registry) Get(language, lexiconName string, v game.Variant) (*Entry, bool) {
	e, ok := r.entries[Key{Language: language, Lexicon: lexiconName, Variant: v}]
	return e, ok
}

// Resolve looks up an entry by lexicon name and variant alone, the shape
// a request actually carries (spec §4.10 step 3: "resolve (lexicon,
// variant, super) to the registry triple" — the request has no separate
// language field, and lexicon names are unique across the languages this
// service loads).
func (r *Registry) Resolve(lexiconName string, v game.Variant) (*Entry, bool) {
	for key, e := range r.entries {
		if key.Lexicon == lexiconName && key.Variant == v {
			return e, true
		}
	}
	return nil, false
}

var allVariants = []game.Variant{
	game.VarClassic, game.VarWordSmog, game.VarClassicSuper, game.VarWordSmogSuper,
}

// Load attempts every (spec, variant) combination under cfg.DataPath.
// Every individual failure is logged and tolerated (spec §4.9: "Every
// load failure is warned but tolerated"); the returned Registry simply
// omits combinations that didn't load.
func Load(cfg *config.Config, specs []Spec) *Registry {
	logMemory()
	reg := &Registry{entries: map[Key]*Entry{}}

	type refEnumeration struct {
		graph *kwg.KWG
		words []tilemapping.MachineWord
	}
	refWords := map[string]refEnumeration{} // language -> reference ("ECWL"/"CGL") enumeration

	for _, spec := range specs {
		dist, err := tilemapping.GetDistribution(cfg, spec.Language)
		if err != nil {
			log.Warn().Err(err).Str("language", spec.Language).Msg("lexicon: unknown language, skipping")
			continue
		}
		for _, v := range allVariants {
			entry := loadOne(cfg, spec.Language, spec.Lexicon, v, dist)
			if entry == nil {
				continue
			}
			reg.entries[entry.Key] = entry
		}

		if refName, ok := referenceLexicon[spec.Language]; ok && spec.Lexicon == refName {
			if e, ok := reg.entries[Key{spec.Language, refName, game.VarClassic}]; ok {
				var words []tilemapping.MachineWord
				e.Graph.Enumerate(func(w tilemapping.MachineWord) bool {
					words = append(words, w)
					return true
				})
				refWords[spec.Language] = refEnumeration{graph: e.Graph, words: words}
			}
		}
	}

	// Second pass: build the common-word sublexicon for every other
	// same-language, non-jumbled entry now that reference enumerations are
	// available (spec §4.9: "intersect its word set with the reference
	// set... build a fresh KWG from the intersection").
	for key, entry := range reg.entries {
		if key.Variant.Jumbled() {
			continue
		}
		ref, ok := refWords[key.Language]
		if !ok || key.Lexicon == referenceLexicon[key.Language] {
			continue
		}
		var words []tilemapping.MachineWord
		entry.Graph.Enumerate(func(w tilemapping.MachineWord) bool {
			words = append(words, w)
			return true
		})
		intersection := intersectSorted(ref.words, words)
		if len(intersection) == 0 {
			continue
		}
		cw, err := kwg.BuildFromWords(key.Lexicon+"+common", entry.Config.Alphabet, intersection)
		if err != nil {
			log.Warn().Err(err).Str("lexicon", key.Lexicon).Msg("lexicon: failed building common-word sublexicon")
			continue
		}
		entry.CommonWordGraph = cw
		log.Info().Str("lexicon", key.Lexicon).Int("words", len(intersection)).Msg("lexicon: common-word sublexicon built")
	}

	return reg
}

func loadOne(cfg *config.Config, language, lexiconName string, v game.Variant, dist *tilemapping.LetterDistribution) *Entry {
	alph := dist.Alphabet()
	var graph *kwg.KWG
	var err error
	if v.Jumbled() {
		graph, err = kwg.LoadFile(filepath.Join(cfg.DataPath, lexiconName+".kad"), lexiconName, alph, false, false)
		if err != nil {
			log.Warn().Err(err).Str("lexicon", lexiconName).Str("variant", string(v)).Msg("lexicon: no .kad found, skipping jumbled variant")
			return nil
		}
	} else {
		graph, err = kwg.LoadFile(filepath.Join(cfg.DataPath, lexiconName+".kwg"), lexiconName, alph, false, false)
		if err != nil {
			graph, err = kwg.LoadFile(filepath.Join(cfg.DataPath, lexiconName+".kbwg"), lexiconName, alph, false, true)
		}
		if err != nil {
			log.Warn().Err(err).Str("lexicon", lexiconName).Str("variant", string(v)).Msg("lexicon: no .kwg/.kbwg found, skipping")
			return nil
		}
	}

	leaves := klv.EmptyLeaves()
	leavesPath := filepath.Join(cfg.DataPath, lexiconName+".klv2")
	if v.Super() {
		superPath := filepath.Join(cfg.DataPath, "super-"+lexiconName+".klv2")
		if l, err := klv.LoadFile(superPath, alph); err == nil {
			leaves = l
		} else if l, err := klv.LoadFile(leavesPath, alph); err == nil {
			leaves = l
		} else {
			log.Warn().Str("lexicon", lexiconName).Msg("lexicon: no klv2 found, using zero leave values")
		}
	} else if l, err := klv.LoadFile(leavesPath, alph); err == nil {
		leaves = l
	} else {
		log.Warn().Str("lexicon", lexiconName).Msg("lexicon: no klv2 found, using zero leave values")
	}

	gameCfg := game.NewConfig(v, dist, graph)
	gen := movegen.NewGenerator(graph, leaves, dist, v.Jumbled(), gameCfg.BingoBonus, gameCfg.RackSize)

	return &Entry{
		Key:               Key{Language: language, Lexicon: lexiconName, Variant: v},
		Config:            gameCfg,
		Graph:             graph,
		Leaves:            leaves,
		Generator:         gen,
		LengthImportances: buildLengthImportances(graph),
	}
}

// buildLengthImportances derives filter.State.LengthImportances from the
// graph's own word-length distribution: lengths with fewer entries (rarer,
// so a weaker bot is less likely to spot them) get a higher importance,
// which filter.threshold then divides down for stronger bots (spec §4.7).
func buildLengthImportances(graph *kwg.KWG) map[int]float64 {
	counts := map[int]int{}
	total := 0
	graph.Enumerate(func(w tilemapping.MachineWord) bool {
		counts[len(w)]++
		total++
		return true
	})
	importances := make(map[int]float64, len(counts))
	for length, n := range counts {
		if n == 0 || total == 0 {
			continue
		}
		frequency := float64(n) / float64(total)
		importances[length] = 1.0 / frequency / float64(total)
	}
	return importances
}

// intersectSorted merges two lexicographically sorted word lists and
// returns the intersection, also sorted (spec §4.9: "linear merge of two
// sorted enumerations").
func intersectSorted(a, b []tilemapping.MachineWord) []tilemapping.MachineWord {
	less := func(x, y tilemapping.MachineWord) bool {
		for i := 0; i < len(x) && i < len(y); i++ {
			if x[i] != y[i] {
				return x[i] < y[i]
			}
		}
		return len(x) < len(y)
	}
	equal := func(x, y tilemapping.MachineWord) bool {
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	}
	sort.Slice(a, func(i, j int) bool { return less(a[i], a[j]) })
	sort.Slice(b, func(i, j int) bool { return less(b[i], b[j]) })

	var out []tilemapping.MachineWord
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case equal(a[i], b[j]):
			out = append(out, a[i])
			i++
			j++
		case less(a[i], b[j]):
			i++
		default:
			j++
		}
	}
	return out
}

// logMemory reports available system memory at boot so an operator can
// judge whether to pre-warm every variant's super-board KLV (spec §4.9);
// this is log-only and never gates loading.
func logMemory() {
	total := memory.TotalMemory()
	free := memory.FreeMemory()
	log.Info().Uint64("total_bytes", total).Uint64("free_bytes", free).Msg("lexicon: system memory at boot")
}

// NewTilt builds a Tilt filter.State for this entry's lexicon using its
// prebuilt word-length-importance curve (spec §4.9: "For each loaded
// KWG, also prebuild a tilt filter"). Callers must not call this for a
// jumbled entry; the pipeline's bot classification enforces that first.
func (e *Entry) NewTilt(tiltFactor, leaveScale float64, botLevel int) filter.State {
	return filter.NewTilt(tiltFactor, leaveScale, botLevel, e.LengthImportances)
}
