package movegen

import "sort"

// sortPlays orders candidates by equity descending, breaking ties by
// (score desc, word lexicographically, direction H before V, lane asc,
// idx asc) as required by spec §4.6.
func sortPlays(plays []*Play) {
	sort.SliceStable(plays, func(i, j int) bool {
		a, b := plays[i], plays[j]
		if a.equity != b.equity {
			return a.equity > b.equity
		}
		if a.score != b.score {
			return a.score > b.score
		}
		aw, bw := a.alph.FormatPlay(a.tiles), b.alph.FormatPlay(b.tiles)
		if aw != bw {
			return aw < bw
		}
		if a.vertical != b.vertical {
			return !a.vertical // horizontal (false) before vertical (true)
		}
		lane := func(p *Play) int {
			if p.vertical {
				return p.colStart
			}
			return p.rowStart
		}
		idx := func(p *Play) int {
			if p.vertical {
				return p.rowStart
			}
			return p.colStart
		}
		if lane(a) != lane(b) {
			return lane(a) < lane(b)
		}
		return idx(a) < idx(b)
	})
}
