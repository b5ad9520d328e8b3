package reduce

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrDepth is returned when descent does not reach a single element
// within the configured number of rounds. Rows with duplicate values
// shrink at every round; for strictly-distinct rows termination is
// conjectured but not proven, so the cap is mandatory.
var ErrDepth = errors.New("reduction depth limit exceeded")

// Down reduces vec to a single raw value, recording one Level per
// round (root level first). maxDepth bounds the number of rounds.
func Down(vec []Aligned, maxDepth int) (int64, []Level, error) {
	if len(vec) == 0 {
		return 0, nil, errors.New("cannot reduce an empty vector")
	}

	var levels []Level
	for depth := 0; len(vec) > 1; depth++ {
		if depth >= maxDepth {
			return 0, nil, fmt.Errorf("%w: %d rounds on %d remaining elements", ErrDepth, maxDepth, len(vec))
		}

		lvl := buildLevel(vec)
		levels = append(levels, lvl)

		// First differences of the distinct sorted values. The first
		// one is the minimum itself; the rest are gaps, all strictly
		// positive, so re-alignment is always valid.
		next := make([]Aligned, len(lvl.Entries))
		prev := int64(0)
		for k, e := range lvl.Entries {
			next[k] = Align(e.Value - prev)
			prev = e.Value
		}
		vec = next
	}

	return vec[0].Value(), levels, nil
}

// buildLevel sorts vec by core value and groups equal cores into
// entries carrying their original positions and shifts. Tie order
// within an equal-value group is irrelevant: every ref is an
// independent random-access write during ascent.
func buildLevel(vec []Aligned) Level {
	order := make([]int, len(vec))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(vec[a].Core, vec[b].Core)
	})

	lvl := Level{Width: len(vec)}
	for _, pos := range order {
		v := vec[pos]
		if n := len(lvl.Entries); n > 0 && lvl.Entries[n-1].Value == v.Core {
			e := &lvl.Entries[n-1]
			e.Refs = append(e.Refs, Ref{Pos: pos, Shift: v.Shift})
			continue
		}
		lvl.Entries = append(lvl.Entries, Entry{
			Value: v.Core,
			Refs:  []Ref{{Pos: pos, Shift: v.Shift}},
		})
	}
	return lvl
}
