package reduce

import "fmt"

// Ref records one occurrence of a distinct value: the index it
// occupied in that level's vector and the shift stripped from it by
// alignment.
type Ref struct {
	Pos   int
	Shift uint
}

// Entry pairs a distinct value with every place it occurred.
type Entry struct {
	Value int64
	Refs  []Ref
}

// Level is the reconstruction record for one descent round: the
// vector width before dedup and the distinct values in ascending
// order, each with its occurrence refs.
//
// Invariant: the Pos fields across all entries partition
// 0..Width-1, each index exactly once.
type Level struct {
	Width   int
	Entries []Entry
}

// CheckPartition verifies the position invariant. It is exercised by
// the property tests and is cheap enough to run on every level there.
func (l Level) CheckPartition() error {
	seen := make([]bool, l.Width)
	n := 0
	for _, e := range l.Entries {
		for _, r := range e.Refs {
			if r.Pos < 0 || r.Pos >= l.Width {
				return fmt.Errorf("position %d outside level of width %d", r.Pos, l.Width)
			}
			if seen[r.Pos] {
				return fmt.Errorf("position %d recorded twice", r.Pos)
			}
			seen[r.Pos] = true
			n++
		}
	}
	if n != l.Width {
		return fmt.Errorf("recorded %d positions, want %d", n, l.Width)
	}
	return nil
}
