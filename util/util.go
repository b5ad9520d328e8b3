package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomRow generates a row of signed integers in
// [-maxMagnitude, maxMagnitude], zeros included.
func (r *RNG) GenerateRandomRow(length int, maxMagnitude int64) []int64 {
	row := make([]int64, length)
	for i := range row {
		row[i] = r.rand.Int63n(2*maxMagnitude+1) - maxMagnitude
	}
	return row
}

// GenerateRandomRows generates num random rows using the given RNG.
func (r *RNG) GenerateRandomRows(num, length int, maxMagnitude int64) [][]int64 {
	rows := make([][]int64, num)
	for i := range rows {
		rows[i] = r.GenerateRandomRow(length, maxMagnitude)
	}
	return rows
}
