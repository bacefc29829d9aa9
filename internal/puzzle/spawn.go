package puzzle

import (
	"fmt"
	"math/rand"
)

// SpawnOption is one weighted entry of a SpawnTable.
type SpawnOption struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// SpawnTable is the weighted set of values a new tile is drawn from.
type SpawnTable []SpawnOption

// DefaultSpawnTable spawns a 2 nine times out of ten and a 4 otherwise.
func DefaultSpawnTable() SpawnTable {
	return SpawnTable{
		{Value: 2, Weight: 9},
		{Value: 4, Weight: 1},
	}
}

// Validate checks that every value is a tile and every weight is positive.
func (t SpawnTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("puzzle: spawn table is empty")
	}
	for _, opt := range t {
		if opt.Value < 2 || !IsTileValue(opt.Value) {
			return fmt.Errorf("puzzle: spawn value %d is not a power of two >= 2", opt.Value)
		}
		if opt.Weight <= 0 {
			return fmt.Errorf("puzzle: spawn weight for %d must be positive, got %d", opt.Value, opt.Weight)
		}
	}
	return nil
}

// Probability returns the chance of drawing value.
func (t SpawnTable) Probability(value int) float64 {
	total, hit := 0, 0
	for _, opt := range t {
		total += opt.Weight
		if opt.Value == value {
			hit += opt.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hit) / float64(total)
}

// Pick draws a value. An empty table always yields 2.
func (t SpawnTable) Pick(rng *rand.Rand) int {
	total := 0
	for _, opt := range t {
		total += opt.Weight
	}
	if total <= 0 {
		return 2
	}

	n := rng.Intn(total)
	for _, opt := range t {
		if n < opt.Weight {
			return opt.Value
		}
		n -= opt.Weight
	}
	return t[len(t)-1].Value
}
