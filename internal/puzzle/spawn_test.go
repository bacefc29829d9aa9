package puzzle

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSpawnTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   SpawnTable
		wantErr bool
	}{
		{"default", DefaultSpawnTable(), false},
		{"empty", SpawnTable{}, true},
		{"zero value", SpawnTable{{Value: 0, Weight: 1}}, true},
		{"odd value", SpawnTable{{Value: 6, Weight: 1}}, true},
		{"zero weight", SpawnTable{{Value: 2, Weight: 0}}, true},
		{"single", SpawnTable{{Value: 2, Weight: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpawnDistribution(t *testing.T) {
	table := DefaultSpawnTable()
	rng := rand.New(rand.NewSource(2048))
	const draws = 20000

	counts := map[int]float64{}
	for range draws {
		counts[table.Pick(rng)]++
	}

	if len(counts) != 2 {
		t.Fatalf("unexpected values drawn: %v", counts)
	}

	observed := []float64{counts[2], counts[4]}
	expected := []float64{draws * table.Probability(2), draws * table.Probability(4)}
	chi := stat.ChiSquare(observed, expected)
	p := distuv.ChiSquared{K: 1}.Survival(chi)
	if p < 0.001 {
		t.Errorf("spawn counts %v deviate from %v (chi2=%.2f, p=%.5f)", observed, expected, chi, p)
	}
}

func TestSpawnEmptyTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if v := (SpawnTable{}).Pick(rng); v != 2 {
		t.Errorf("empty table Pick() = %d, want 2", v)
	}
}
