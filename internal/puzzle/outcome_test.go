package puzzle

import (
	"slices"
	"testing"
)

func loadBoard(t *testing.T, values []int) *Board {
	t.Helper()
	b := NewBoard()
	if err := b.Load(values); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return b
}

func TestIsLost(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		lost bool
	}{
		{
			name: "full without merges",
			vals: []int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			lost: true,
		},
		{
			name: "full with horizontal merge",
			vals: []int{
				2, 2, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			lost: false,
		},
		{
			name: "full with vertical merge",
			vals: []int{
				2, 4, 8, 16,
				2, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			lost: false,
		},
		{
			name: "one empty cell",
			vals: []int{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 0, 4096,
				8192, 16384, 32768, 65536,
			},
			lost: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := loadBoard(t, tt.vals)
			if got := IsLost(b); got != tt.lost {
				t.Errorf("IsLost() = %v, want %v", got, tt.lost)
			}
			if got := CanMove(b); got == tt.lost {
				t.Errorf("CanMove() = %v, want %v", got, !tt.lost)
			}
		})
	}
}

func TestCanMoveDoesNotMutate(t *testing.T) {
	b := loadBoard(t, []int{
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	before := b.Values()
	CanMove(b)
	if !slices.Equal(b.Values(), before) {
		t.Error("CanMove should not modify the board")
	}
}

func TestReached(t *testing.T) {
	b := loadBoard(t, []int{
		128, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	if !Reached(b, 128) {
		t.Error("Reached(128) should be true")
	}
	if Reached(b, 256) {
		t.Error("Reached(256) should be false")
	}
	if Reached(b, 0) {
		t.Error("Reached(0) should be false: no target")
	}
}
