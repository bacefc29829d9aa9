package puzzle

// CanMove returns true if some direction would change the board.
func CanMove(b *Board) bool {
	for _, dir := range Directions() {
		if b.Clone().Apply(dir) {
			return true
		}
	}
	return false
}

// IsLost returns true when the board is full and no direction changes it.
func IsLost(b *Board) bool {
	return b.Full() && !CanMove(b)
}

// Reached returns true if the board holds a tile of at least target.
func Reached(b *Board, target int) bool {
	return target > 0 && b.MaxTile() >= target
}
