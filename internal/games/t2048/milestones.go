// Package t2048 runs the 2048 puzzle as a tick-driven game with classic and
// endless modes.
package t2048

// Milestone is a named tile value announced the first time it appears.
type Milestone struct {
	Target int
	Name   string
}

// Milestones lists the announced tiles in ascending order.
var Milestones = []Milestone{
	{Target: 128, Name: "Warm-up"},
	{Target: 256, Name: "Getting Started"},
	{Target: 512, Name: "Building Momentum"},
	{Target: 1024, Name: "The Climb"},
	{Target: 2048, Name: "Classic 2048"},
	{Target: 4096, Name: "Beyond Limits"},
	{Target: 8192, Name: "Master Class"},
	{Target: 16384, Name: "Grandmaster"},
	{Target: 32768, Name: "Ultimate Champion"},
}

// firstMilestoneAbove returns the index of the first milestone with a
// target greater than maxTile.
func firstMilestoneAbove(maxTile int) int {
	for i, m := range Milestones {
		if m.Target > maxTile {
			return i
		}
	}
	return len(Milestones)
}
