package planner

import (
	"math"
	"strings"
)

// splitBalanced divides total into parts whose whole-minute sizes differ by at most one.
// The first total%parts parts get the extra minute. A fractional remainder, only possible
// for fractional sessions, is added to the first part so the parts still sum to total.
func splitBalanced(total float64, parts int) []float64 {
	if parts < 1 {
		parts = 1
	}
	n := float64(parts)
	whole := math.Floor(total)
	frac := total - whole

	base := math.Floor(whole / n)
	rem := math.Mod(whole, n)
	out := make([]float64, parts)
	for i := range out {
		out[i] = base
		if float64(i) < rem {
			out[i]++
		}
	}
	out[0] += frac
	return out
}

// capBlocks folds trailing blocks into their predecessor until at most limit remain.
// Survivors keep their IDs.
func capBlocks(blocks []Block, limit int) []Block {
	if limit < 1 {
		limit = 1
	}
	for len(blocks) > limit {
		last := blocks[len(blocks)-1]
		blocks = blocks[:len(blocks)-1]
		tail := &blocks[len(blocks)-1]
		tail.DurationMin += last.DurationMin
		tail.Type = strings.Join([]string{tail.Type, last.Type}, " + ")
	}
	return blocks
}
