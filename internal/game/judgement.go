package game

import "math"

type Judgement struct {
	Name     string
	Distance float64 // Exclusive upper bound of the tier
	Points   int
}

// Catch-all bound for the loosest tier, which is capped by the tolerance instead.
var Unbounded = math.Inf(1)
