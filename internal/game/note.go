package game

type Note struct {
	ID        uint64    // Unique within a session, never reused
	Direction Direction // The lane this note scrolls down
	Position  float64   // Distance travelled along the lane

	// This is state
	Resolved     bool   // Has the note been hit
	ResolvedTick uint64 // The advance tick the note was hit on, for fading
}

// Distance to the hit line, always positive.
func (note *Note) Distance(hitLine float64) float64 {
	d := note.Position - hitLine
	if d < 0 {
		return -d
	}
	return d
}
