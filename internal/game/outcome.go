package game

// Outcome is the result of judging a single press. A zero Outcome is a miss.
type Outcome struct {
	Hit       bool
	NoteID    uint64
	Direction Direction
	Judgement Judgement
	Points    int     // Base points of the judgement, before the combo multiplier
	Offset    float64 // Signed distance from the hit line, negative is early
}

func Miss(d Direction) Outcome {
	return Outcome{Direction: d}
}
