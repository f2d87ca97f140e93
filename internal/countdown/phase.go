package countdown

// Phase is the run state of a countdown.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Expired
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Expired:
		return "Expired"
	}

	return "Unknown"
}

// State is a snapshot of a countdown.
type State struct {
	// Duration is the committed countdown length in seconds. Zero means no
	// duration has been committed. An invalid commit clears Duration without
	// touching Remaining, so Remaining may exceed Duration until the next
	// Reset or valid commit.
	Duration  int
	Remaining int
	Phase     Phase
}

// DurationSet reports whether a duration has been committed.
func (s State) DurationSet() bool {
	return s.Duration > 0
}

// Display returns the remaining time formatted as "MM:SS".
func (s State) Display() string {
	return Format(s.Remaining)
}

// StartLabel is the label for the start control.
func (s State) StartLabel() string {
	if s.Phase == Paused {
		return "Resume"
	}

	return "Start"
}
