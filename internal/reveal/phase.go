package reveal

// Phase is a step of the reveal sequence.
type Phase int

const (
	Idle Phase = iota
	Locking
	Blinking
	Waiting
	Revealing
	Resetting
)

var phaseNames = [...]string{"idle", "locking", "blinking", "waiting", "revealing", "resetting"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}
