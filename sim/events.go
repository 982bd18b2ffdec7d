package sim

import "fmt"

// Phase is the lifecycle stage of a run
type Phase int

const (
	Configuring Phase = iota
	Placing
	Running
	Ended
)

func (p Phase) String() string {
	switch p {
	case Configuring:
		return "configuring"
	case Placing:
		return "placing"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// EndReason says why a run stopped
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonExtinct   EndReason = "extinct"
	ReasonMaxCycles EndReason = "max cycles reached"
)

// Status is the externally visible state of a run
type Status struct {
	Phase  Phase
	Cycle  int
	Alive  int
	Placed int
	Target int
	Reason EndReason
}

// Remaining is the number of cells still to be placed
func (s Status) Remaining() int {
	return max(0, s.Target-s.Placed)
}

// Event is sent to the listener whenever something visible happens
type Event interface {
	fmt.Stringer
}

// Listener receives events synchronously on the goroutine that caused them
type Listener func(Event)

// PhaseChanged is sent on every lifecycle transition
type PhaseChanged struct {
	From, To Phase
}

func (e PhaseChanged) String() string {
	return fmt.Sprintf("Phase changed from %v to %v", e.From, e.To)
}

// CellPlaced is sent for every cell brought to life during placement
type CellPlaced struct {
	X, Y      int
	Remaining int
}

func (e CellPlaced) String() string {
	return fmt.Sprintf("Number of remaining cells to click on and make alive: %d", e.Remaining)
}

// GenerationComplete is sent after each new generation is swapped in
type GenerationComplete struct {
	Cycle int
	Alive int
}

func (e GenerationComplete) String() string {
	return fmt.Sprintf("Cycle %d: %d alive cells", e.Cycle, e.Alive)
}

// GameEnded is sent once, when the run stops
type GameEnded struct {
	Cycle  int
	Alive  int
	Reason EndReason
}

func (e GameEnded) String() string {
	if e.Reason == ReasonExtinct {
		return fmt.Sprintf("The game ended at %d cycles. There are no alive cells.", e.Cycle)
	}
	return fmt.Sprintf("The game ended at %d cycles. There remains %d alive cells.", e.Cycle, e.Alive)
}
