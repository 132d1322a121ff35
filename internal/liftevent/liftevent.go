package liftevent

type SimulationEvent struct {
	//Golang doesnt support union types,
	//so we pass one of the structs below
	Value any
}

// ArrivalEvent is emitted when a user is released onto its start floor.
type ArrivalEvent struct {
	Time  int
	User  int
	Floor int
}

// StepEvent describes one applied action. Time is the clock before the
// action, Cost what the action added to it.
type StepEvent struct {
	Time      int
	FromFloor int
	Floor     int
	Action    string
	Cost      int
	Added     []int
	Removed   []int
	Occupants int
}

func (se StepEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: se}
}

type FinishedEvent struct {
	Time      int
	Delivered int
}

func (e *SimulationEvent) EventType() string {
	switch e.Value.(type) {
	case ArrivalEvent:
		return "ArrivalEvent"
	case StepEvent:
		return "StepEvent"
	case FinishedEvent:
		return "FinishedEvent"
	default:
		return "UnknownEvent"
	}
}

// Recorder keeps every event it is given, in order.
type Recorder struct {
	Events []SimulationEvent
}

func (r *Recorder) OnEvent(event SimulationEvent) {
	r.Events = append(r.Events, event)
}

func (r *Recorder) Steps() []StepEvent {
	var steps []StepEvent
	for _, event := range r.Events {
		if step, ok := event.Value.(StepEvent); ok {
			steps = append(steps, step)
		}
	}
	return steps
}
