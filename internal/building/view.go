package building

import "github.com/szymonmasternak/lift-simulator/internal/user"

// View is what a dispatcher sees at a decision point.
type View struct {
	Floors       [][]*user.User
	Occupants    []*user.User
	Now          int
	CurrentFloor int
}

func (v View) TopFloor() int {
	return len(v.Floors) - 1
}

// WaitingHere is the current floor's waiting list, empty when the lift is
// outside the shaft.
func (v View) WaitingHere() []*user.User {
	if v.CurrentFloor < 0 || v.CurrentFloor >= len(v.Floors) {
		return nil
	}
	return v.Floors[v.CurrentFloor]
}

// DropOffs returns the occupants whose destination is the current floor.
func (v View) DropOffs() []*user.User {
	var dropOff []*user.User
	for _, u := range v.Occupants {
		if u.EndFloor == v.CurrentFloor {
			dropOff = append(dropOff, u)
		}
	}
	return dropOff
}

func (v View) AnyoneWaiting() bool {
	for _, floor := range v.Floors {
		if len(floor) > 0 {
			return true
		}
	}
	return false
}

// Idle reports that nobody waits anywhere and the lift is empty.
func (v View) Idle() bool {
	return len(v.Occupants) == 0 && !v.AnyoneWaiting()
}

func (v View) WaitingAbove() bool {
	for f := v.CurrentFloor + 1; f < len(v.Floors); f++ {
		if len(v.Floors[f]) > 0 {
			return true
		}
	}
	return false
}

func (v View) WaitingAtOrBelow() bool {
	for f := min(v.CurrentFloor, len(v.Floors)-1); f >= 0; f-- {
		if len(v.Floors[f]) > 0 {
			return true
		}
	}
	return false
}
