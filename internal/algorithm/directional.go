package algorithm

import (
	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
	"github.com/szymonmasternak/lift-simulator/internal/user"
)

// turnFunc reports whether a directional dispatcher heading dirn should
// reverse at this decision point.
type turnFunc func(v building.View, dirn liftconsts.Dirn) bool

func atBoundary(v building.View, dirn liftconsts.Dirn) bool {
	if dirn == liftconsts.Up {
		return v.CurrentFloor >= v.TopFloor()
	}
	return v.CurrentFloor <= 0
}

func heading(u *user.User, floor int, dirn liftconsts.Dirn) bool {
	if dirn == liftconsts.Up {
		return u.EndFloor > floor
	}
	return u.EndFloor < floor
}

func anyHeading(users []*user.User, floor int, dirn liftconsts.Dirn) bool {
	for _, u := range users {
		if heading(u, floor, dirn) {
			return true
		}
	}
	return false
}

// decideDirectional is the sweep shared by SCAN and LOOK. The turn decision
// is taken once and serves both pick-up eligibility and the move, so the
// direction flips at most once per call. Boarding a user who only qualified
// through the turn commits the lift to that turn.
func decideDirectional(v building.View, capacity int, dirn *liftconsts.Dirn, shouldTurn turnFunc) liftaction.LiftAction {
	dropOff := v.DropOffs()
	turn := shouldTurn(v, *dirn)

	var pickUp []*user.User
	turned := false
	for _, u := range v.WaitingHere() {
		if len(pickUp)+len(v.Occupants)-len(dropOff) >= capacity {
			break
		}
		switch {
		case heading(u, v.CurrentFloor, *dirn):
			pickUp = append(pickUp, u)
		case turn:
			pickUp = append(pickUp, u)
			turned = true
		}
	}

	if len(pickUp) > 0 || len(dropOff) > 0 {
		if turned {
			*dirn = dirn.Opposite()
		}
		return liftaction.OpenDoors(pickUp, dropOff)
	}

	if v.Idle() || len(v.Floors) < 2 {
		return liftaction.Wait()
	}

	if turn {
		*dirn = dirn.Opposite()
	}
	switch {
	case *dirn == liftconsts.Up && v.CurrentFloor >= v.TopFloor():
		*dirn = liftconsts.Down
	case *dirn == liftconsts.Down && v.CurrentFloor <= 0:
		*dirn = liftconsts.Up
	}

	if *dirn == liftconsts.Up {
		return liftaction.MoveUp()
	}
	return liftaction.MoveDown()
}
