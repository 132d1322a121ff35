package algorithm

import (
	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
)

// Look is Scan that also turns around when nothing is left to serve in the
// direction it is heading.
type Look struct {
	capacity int
	dirn     liftconsts.Dirn
}

func NewLook() *Look {
	return &Look{dirn: liftconsts.Up}
}

func (l *Look) Name() string {
	return LookName
}

func (l *Look) SetCapacity(capacity int) {
	l.capacity = capacity
}

func (l *Look) Direction() liftconsts.Dirn {
	return l.dirn
}

func (l *Look) Decide(v building.View) liftaction.LiftAction {
	return decideDirectional(v, l.capacity, &l.dirn, lookTurn)
}

func lookTurn(v building.View, dirn liftconsts.Dirn) bool {
	return atBoundary(v, dirn) || nothingAhead(v, dirn)
}

// nothingAhead holds when everyone aboard gets off here, nobody waiting
// here wants to continue in dirn and no floor ahead has anyone waiting.
// Going down the current floor counts as ahead.
func nothingAhead(v building.View, dirn liftconsts.Dirn) bool {
	if len(v.DropOffs()) != len(v.Occupants) {
		return false
	}
	if anyHeading(v.WaitingHere(), v.CurrentFloor, dirn) {
		return false
	}
	if dirn == liftconsts.Up {
		return !v.WaitingAbove()
	}
	return !v.WaitingAtOrBelow()
}
