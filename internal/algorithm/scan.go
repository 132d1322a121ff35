package algorithm

import (
	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
)

// Scan sweeps to the top floor and back down, only picking up users going
// the way it is heading. At the end floors everyone is eligible.
type Scan struct {
	capacity int
	dirn     liftconsts.Dirn
}

func NewScan() *Scan {
	return &Scan{dirn: liftconsts.Up}
}

func (s *Scan) Name() string {
	return ScanName
}

func (s *Scan) SetCapacity(capacity int) {
	s.capacity = capacity
}

func (s *Scan) Direction() liftconsts.Dirn {
	return s.dirn
}

func (s *Scan) Decide(v building.View) liftaction.LiftAction {
	return decideDirectional(v, s.capacity, &s.dirn, atBoundary)
}
