package algorithm

import (
	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/user"
)

const noTarget = -1

// Greedy fills the lift wherever it stops and otherwise heads for the
// floor whose waiting users have waited longest in total. A full lift
// heads for its first occupant's destination.
type Greedy struct {
	capacity int
	target   int
}

func NewGreedy() *Greedy {
	return &Greedy{target: noTarget}
}

func (g *Greedy) Name() string {
	return MyLiftName
}

func (g *Greedy) SetCapacity(capacity int) {
	g.capacity = capacity
}

// Target returns the floor the lift is heading for, if any.
func (g *Greedy) Target() (int, bool) {
	return g.target, g.target != noTarget
}

func (g *Greedy) Decide(v building.View) liftaction.LiftAction {
	leaving := v.DropOffs()
	waitingHere := v.WaitingHere()
	canTakeMore := len(v.Occupants) < g.capacity

	if len(leaving) > 0 || (len(waitingHere) > 0 && canTakeMore) {
		room := g.capacity - (len(v.Occupants) - len(leaving))
		var joining []*user.User
		for _, u := range waitingHere {
			if len(joining) >= room {
				break
			}
			joining = append(joining, u)
		}
		return liftaction.OpenDoors(joining, leaving)
	}

	if g.target == noTarget || g.target == v.CurrentFloor {
		best := biggestWaitFloor(v)
		switch {
		case best != noTarget:
			g.setTarget(clampFloor(best, v))
		case len(v.Occupants) == 0:
			g.target = noTarget
			return liftaction.Wait()
		default:
			g.setTarget(clampFloor(v.Occupants[0].EndFloor, v))
		}
	}

	// full lift, empty it before chasing more waiting users
	if len(v.Occupants) > 0 && len(v.Occupants) == g.capacity {
		g.setTarget(clampFloor(v.Occupants[0].EndFloor, v))
	}

	switch {
	case g.target == noTarget:
		return liftaction.Wait()
	case g.target == v.CurrentFloor:
		return liftaction.Wait()
	case g.target < v.CurrentFloor:
		return liftaction.MoveDown()
	default:
		return liftaction.MoveUp()
	}
}

func (g *Greedy) setTarget(floor int) {
	if floor != g.target {
		Log.Debug().Int("target", floor).Int("previous", g.target).Msg("greedy target changed")
	}
	g.target = floor
}

// biggestWaitFloor returns the floor with the largest summed wait, or
// noTarget when no floor has waited longer than zero.
func biggestWaitFloor(v building.View) int {
	bestFloor := noTarget
	maxWait := 0
	for floor, waiting := range v.Floors {
		total := 0
		for _, u := range waiting {
			total += v.Now - u.StartTime
		}
		if total > maxWait {
			maxWait = total
			bestFloor = floor
		}
	}
	return bestFloor
}

func clampFloor(floor int, v building.View) int {
	switch {
	case floor == noTarget:
		return noTarget
	case floor < 0:
		return 0
	case floor >= len(v.Floors):
		return len(v.Floors) - 1
	default:
		return floor
	}
}
