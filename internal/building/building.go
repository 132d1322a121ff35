package building

import (
	"errors"
	"fmt"

	"github.com/szymonmasternak/lift-simulator/internal/user"
	"github.com/tiendc/go-deepcopy"
)

var (
	ErrNotWaiting   = errors.New("user is not waiting at the current floor")
	ErrNotAboard    = errors.New("user is not aboard")
	ErrDuplicate    = errors.New("user listed twice")
	ErrOverCapacity = errors.New("lift over capacity")
	ErrOutOfShaft   = errors.New("floor outside the shaft")
)

// Building is the state owned by the simulation engine: who waits on which
// floor, who rides the lift and where the lift is.
type Building struct {
	Floors       [][]*user.User
	Occupants    []*user.User
	CurrentFloor int
	Capacity     int
}

func NewBuilding(floorCount, capacity, startFloor int) (*Building, error) {
	if floorCount < 1 {
		return nil, fmt.Errorf("floor count %d: %w", floorCount, ErrOutOfShaft)
	}
	if startFloor < 0 || startFloor >= floorCount {
		return nil, fmt.Errorf("start floor %d: %w", startFloor, ErrOutOfShaft)
	}
	return &Building{
		Floors:       make([][]*user.User, floorCount),
		CurrentFloor: startFloor,
		Capacity:     capacity,
	}, nil
}

func (b *Building) FloorCount() int {
	return len(b.Floors)
}

// AddWaiting puts a released user at the end of its start floor's list.
func (b *Building) AddWaiting(u *user.User) error {
	if u.StartFloor < 0 || u.StartFloor >= len(b.Floors) {
		return fmt.Errorf("user %d start floor %d: %w", u.ID, u.StartFloor, ErrOutOfShaft)
	}
	b.Floors[u.StartFloor] = append(b.Floors[u.StartFloor], u)
	return nil
}

func (b *Building) WaitingCount() int {
	count := 0
	for _, floor := range b.Floors {
		count += len(floor)
	}
	return count
}

// Snapshot returns a deep copy of the building for a dispatcher to read.
// Nothing the dispatcher does to it reaches the engine.
func (b *Building) Snapshot(now int) (View, error) {
	src := View{
		Floors:       b.Floors,
		Occupants:    b.Occupants,
		Now:          now,
		CurrentFloor: b.CurrentFloor,
	}
	var dst View
	if err := deepcopy.Copy(&dst, &src); err != nil {
		return View{}, fmt.Errorf("snapshot building: %w", err)
	}
	return dst, nil
}

// Move shifts the lift by delta floors.
func (b *Building) Move(delta int) error {
	next := b.CurrentFloor + delta
	if next < 0 || next >= len(b.Floors) {
		return fmt.Errorf("move from %d to %d: %w", b.CurrentFloor, next, ErrOutOfShaft)
	}
	b.CurrentFloor = next
	return nil
}

// Resolve maps the ids of a door operation onto the engine's own users and
// checks the operation against the current state without changing it.
func (b *Building) Resolve(addIDs, removeIDs []int) (boarding, alighting []*user.User, err error) {
	seen := make(map[int]bool, len(addIDs)+len(removeIDs))

	for _, id := range removeIDs {
		if seen[id] {
			return nil, nil, fmt.Errorf("user %d: %w", id, ErrDuplicate)
		}
		seen[id] = true
		u := findUser(b.Occupants, id)
		if u == nil {
			return nil, nil, fmt.Errorf("user %d: %w", id, ErrNotAboard)
		}
		if u.EndFloor != b.CurrentFloor {
			return nil, nil, fmt.Errorf("user %d destination %d at floor %d: %w", id, u.EndFloor, b.CurrentFloor, ErrNotAboard)
		}
		alighting = append(alighting, u)
	}

	for _, id := range addIDs {
		if seen[id] {
			return nil, nil, fmt.Errorf("user %d: %w", id, ErrDuplicate)
		}
		seen[id] = true
		u := findUser(b.Floors[b.CurrentFloor], id)
		if u == nil {
			return nil, nil, fmt.Errorf("user %d at floor %d: %w", id, b.CurrentFloor, ErrNotWaiting)
		}
		boarding = append(boarding, u)
	}

	after := len(b.Occupants) - len(alighting) + len(boarding)
	if after > b.Capacity {
		return nil, nil, fmt.Errorf("%d aboard with capacity %d: %w", after, b.Capacity, ErrOverCapacity)
	}
	return boarding, alighting, nil
}

// Exchange applies a resolved door operation.
func (b *Building) Exchange(boarding, alighting []*user.User) {
	b.Occupants = without(b.Occupants, alighting)
	b.Floors[b.CurrentFloor] = without(b.Floors[b.CurrentFloor], boarding)
	b.Occupants = append(b.Occupants, boarding...)
}

func findUser(users []*user.User, id int) *user.User {
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func without(users, drop []*user.User) []*user.User {
	if len(drop) == 0 {
		return users
	}
	dropped := make(map[int]bool, len(drop))
	for _, u := range drop {
		dropped[u.ID] = true
	}
	kept := make([]*user.User, 0, len(users))
	for _, u := range users {
		if !dropped[u.ID] {
			kept = append(kept, u)
		}
	}
	return kept
}
