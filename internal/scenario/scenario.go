package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/szymonmasternak/lift-simulator/internal/user"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type UserSpec struct {
	StartFloor int `json:"start_floor" yaml:"start_floor"`
	EndFloor   int `json:"end_floor" yaml:"end_floor"`
	StartTime  int `json:"start_time" yaml:"start_time"`
}

// Scenario is the static input of one run.
type Scenario struct {
	FloorCount int              `json:"floor_count" yaml:"floor_count"`
	Capacity   int              `json:"capacity" yaml:"capacity"`
	Users      map[int]UserSpec `json:"users" yaml:"users"`
}

func (s Scenario) Validate() error {
	if s.FloorCount < 1 {
		return fmt.Errorf("floor count %d: %w", s.FloorCount, ErrInvalidScenario)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("capacity %d: %w", s.Capacity, ErrInvalidScenario)
	}
	for _, id := range s.ids() {
		u := s.Users[id]
		if u.StartFloor < 0 || u.StartFloor >= s.FloorCount {
			return fmt.Errorf("user %d start floor %d: %w", id, u.StartFloor, ErrInvalidScenario)
		}
		if u.EndFloor < 0 || u.EndFloor >= s.FloorCount {
			return fmt.Errorf("user %d end floor %d: %w", id, u.EndFloor, ErrInvalidScenario)
		}
		if u.StartFloor == u.EndFloor {
			return fmt.Errorf("user %d starts and ends on floor %d: %w", id, u.StartFloor, ErrInvalidScenario)
		}
		if u.StartTime < 0 {
			return fmt.Errorf("user %d start time %d: %w", id, u.StartTime, ErrInvalidScenario)
		}
	}
	return nil
}

// NewUsers creates a fresh waiting user per entry, in ascending id order.
func (s Scenario) NewUsers() []*user.User {
	users := make([]*user.User, 0, len(s.Users))
	for _, id := range s.ids() {
		spec := s.Users[id]
		users = append(users, user.NewUser(id, spec.StartFloor, spec.EndFloor, spec.StartTime))
	}
	return users
}

func (s Scenario) ids() []int {
	ids := make([]int, 0, len(s.Users))
	for id := range s.Users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Generate draws userCount users with a uniform start floor, a different
// uniform end floor and a start time in [0, maxStartTime]. The same rng
// seed yields the same scenario.
func Generate(floorCount, capacity, userCount, maxStartTime int, rng *rand.Rand) (Scenario, error) {
	if userCount < 0 || maxStartTime < 0 {
		return Scenario{}, fmt.Errorf("%d users up to time %d: %w", userCount, maxStartTime, ErrInvalidScenario)
	}
	if userCount > 0 && floorCount < 2 {
		return Scenario{}, fmt.Errorf("users need at least 2 floors, got %d: %w", floorCount, ErrInvalidScenario)
	}

	s := Scenario{
		FloorCount: floorCount,
		Capacity:   capacity,
		Users:      make(map[int]UserSpec, userCount),
	}
	for id := 0; id < userCount; id++ {
		start := rng.Intn(floorCount)
		end := rng.Intn(floorCount - 1)
		if end >= start {
			end++
		}
		s.Users[id] = UserSpec{
			StartFloor: start,
			EndFloor:   end,
			StartTime:  rng.Intn(maxStartTime + 1),
		}
	}
	return s, s.Validate()
}
