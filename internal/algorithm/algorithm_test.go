package algorithm

import (
	"errors"
	"testing"

	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
	"github.com/szymonmasternak/lift-simulator/internal/user"
)

func newView(floorCount, current, now int) building.View {
	return building.View{
		Floors:       make([][]*user.User, floorCount),
		CurrentFloor: current,
		Now:          now,
	}
}

func (tv *testView) wait(u *user.User) *testView {
	tv.Floors[u.StartFloor] = append(tv.Floors[u.StartFloor], u)
	return tv
}

func (tv *testView) board(u *user.User) *testView {
	tv.Occupants = append(tv.Occupants, u)
	return tv
}

type testView struct {
	building.View
}

func view(floorCount, current, now int) *testView {
	return &testView{View: newView(floorCount, current, now)}
}

func openDoors(t *testing.T, a liftaction.LiftAction) liftaction.OpenDoorsAction {
	t.Helper()
	od, ok := a.Value.(liftaction.OpenDoorsAction)
	if !ok {
		t.Fatalf("action = %v, expected OpenDoors", a)
	}
	return od
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"SCAN", ScanName},
		{"look", LookName},
		{"MyLift", MyLiftName},
		{"greedy", MyLiftName},
	}
	for _, tc := range tests {
		alg, err := New(tc.name)
		if err != nil {
			t.Fatalf("New(%q) returned error %v", tc.name, err)
		}
		if alg.Name() != tc.expected {
			t.Errorf("New(%q).Name() = %s, expected %s", tc.name, alg.Name(), tc.expected)
		}
	}

	if _, err := New("elevator"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("New(elevator) error = %v, expected %v", err, ErrUnknownAlgorithm)
	}
	if len(Names()) != 3 {
		t.Errorf("Names() = %v, expected 3 names", Names())
	}
}

func TestEmptyBuildingWaits(t *testing.T) {
	for _, name := range Names() {
		alg, _ := New(name)
		alg.SetCapacity(4)
		for now := 10; now < 15; now++ {
			a := alg.Decide(view(5, 2, now).View)
			if a.ActionType() != "Wait" {
				t.Errorf("%s: Decide(empty) at t=%d = %v, expected Wait", name, now, a)
			}
		}

		switch a := alg.(type) {
		case *Scan:
			if a.Direction() != liftconsts.Up {
				t.Errorf("Scan.Direction() = %v after waiting, expected Up", a.Direction())
			}
		case *Look:
			if a.Direction() != liftconsts.Up {
				t.Errorf("Look.Direction() = %v after waiting, expected Up", a.Direction())
			}
		case *Greedy:
			if target, ok := a.Target(); ok {
				t.Errorf("Greedy.Target() = %d after waiting, expected none", target)
			}
		}
	}
}

func TestScanContinuesWhereLookTurns(t *testing.T) {
	v := view(5, 2, 10).wait(user.NewUser(1, 0, 1, 0)).View

	scan := NewScan()
	scan.SetCapacity(4)
	if a := scan.Decide(v); a.ActionType() != "MoveUp" {
		t.Errorf("Scan.Decide() = %v, expected MoveUp", a)
	}
	if scan.Direction() != liftconsts.Up {
		t.Errorf("Scan.Direction() = %v, expected Up", scan.Direction())
	}

	look := NewLook()
	look.SetCapacity(4)
	if a := look.Decide(v); a.ActionType() != "MoveDown" {
		t.Errorf("Look.Decide() = %v, expected MoveDown", a)
	}
	if look.Direction() != liftconsts.Down {
		t.Errorf("Look.Direction() = %v, expected Down", look.Direction())
	}
}

func TestScanTurnsAtTop(t *testing.T) {
	down := user.NewUser(1, 4, 0, 0)
	v := view(5, 4, 10).wait(down).View

	scan := NewScan()
	scan.SetCapacity(4)
	od := openDoors(t, scan.Decide(v))
	if len(od.Add) != 1 || od.Add[0].ID != 1 || len(od.Remove) != 0 {
		t.Errorf("Scan.Decide() = %+v, expected user 1 to board", od)
	}

	// once the user is aboard the sweep reverses
	v = view(5, 4, 13).board(down).View
	if a := scan.Decide(v); a.ActionType() != "MoveDown" {
		t.Errorf("Scan.Decide() = %v, expected MoveDown", a)
	}
	if scan.Direction() != liftconsts.Down {
		t.Errorf("Scan.Direction() = %v, expected Down", scan.Direction())
	}
}

func TestScanSkipsOppositeDirection(t *testing.T) {
	v := view(5, 2, 10).wait(user.NewUser(1, 2, 0, 0)).View

	scan := NewScan()
	scan.SetCapacity(4)
	if a := scan.Decide(v); a.ActionType() != "MoveUp" {
		t.Errorf("Scan.Decide() = %v, expected MoveUp", a)
	}

	look := NewLook()
	look.SetCapacity(4)
	od := openDoors(t, look.Decide(v))
	if len(od.Add) != 1 || od.Add[0].ID != 1 {
		t.Errorf("Look.Decide() = %+v, expected user 1 to board", od)
	}
}

func TestLookCommitsToEarlyTurn(t *testing.T) {
	down := user.NewUser(1, 2, 0, 0)

	look := NewLook()
	look.SetCapacity(4)
	od := openDoors(t, look.Decide(view(5, 2, 10).wait(down).View))
	if len(od.Add) != 1 || od.Add[0].ID != 1 {
		t.Fatalf("Look.Decide() = %+v, expected user 1 to board", od)
	}
	if look.Direction() != liftconsts.Down {
		t.Errorf("Look.Direction() = %v after boarding, expected Down", look.Direction())
	}

	// with the user aboard the lift heads for floor 0, not the top
	for floor := 2; floor > 0; floor-- {
		if a := look.Decide(view(5, floor, 13).board(down).View); a.ActionType() != "MoveDown" {
			t.Errorf("Look.Decide() at floor %d = %v, expected MoveDown", floor, a)
		}
	}
}

func TestLookKeepsGoingWithDemandAhead(t *testing.T) {
	v := view(5, 2, 10).wait(user.NewUser(1, 0, 1, 0)).wait(user.NewUser(2, 3, 4, 0)).View

	look := NewLook()
	look.SetCapacity(4)
	if a := look.Decide(v); a.ActionType() != "MoveUp" {
		t.Errorf("Look.Decide() = %v, expected MoveUp", a)
	}
}

func TestCapacityBlocksBoarding(t *testing.T) {
	tv := view(5, 2, 10).board(user.NewUser(1, 0, 4, 0))
	tv.wait(user.NewUser(2, 2, 3, 0)).wait(user.NewUser(3, 2, 4, 0))

	for _, alg := range []Algorithm{NewScan(), NewLook(), NewGreedy()} {
		alg.SetCapacity(1)
		if a := alg.Decide(tv.View); a.ActionType() != "MoveUp" {
			t.Errorf("%s: Decide(full) = %v, expected MoveUp", alg.Name(), a)
		}
	}
}

func TestDropOffFreesOneSlot(t *testing.T) {
	tv := view(5, 2, 10).board(user.NewUser(1, 0, 2, 0))
	tv.wait(user.NewUser(2, 2, 3, 0)).wait(user.NewUser(3, 2, 4, 0))

	for _, alg := range []Algorithm{NewScan(), NewGreedy()} {
		alg.SetCapacity(1)
		od := openDoors(t, alg.Decide(tv.View))
		if len(od.Remove) != 1 || od.Remove[0].ID != 1 {
			t.Errorf("%s: remove = %v, expected user 1", alg.Name(), od.Remove)
		}
		if len(od.Add) != 1 || od.Add[0].ID != 2 {
			t.Errorf("%s: add = %v, expected user 2", alg.Name(), od.Add)
		}
	}
}

func TestZeroCapacityNeverBoards(t *testing.T) {
	v := view(3, 0, 10).wait(user.NewUser(1, 0, 2, 0)).View
	for _, name := range Names() {
		alg, _ := New(name)
		alg.SetCapacity(0)
		if a := alg.Decide(v); a.IsOpenDoors() {
			t.Errorf("%s: Decide() = %v, expected no doors with capacity 0", name, a)
		}
	}
}

func TestSingleFloorNeverMoves(t *testing.T) {
	v := view(1, 0, 10).wait(user.NewUser(1, 0, 0, 0)).View
	for _, alg := range []Algorithm{NewScan(), NewLook()} {
		alg.SetCapacity(0)
		if a := alg.Decide(v); a.ActionType() != "Wait" {
			t.Errorf("%s: Decide() = %v, expected Wait", alg.Name(), a)
		}
	}
}

func TestGreedyTargetsLongestWait(t *testing.T) {
	tv := view(5, 0, 10)
	tv.wait(user.NewUser(1, 3, 0, 0)).wait(user.NewUser(2, 3, 1, 0))
	tv.wait(user.NewUser(3, 1, 4, 5))

	g := NewGreedy()
	g.SetCapacity(4)
	if a := g.Decide(tv.View); a.ActionType() != "MoveUp" {
		t.Errorf("Greedy.Decide() = %v, expected MoveUp", a)
	}
	if target, ok := g.Target(); !ok || target != 3 {
		t.Errorf("Greedy.Target() = %d, %v, expected 3, true", target, ok)
	}

	// passing a floor with room picks its users up
	tv.CurrentFloor = 1
	od := openDoors(t, g.Decide(tv.View))
	if len(od.Add) != 1 || od.Add[0].ID != 3 {
		t.Errorf("Greedy.Decide() = %+v, expected user 3 to board", od)
	}
}

func TestGreedyIgnoresFreshArrivals(t *testing.T) {
	v := view(5, 0, 10).wait(user.NewUser(1, 3, 0, 10)).View

	g := NewGreedy()
	g.SetCapacity(4)
	if a := g.Decide(v); a.ActionType() != "Wait" {
		t.Errorf("Greedy.Decide() = %v, expected Wait", a)
	}
	if _, ok := g.Target(); ok {
		t.Errorf("Greedy.Target() set with nobody waiting long")
	}
}

func TestGreedyDeliversWhenNobodyWaits(t *testing.T) {
	v := view(5, 3, 10).board(user.NewUser(1, 4, 0, 0)).View

	g := NewGreedy()
	g.SetCapacity(4)
	if a := g.Decide(v); a.ActionType() != "MoveDown" {
		t.Errorf("Greedy.Decide() = %v, expected MoveDown", a)
	}
	if target, _ := g.Target(); target != 0 {
		t.Errorf("Greedy.Target() = %d, expected 0", target)
	}
}

func TestClampFloor(t *testing.T) {
	v := newView(4, 0, 0)
	tests := []struct {
		in, expected int
	}{
		{noTarget, noTarget},
		{-5, 0},
		{2, 2},
		{9, 3},
	}
	for _, tc := range tests {
		if got := clampFloor(tc.in, v); got != tc.expected {
			t.Errorf("clampFloor(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}
