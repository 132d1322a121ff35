package liftaction

import (
	"github.com/szymonmasternak/lift-simulator/internal/user"
)

type LiftAction struct {
	//Golang doesnt support union types,
	//so we carry one of the structs below
	Value any
}

type WaitAction struct {
}

type MoveUpAction struct {
}

type MoveDownAction struct {
}

// Add is drawn from the current floor's waiting list, Remove from the
// occupants.
type OpenDoorsAction struct {
	Add    []*user.User
	Remove []*user.User
}

func Wait() LiftAction {
	return LiftAction{Value: WaitAction{}}
}

func MoveUp() LiftAction {
	return LiftAction{Value: MoveUpAction{}}
}

func MoveDown() LiftAction {
	return LiftAction{Value: MoveDownAction{}}
}

func OpenDoors(add, remove []*user.User) LiftAction {
	return LiftAction{Value: OpenDoorsAction{Add: add, Remove: remove}}
}

func (a LiftAction) ActionType() string {
	switch a.Value.(type) {
	case WaitAction:
		return "Wait"
	case MoveUpAction:
		return "MoveUp"
	case MoveDownAction:
		return "MoveDown"
	case OpenDoorsAction:
		return "OpenDoors"
	default:
		return "UnknownAction"
	}
}

func (a LiftAction) IsOpenDoors() bool {
	_, ok := a.Value.(OpenDoorsAction)
	return ok
}

func (a LiftAction) String() string {
	if doors, ok := a.Value.(OpenDoorsAction); ok {
		return a.ActionType() + "{add:" + formatIDs(doors.Add) + " remove:" + formatIDs(doors.Remove) + "}"
	}
	return a.ActionType()
}

func formatIDs(users []*user.User) string {
	out := "["
	for i, u := range users {
		if i > 0 {
			out += " "
		}
		out += u.String()
	}
	return out + "]"
}
