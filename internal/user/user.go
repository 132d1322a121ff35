package user

import (
	"fmt"

	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
)

// User is one passenger. BoardTime and FinishTime are only meaningful once
// State has reached Traveling and Delivered respectively.
type User struct {
	ID         int                  `json:"id"`
	StartFloor int                  `json:"start_floor"`
	EndFloor   int                  `json:"end_floor"`
	StartTime  int                  `json:"start_time"`
	BoardTime  int                  `json:"board_time"`
	FinishTime int                  `json:"finish_time"`
	State      liftconsts.UserState `json:"state"`
}

func NewUser(id, startFloor, endFloor, startTime int) *User {
	return &User{
		ID:         id,
		StartFloor: startFloor,
		EndFloor:   endFloor,
		StartTime:  startTime,
		State:      liftconsts.Waiting,
	}
}

func (u *User) String() string {
	return fmt.Sprintf("User(%d %d->%d t=%d %s)", u.ID, u.StartFloor, u.EndFloor, u.StartTime, u.State)
}

// Board stamps the boarding time. It fails if the user already boarded.
func (u *User) Board(now int) error {
	if u.State != liftconsts.Waiting {
		return fmt.Errorf("user %d cannot board in state %s", u.ID, u.State)
	}
	u.BoardTime = now
	u.State = liftconsts.Traveling
	return nil
}

// Finish stamps the delivery time. It fails unless the user is travelling.
func (u *User) Finish(now int) error {
	if u.State != liftconsts.Traveling {
		return fmt.Errorf("user %d cannot be delivered in state %s", u.ID, u.State)
	}
	u.FinishTime = now
	u.State = liftconsts.Delivered
	return nil
}

func (u *User) Record() Record {
	return Record{
		ID:         u.ID,
		StartTime:  u.StartTime,
		BoardTime:  u.BoardTime,
		FinishTime: u.FinishTime,
	}
}

// Record is the per-user output of a finished run.
type Record struct {
	ID         int `json:"id"`
	StartTime  int `json:"start_time"`
	BoardTime  int `json:"board_time"`
	FinishTime int `json:"finish_time"`
}

func (r Record) WaitTime() int {
	return r.BoardTime - r.StartTime
}

func (r Record) TransitTime() int {
	return r.FinishTime - r.BoardTime
}

// IDs returns the identifiers of users in order.
func IDs(users []*User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
