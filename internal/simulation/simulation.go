package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/szymonmasternak/lift-simulator/internal/algorithm"
	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/config"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
	"github.com/szymonmasternak/lift-simulator/internal/liftevent"
	"github.com/szymonmasternak/lift-simulator/internal/logger"
	"github.com/szymonmasternak/lift-simulator/internal/scenario"
	"github.com/szymonmasternak/lift-simulator/internal/user"
)

var Log = logger.Component("simulation")

var (
	ErrProtocolViolation = errors.New("protocol violation")
	ErrUnknownAction     = errors.New("unknown action")
	ErrStepLimit         = errors.New("step limit reached")
)

type State int

const (
	Running State = iota
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	default:
		return "Undefined"
	}
}

type Observer interface {
	OnEvent(event liftevent.SimulationEvent)
}

// Simulation owns the building, the clock and the users of one run. The
// dispatcher only ever sees snapshots and answers with an action.
type Simulation struct {
	constants  config.Constants
	algorithm  algorithm.Algorithm
	building   *building.Building
	arrivals   *user.ArrivalQueue
	users      []*user.User
	finished   []*user.User
	observers  []Observer
	now        int
	steps      int
	state      State
	lastAction liftaction.LiftAction
}

func NewSimulation(sc scenario.Scenario, constants config.Constants, alg algorithm.Algorithm, observers ...Observer) (*Simulation, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	b, err := building.NewBuilding(sc.FloorCount, sc.Capacity, constants.StartFloor)
	if err != nil {
		return nil, fmt.Errorf("new building: %w", err)
	}

	users := sc.NewUsers()
	alg.SetCapacity(sc.Capacity)

	return &Simulation{
		constants: constants,
		algorithm: alg,
		building:  b,
		arrivals:  user.NewArrivalQueue(users),
		users:     users,
		observers: observers,
		state:     Running,
	}, nil
}

func (s *Simulation) Now() int {
	return s.now
}

func (s *Simulation) State() State {
	return s.state
}

func (s *Simulation) Steps() int {
	return s.steps
}

func (s *Simulation) CurrentFloor() int {
	return s.building.CurrentFloor
}

// Results returns the records of delivered users ordered by id. Once the
// run has finished that is every user.
func (s *Simulation) Results() []user.Record {
	var records []user.Record
	for _, u := range s.users {
		if u.State == liftconsts.Delivered {
			records = append(records, u.Record())
		}
	}
	return records
}

// Run steps until every user is delivered, the context is done or a step
// fails.
func (s *Simulation) Run(ctx context.Context) error {
	Log.Info().Msgf("Running %s with %d users on %d floors", s.algorithm.Name(), len(s.users), s.building.FloorCount())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := s.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step releases due arrivals and, unless everyone is delivered, applies one
// decision. It reports whether the run has finished.
func (s *Simulation) Step() (bool, error) {
	if s.state == Finished {
		return true, nil
	}

	if err := s.releaseArrivals(); err != nil {
		return false, err
	}

	if len(s.finished) == len(s.users) {
		s.finish()
		return true, nil
	}

	if s.constants.MaxSteps > 0 && s.steps >= s.constants.MaxSteps {
		return false, fmt.Errorf("%d steps at t=%d with %d of %d delivered and %d waiting: %w",
			s.steps, s.now, len(s.finished), len(s.users), s.building.WaitingCount(), ErrStepLimit)
	}

	view, err := s.building.Snapshot(s.now)
	if err != nil {
		return false, err
	}

	action := s.algorithm.Decide(view)
	if err := s.apply(action); err != nil {
		Log.Error().Err(err).Int("time", s.now).Int("floor", s.building.CurrentFloor).Msg("Aborting run")
		return false, err
	}
	s.steps++
	return false, nil
}

func (s *Simulation) releaseArrivals() error {
	for _, u := range s.arrivals.PopDue(s.now) {
		if err := s.building.AddWaiting(u); err != nil {
			return err
		}
		Log.Debug().Msgf("t=%d user %d waiting at floor %d", s.now, u.ID, u.StartFloor)
		s.emit(liftevent.SimulationEvent{Value: liftevent.ArrivalEvent{Time: s.now, User: u.ID, Floor: u.StartFloor}})
	}
	return nil
}

func (s *Simulation) apply(action liftaction.LiftAction) error {
	cost, err := ActionCost(action, s.lastAction, s.constants)
	if err != nil {
		return err
	}

	step := liftevent.StepEvent{
		Time:      s.now,
		FromFloor: s.building.CurrentFloor,
		Action:    action.ActionType(),
		Cost:      cost,
	}

	switch act := action.Value.(type) {
	case liftaction.MoveUpAction:
		if err := s.building.Move(1); err != nil {
			return fmt.Errorf("%w: %w", ErrProtocolViolation, err)
		}
	case liftaction.MoveDownAction:
		if err := s.building.Move(-1); err != nil {
			return fmt.Errorf("%w: %w", ErrProtocolViolation, err)
		}
	case liftaction.OpenDoorsAction:
		boarding, alighting, err := s.building.Resolve(user.IDs(act.Add), user.IDs(act.Remove))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProtocolViolation, err)
		}
		for _, u := range boarding {
			if err := u.Board(s.now); err != nil {
				return fmt.Errorf("%w: %w", ErrProtocolViolation, err)
			}
		}
		for _, u := range alighting {
			if err := u.Finish(s.now); err != nil {
				return fmt.Errorf("%w: %w", ErrProtocolViolation, err)
			}
		}
		s.building.Exchange(boarding, alighting)
		s.finished = append(s.finished, alighting...)
		step.Added = user.IDs(boarding)
		step.Removed = user.IDs(alighting)
	}

	s.now += cost
	s.lastAction = action
	step.Floor = s.building.CurrentFloor
	step.Occupants = len(s.building.Occupants)

	Log.Debug().Msgf("t=%d %s floor %d->%d cost %d", step.Time, step.Action, step.FromFloor, step.Floor, cost)
	s.emit(step.Wrap())
	return nil
}

func (s *Simulation) finish() {
	s.state = Finished
	Log.Info().Msgf("All %d users delivered at t=%d after %d steps", len(s.finished), s.now, s.steps)
	s.emit(liftevent.SimulationEvent{Value: liftevent.FinishedEvent{Time: s.now, Delivered: len(s.finished)}})
}

func (s *Simulation) emit(event liftevent.SimulationEvent) {
	for _, o := range s.observers {
		o.OnEvent(event)
	}
}

// ActionCost is the time an action takes. Door operations pay the opening
// cost only when the previous action was not a door operation.
func ActionCost(action, last liftaction.LiftAction, constants config.Constants) (int, error) {
	switch act := action.Value.(type) {
	case liftaction.WaitAction:
		return 1, nil
	case liftaction.MoveUpAction, liftaction.MoveDownAction:
		return constants.TimeBetweenFloors, nil
	case liftaction.OpenDoorsAction:
		cost := constants.ExtraPickupCost * (len(act.Add) + len(act.Remove))
		if !last.IsOpenDoors() {
			cost += constants.FirstPickupCost
		}
		return cost, nil
	default:
		return 0, fmt.Errorf("%T: %w", action.Value, ErrUnknownAction)
	}
}
