package algorithm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/szymonmasternak/lift-simulator/internal/building"
	"github.com/szymonmasternak/lift-simulator/internal/liftaction"
	"github.com/szymonmasternak/lift-simulator/internal/logger"
)

var Log = logger.Component("algorithm")

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm decides what the lift does next. Decide must only describe a
// change through the returned action; the view is a private copy.
type Algorithm interface {
	Name() string
	SetCapacity(capacity int)
	Decide(view building.View) liftaction.LiftAction
}

const (
	ScanName   = "SCAN"
	LookName   = "LOOK"
	MyLiftName = "MYLIFT"
)

// New builds a fresh dispatcher by name. Each run needs its own value since
// dispatchers carry direction or target state.
func New(name string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case ScanName:
		return NewScan(), nil
	case LookName:
		return NewLook(), nil
	case MyLiftName, "GREEDY":
		return NewGreedy(), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

func Names() []string {
	return []string{ScanName, LookName, MyLiftName}
}
