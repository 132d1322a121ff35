package liftconsts

// Dirn is the direction a directional dispatcher is currently serving.
type Dirn int

const (
	Down Dirn = -1
	Up   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

func (d Dirn) Opposite() Dirn {
	if d == Up {
		return Down
	}
	return Up
}

// UserState is the lifecycle of a passenger.
type UserState int

const (
	Waiting UserState = iota // 0
	Traveling
	Delivered
)

func (s UserState) String() string {
	switch s {
	case Waiting:
		return "US_Waiting"
	case Traveling:
		return "US_Traveling"
	case Delivered:
		return "US_Delivered"
	default:
		return "US_UNDEFINED"
	}
}

// Defaults used when the config file leaves a value out.
const (
	DefaultFloors            = 10
	DefaultCapacity          = 8
	DefaultStartFloor        = 0
	DefaultTimeBetweenFloors = 5
	DefaultFirstPickupCost   = 3
	DefaultExtraPickupCost   = 1
	DefaultUsers             = 100
	DefaultMaxStartTime      = 500
	DefaultMaxSteps          = 1000000
	DefaultAlgorithm         = "LOOK"
)
