package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/szymonmasternak/lift-simulator/internal/liftconsts"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Algorithm string    `yaml:"algorithm"`
	Building  Building  `yaml:"building"`
	Constants Constants `yaml:"constants"`
	Generator Generator `yaml:"generator"`
}

type Building struct {
	Floors   int `yaml:"floors"`
	Capacity int `yaml:"capacity"`
}

// Constants drive the engine's clock. MaxSteps of 0 means no bound.
type Constants struct {
	StartFloor        int `yaml:"start_floor"`
	TimeBetweenFloors int `yaml:"time_between_floors"`
	FirstPickupCost   int `yaml:"first_pickup_cost"`
	ExtraPickupCost   int `yaml:"extra_pickup_cost"`
	MaxSteps          int `yaml:"max_steps"`
}

type Generator struct {
	Users        int   `yaml:"users"`
	MaxStartTime int   `yaml:"max_start_time"`
	Seed         int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Algorithm: liftconsts.DefaultAlgorithm,
		Building: Building{
			Floors:   liftconsts.DefaultFloors,
			Capacity: liftconsts.DefaultCapacity,
		},
		Constants: Constants{
			StartFloor:        liftconsts.DefaultStartFloor,
			TimeBetweenFloors: liftconsts.DefaultTimeBetweenFloors,
			FirstPickupCost:   liftconsts.DefaultFirstPickupCost,
			ExtraPickupCost:   liftconsts.DefaultExtraPickupCost,
			MaxSteps:          liftconsts.DefaultMaxSteps,
		},
		Generator: Generator{
			Users:        liftconsts.DefaultUsers,
			MaxStartTime: liftconsts.DefaultMaxStartTime,
		},
	}
}

// Load reads a YAML config on top of the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	// an empty file decodes to io.EOF and leaves the defaults in place
	if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides single values from a .env file.
func (c *Config) ApplyEnv(path string) error {
	envFile, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}

	if name, ok := envFile["LIFT_ALGORITHM"]; ok {
		c.Algorithm = name
	}

	ints := []struct {
		key   string
		field *int
	}{
		{"LIFT_FLOORS", &c.Building.Floors},
		{"LIFT_CAPACITY", &c.Building.Capacity},
		{"LIFT_START_FLOOR", &c.Constants.StartFloor},
		{"LIFT_TIME_BETWEEN_FLOORS", &c.Constants.TimeBetweenFloors},
		{"LIFT_FIRST_PICKUP_COST", &c.Constants.FirstPickupCost},
		{"LIFT_EXTRA_PICKUP_COST", &c.Constants.ExtraPickupCost},
		{"LIFT_MAX_STEPS", &c.Constants.MaxSteps},
		{"LIFT_USERS", &c.Generator.Users},
		{"LIFT_MAX_START_TIME", &c.Generator.MaxStartTime},
	}
	for _, entry := range ints {
		raw, ok := envFile[entry.key]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", entry.key, raw, ErrInvalidConfig)
		}
		*entry.field = value
	}

	if raw, ok := envFile["LIFT_SEED"]; ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("LIFT_SEED=%q: %w", raw, ErrInvalidConfig)
		}
		c.Generator.Seed = seed
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Building.Floors < 1:
		return fmt.Errorf("floors %d: %w", c.Building.Floors, ErrInvalidConfig)
	case c.Building.Capacity < 0:
		return fmt.Errorf("capacity %d: %w", c.Building.Capacity, ErrInvalidConfig)
	case c.Constants.StartFloor < 0 || c.Constants.StartFloor >= c.Building.Floors:
		return fmt.Errorf("start floor %d with %d floors: %w", c.Constants.StartFloor, c.Building.Floors, ErrInvalidConfig)
	case c.Constants.TimeBetweenFloors < 0 || c.Constants.FirstPickupCost < 0 || c.Constants.ExtraPickupCost < 0:
		return fmt.Errorf("negative cost in %+v: %w", c.Constants, ErrInvalidConfig)
	case c.Constants.MaxSteps < 0:
		return fmt.Errorf("max steps %d: %w", c.Constants.MaxSteps, ErrInvalidConfig)
	case c.Generator.Users < 0 || c.Generator.MaxStartTime < 0:
		return fmt.Errorf("generator %+v: %w", c.Generator, ErrInvalidConfig)
	case c.Generator.Users > 0 && c.Building.Floors < 2:
		return fmt.Errorf("%d users need at least 2 floors: %w", c.Generator.Users, ErrInvalidConfig)
	}
	return nil
}
