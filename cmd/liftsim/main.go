package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/szymonmasternak/lift-simulator/internal/algorithm"
	"github.com/szymonmasternak/lift-simulator/internal/config"
	"github.com/szymonmasternak/lift-simulator/internal/liftutils"
	"github.com/szymonmasternak/lift-simulator/internal/logger"
	"github.com/szymonmasternak/lift-simulator/internal/runmeta"
	"github.com/szymonmasternak/lift-simulator/internal/scenario"
	"github.com/szymonmasternak/lift-simulator/internal/simulation"
	"github.com/xyproto/randomstring"
)

const IDENTIFIER_DEFAULT_LEN = 10

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func loadConfig(cmdArgs liftutils.CmdArgs) (config.Config, error) {
	c := config.Default()
	if cmdArgs.ConfigPath != "" {
		loaded, err := config.Load(cmdArgs.ConfigPath)
		if err != nil {
			return c, err
		}
		c = loaded
	}
	if cmdArgs.EnvPath != "" {
		if err := c.ApplyEnv(cmdArgs.EnvPath); err != nil {
			return c, err
		}
	}
	if cmdArgs.Algorithm != "" {
		c.Algorithm = cmdArgs.Algorithm
	}
	if cmdArgs.Seed >= 0 {
		c.Generator.Seed = cmdArgs.Seed
	}
	if c.Generator.Seed == 0 {
		c.Generator.Seed = time.Now().UnixNano()
	}
	return c, c.Validate()
}

func main() {
	cmdArgs := liftutils.ProcessCmdArgs()

	Logger.Info().Msg("Starting Lift Simulator")

	c, err := loadConfig(cmdArgs)
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not load config")
	}

	identifier := cmdArgs.Identifier
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
	}
	metaData := runmeta.NewRunMetaData(liftutils.GetGitHash(), identifier, c)
	Logger.Info().Msgf("Run: %v", metaData.String())

	alg, err := algorithm.New(c.Algorithm)
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not select algorithm")
	}

	sc, err := scenario.Generate(c.Building.Floors, c.Building.Capacity, c.Generator.Users,
		c.Generator.MaxStartTime, rand.New(rand.NewSource(c.Generator.Seed)))
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not generate scenario")
	}

	sim, err := simulation.NewSimulation(sc, c.Constants, alg)
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not create simulation")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sim.Run(ctx); err != nil {
		Logger.Fatal().Err(err).Str("run", metaData.GetRunLabel()).Msg("Simulation failed")
	}

	for _, record := range sim.Results() {
		Logger.Info().
			Int("user", record.ID).
			Int("start", record.StartTime).
			Int("board", record.BoardTime).
			Int("finish", record.FinishTime).
			Msg(metaData.GetRunLabel())
	}
	Logger.Info().Msgf("%s finished at t=%d after %d steps", metaData.GetRunLabel(), sim.Now(), sim.Steps())
}
