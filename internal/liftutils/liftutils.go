package liftutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/szymonmasternak/lift-simulator/internal/algorithm"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return gitHash
}

// CmdArgs holds the command line. Empty strings and a negative Seed mean
// the value was not given.
type CmdArgs struct {
	ConfigPath string
	EnvPath    string
	Algorithm  string
	Identifier string
	Seed       int64
	Help       bool
	Version    bool
}

func ParseCmdArgs(args []string, output io.Writer) (CmdArgs, error) {
	var cmdArgs CmdArgs

	flags := flag.NewFlagSet("liftsim", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.BoolVar(&cmdArgs.Help, "help", false, "Show Help Window")
	flags.BoolVar(&cmdArgs.Version, "version", false, "Show Version")
	flags.StringVar(&cmdArgs.ConfigPath, "config", "", "Path to a YAML config file. Defaults to built-in values")
	flags.StringVar(&cmdArgs.EnvPath, "env", "", "Path to a .env file overriding config values")
	flags.StringVar(&cmdArgs.Algorithm, "algorithm", "", "Dispatch algorithm: "+strings.Join(algorithm.Names(), ", "))
	flags.StringVar(&cmdArgs.Identifier, "id", "", "Set the identifier of the run. Defaults to random string")
	flags.Int64Var(&cmdArgs.Seed, "seed", -1, "Seed for scenario generation. Defaults to the config seed")

	if err := flags.Parse(args); err != nil {
		return cmdArgs, err
	}

	if cmdArgs.Help {
		fmt.Fprintln(output, "Usage: ./liftsim [OPTIONS]")
		fmt.Fprintln(output, "Single lift dispatch simulator")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		flags.PrintDefaults()
	}
	return cmdArgs, nil
}

func ProcessCmdArgs() CmdArgs {
	cmdArgs, err := ParseCmdArgs(os.Args[1:], os.Stdout)
	if err != nil {
		os.Exit(2)
	}

	if cmdArgs.Version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if cmdArgs.Help {
		os.Exit(0)
	}

	return cmdArgs
}
