package runmeta

import (
	"encoding/json"
	"fmt"

	"github.com/szymonmasternak/lift-simulator/internal/config"
	"github.com/szymonmasternak/lift-simulator/internal/logger"
)

var Log = logger.GetLogger()

type RunMetaData struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	Algorithm       string `json:"algorithm"`
	Floors          int    `json:"floors"`
	Capacity        int    `json:"capacity"`
	Users           int    `json:"users"`
	Seed            int64  `json:"seed"`
}

func NewRunMetaData(version, identifier string, c config.Config) RunMetaData {
	return RunMetaData{
		SoftwareVersion: version,
		Identifier:      identifier,
		Algorithm:       c.Algorithm,
		Floors:          c.Building.Floors,
		Capacity:        c.Building.Capacity,
		Users:           c.Generator.Users,
		Seed:            c.Generator.Seed,
	}
}

func (runMetaData *RunMetaData) String() string {
	jsonData, err := json.Marshal(runMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising RunMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}

// GetRunLabel names the run in log lines, e.g. "LOOK/uwvvblrtct".
func (runMetaData *RunMetaData) GetRunLabel() string {
	return fmt.Sprintf("%s/%s", runMetaData.Algorithm, runMetaData.Identifier)
}
