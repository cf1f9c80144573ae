package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/flagx"
)

// jsonConfig is the DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so the file only overrides
// what it actually sets.
type jsonConfig struct {
	DataDir   *string `json:"data_dir"`
	Backend   *string `json:"backend"`
	Autosave  *bool   `json:"autosave"`
	UsersFile *string `json:"users_file"`
	LogLevel  *string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. When no file is given the function returns silently;
// a file that cannot be read or parsed is a startup failure.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.Backend != nil {
		cfg.Backend = *jc.Backend
	}
	if jc.Autosave != nil {
		cfg.Autosave = *jc.Autosave
	}
	if jc.UsersFile != nil {
		cfg.UsersFile = *jc.UsersFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
