// Package config builds the immutable runtime configuration for blogkeeper.
// Values are resolved in three stages: built-in defaults, then an optional
// JSON file, then command-line flags. Later stages override earlier ones.
// The resulting Config is passed explicitly into constructors and never
// mutated afterwards.
package config

// Backend names for the blob store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds runtime settings for the blogkeeper CLI.
//
// Fields:
//   - DataDir: directory (or sqlite file location) holding persisted blobs.
//   - Backend: blob backend, one of file, sqlite, memory.
//   - Autosave: when false, mutations stay in memory only.
//   - UsersFile: path to the credentials JSON; empty means the built-in
//     development users.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DataDir   string
	Backend   string
	Autosave  bool
	UsersFile string
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.Backend = BackendFile
	c.Autosave = true
	c.UsersFile = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a -c/-config flag points at a file) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
