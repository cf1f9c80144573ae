package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory for persisted blobs
//	-b string   blob backend: file, sqlite or memory
//	-u string   path to the credentials JSON file
//	-s bool     autosave on every mutation
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// stages (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-u", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for persisted blobs")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "blob backend (file, sqlite, memory)")
	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "credentials JSON file")
	fs.BoolVar(&cfg.Autosave, "s", cfg.Autosave, "persist on every mutation")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
