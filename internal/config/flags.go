package config

import (
	"flag"
	"os"
	"time"

	"github.com/bestpacific/induction/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local state database file (default from Config)
//	-e string   base URL of the assistant service (default from Config)
//	-m string   assistant model identifier (default from Config)
//	-t int      assistant request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local state database file")
	fs.StringVar(&cfg.AssistantEndpoint, "e", cfg.AssistantEndpoint, "base URL of the assistant service")
	fs.StringVar(&cfg.AssistantModel, "m", cfg.AssistantModel, "assistant model identifier")
	assistantTimeout := fs.Int("t", int(cfg.AssistantTimeout.Seconds()), "assistant request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AssistantTimeout = time.Duration(*assistantTimeout) * time.Second
}
