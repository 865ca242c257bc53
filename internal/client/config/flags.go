package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/packmate/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the travel-assistant API
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds
//	-d string   path of the local session database
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// loaders (-c, -env) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only explicit flags override, so sub-second values from JSON survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
	return nil
}
