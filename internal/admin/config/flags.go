package config

import (
	"flag"
	"io"
	"time"

	"github.com/popcue/admin-console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-d string   session database path
//	-t int      notice lifetime in seconds
//	-l string   log level
//
// Only these flags are looked at; everything else in args is left to other
// loaders.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the PopCue API")
	fs.StringVar(&cfg.StatePath, "d", cfg.StatePath, "path of the local session database")
	ttl := fs.Int("t", int(cfg.NoticeTTL.Seconds()), "notice lifetime (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// keep sub-second defaults unless -t was actually given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.NoticeTTL = time.Duration(*ttl) * time.Second
		}
	})
	return nil
}
