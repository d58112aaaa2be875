package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   server base URL, e.g. http://127.0.0.1:8000
//	-t int      request timeout in seconds (0 = transport default)
//	-r string   tag reader path
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so the -c/-config flag
// handled by parseJson does not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "server base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.TagSource, "r", cfg.TagSource, "tag reader device or file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -t overrides; env and JSON may carry sub-second values
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
