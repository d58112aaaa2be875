package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rfidcredits/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   SQLite DSN
//	-f string   data directory
//	-s string   JWT HMAC secret key
//	-t int      session validity, minutes
//	-u string   admin user seeded at startup
//	-p string   admin password
//	-k int      credits deducted per gateway request
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The session validity is accepted as an integer in minutes and is only
//     applied when -t is given, so finer values from env or JSON survive.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-f", "-s", "-t", "-u", "-p", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")

	fs.StringVar(&config.AdminUser, "u", config.AdminUser, "admin user")
	fs.StringVar(&config.AdminPassword, "p", config.AdminPassword, "admin password")
	fs.Int64Var(&config.SpinCost, "k", config.SpinCost, "credits per spin")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
		}
	})
}
