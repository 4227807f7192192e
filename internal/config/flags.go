package config

import (
	"flag"
	"os"
	"time"

	"github.com/amrit110/moonshot-ui/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database DSN (postgres://… or sqlite://<path>)
//	-e string   email of the user to create
//	-p string   plaintext password (prompted for when omitted on a terminal)
//	-k int      bcrypt cost
//	-t int      connect timeout, seconds
//	-m          create the users table when missing
//	-v          debug logging
//
// Config file (-c/-config) and dotenv (-env-file) flags are filtered out here
// and handled by their own loaders.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-d", "-e", "-p", "-k", "-t", "-m", "-v"},
		"-m", "-v")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Email, "e", config.Email, "user email")
	fs.StringVar(&config.Password, "p", config.Password, "user password")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	connectTimeout := fs.Int("t", int(config.ConnectTimeout.Seconds()), "connect timeout (in seconds)")
	fs.BoolVar(&config.Migrate, "m", config.Migrate, "create the users table when missing")
	fs.BoolVar(&config.Debug, "v", config.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so sub-second values from JSON survive
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ConnectTimeout = time.Duration(*connectTimeout) * time.Second
		}
	})
}
