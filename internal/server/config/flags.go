package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeapp/internal/flagx"
)

// Flags lists the command-line flags owned by this package. Commands strip
// them (flagx.StripArgs) before parsing their own arguments.
//
//	-driver string     database driver: pgx | sqlite
//	-d string          database DSN
//	-hasher string     password hasher: argon2id | bcrypt
//	-log-level string  debug | info | warn | error
//	-u string          S3 root user
//	-p string          S3 root password
//	-b string          S3 bucket
//	-g string          S3 region
//	-e string          S3 base endpoint
//	-x int             presigned upload URL expiry, minutes
var Flags = []string{"-driver", "-d", "-hasher", "-log-level", "-u", "-p", "-b", "-g", "-e", "-x"}

// parseFlags overlays config with values given on the command line.
// Only the flags in Flags are looked at; other arguments are left for the caller.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], Flags)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (pgx, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.PasswordHasher, "hasher", config.PasswordHasher, "password hasher (argon2id, bcrypt)")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	expiry := fs.Int("x", int(config.UploadURLExpiry.Minutes()), "upload URL expiry (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only when given, so sub-minute values from env or JSON are not truncated
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "x" {
			config.UploadURLExpiry = time.Duration(*expiry) * time.Minute
		}
	})
}
