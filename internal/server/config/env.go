package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays values from environment variables named in the `env`
// struct tags. If dotenv names an existing file it is loaded first; variables
// already set in the process environment win over the file.
//
// Unset variables leave the current value untouched, so defaults survive.
func parseEnv(config *Config, dotenv string) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				panic(err)
			}
		}
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
