package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recipeapp/internal/flagx"
	"github.com/dmitrijs2005/recipeapp/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// either "15m" strings or integer nanoseconds. Absent keys keep the values
// already in Config.
type JsonConfig struct {
	DatabaseDriver  *string         `json:"database_driver"`
	DatabaseDSN     *string         `json:"database_dsn"`
	PasswordHasher  *string         `json:"password_hasher"`
	BcryptCost      *int            `json:"bcrypt_cost"`
	LogBackend      *string         `json:"log_backend"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
	S3RootUser      *string         `json:"s3_root_user"`
	S3RootPassword  *string         `json:"s3_root_password"`
	S3Bucket        *string         `json:"s3_bucket"`
	S3Region        *string         `json:"s3_region"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint"`
	UploadURLExpiry *timex.Duration `json:"upload_url_expiry"`
}

// parseJson loads the file named by -c / -config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.PasswordHasher, c.PasswordHasher)
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.UploadURLExpiry != nil {
		config.UploadURLExpiry = c.UploadURLExpiry.Duration
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
