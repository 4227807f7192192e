package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/amrit110/moonshot-ui/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvEmail       = "ADDUSER_EMAIL"
	EnvPassword    = "ADDUSER_PASSWORD"
	EnvBcryptCost  = "ADDUSER_BCRYPT_COST"
)

const defaultEnvFile = ".env"

// parseEnv seeds the process environment from a dotenv file and copies the
// recognised variables into config.
//
// The file is the one given with -env-file, or ./.env. A missing ./.env is
// ignored; a missing explicit file panics. Variables already set in the
// environment win over the file.
func parseEnv(config *Config) {
	envFile := flagx.EnvFileFlags()
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvDatabaseURL); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvEmail); ok && v != "" {
		config.Email = v
	}
	if v, ok := os.LookupEnv(EnvPassword); ok && v != "" {
		config.Password = v
	}
	if v, ok := os.LookupEnv(EnvBcryptCost); ok && v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = cost
	}
}
