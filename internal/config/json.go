package config

import (
	"encoding/json"
	"os"

	"github.com/amrit110/moonshot-ui/internal/flagx"
	"github.com/amrit110/moonshot-ui/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Only keys that
// are present override the current values.
type JsonConfig struct {
	DatabaseDSN    *string         `json:"database_dsn"`
	Email          *string         `json:"email"`
	Password       *string         `json:"password"`
	BcryptCost     *int            `json:"bcrypt_cost"`
	ConnectTimeout *timex.Duration `json:"connect_timeout"`
	Migrate        *bool           `json:"migrate"`
	Debug          *bool           `json:"debug"`
}

// parseJson loads the file named by -c/-config into config. Nothing happens
// when neither flag is given. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.Email != nil {
		config.Email = *c.Email
	}
	if c.Password != nil {
		config.Password = *c.Password
	}
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.ConnectTimeout != nil {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
	if c.Migrate != nil {
		config.Migrate = *c.Migrate
	}
	if c.Debug != nil {
		config.Debug = *c.Debug
	}
}
