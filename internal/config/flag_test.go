package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		initial     Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"adduser",
				"-d", "sqlite://users.db", "-e", "test@example.com", "-p", "testpassword",
				"-k", "12", "-t", "3", "-m", "-v",
			},
			expected: &Config{
				DatabaseDSN:    "sqlite://users.db",
				Email:          "test@example.com",
				Password:       "testpassword",
				BcryptCost:     12,
				ConnectTimeout: 3 * time.Second,
				Migrate:        true,
				Debug:          true,
			},
		},
		{
			name:    "unset flags keep current values",
			args:    []string{"adduser", "-e", "a@b.c", "-c", "ignored.json"},
			initial: Config{DatabaseDSN: "dsn", BcryptCost: 4, ConnectTimeout: 1500 * time.Millisecond},
			expected: &Config{
				DatabaseDSN:    "dsn",
				Email:          "a@b.c",
				BcryptCost:     4,
				ConnectTimeout: 1500 * time.Millisecond,
			},
		},
		{
			name:    "password starting with a dash",
			args:    []string{"adduser", "-p", "-Secret1", "-e", "a@b.c"},
			initial: Config{DatabaseDSN: "dsn"},
			expected: &Config{
				DatabaseDSN: "dsn",
				Email:       "a@b.c",
				Password:    "-Secret1",
			},
		},
		{
			name:        "non-numeric cost",
			args:        []string{"adduser", "-k", "many"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := tt.initial

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(&config) })
				assert.Empty(t, cmp.Diff(&config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(&config) })
			}
		})
	}
}
