package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-m", "postgres", "-f", "store",
				"-d", "db", "-s", "secret", "-t", "20", "-r", "60",
			},
			expected: &Config{
				EndpointAddr:         "127.0.0.1:9090",
				Storage:              StoragePostgres,
				DataDir:              "store",
				DatabaseDSN:          "db",
				SecretKey:            "secret",
				AccessTokenValidity:  20 * time.Minute,
				RefreshTokenValidity: 60 * time.Minute,
			},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"cmd", "-a", ":7070", "-z", "junk"},
			expected: &Config{
				EndpointAddr: ":7070",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
