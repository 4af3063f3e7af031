package boot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memohai/crm/internal/config"
)

func TestProvideRuntimeConfigDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_PATH", "")

	rc, err := ProvideRuntimeConfig(config.Default())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultHTTPAddr, rc.ServerAddr)
	assert.Equal(t, config.DriverSQLite, rc.DatabaseDriver)
	assert.Equal(t, config.DefaultSQLitePath, rc.DatabasePath)
}

func TestProvideRuntimeConfigEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_PATH", "/tmp/crm-test.db")

	rc, err := ProvideRuntimeConfig(config.Default())
	require.NoError(t, err)
	assert.Equal(t, ":7070", rc.ServerAddr)
	assert.Equal(t, config.DriverSQLite, rc.DatabaseDriver)
	assert.Equal(t, config.DatabaseConfig{Driver: "sqlite", Path: "/tmp/crm-test.db"}, rc.DatabaseConfig())
}

func TestProvideRuntimeConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := ProvideRuntimeConfig(config.Default())
	assert.Error(t, err)
}
