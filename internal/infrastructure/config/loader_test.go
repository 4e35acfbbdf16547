package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, contents string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	original := ConfigPaths
	ConfigPaths = []string{dir}
	t.Cleanup(func() { ConfigPaths = original })

	t.Setenv("EB_ENV", "test")
}

func TestLoadConfig(t *testing.T) {
	t.Run("should convert raw duration values into real durations", func(t *testing.T) {
		writeConfigFile(t, `
database:
  host: localhost
  username: storefront
  password: secret
  database: storefront
  retryAttempts: 4
  retryDelay: 5
`)

		cfg, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, 4, cfg.Database.RetryAttempts)
		assert.Equal(t, 5*time.Second, cfg.Database.RetryDelay)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("should fall back to retry defaults when the file omits them", func(t *testing.T) {
		writeConfigFile(t, `
database:
  host: localhost
  username: storefront
  password: secret
  database: storefront
`)

		cfg, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, 3, cfg.Database.RetryAttempts)
		assert.Equal(t, time.Second, cfg.Database.RetryDelay)
	})

	t.Run("should let environment variables override credentials", func(t *testing.T) {
		writeConfigFile(t, `
database:
  host: localhost
  username: storefront
  password: secret
  database: storefront
`)
		t.Setenv("EB_DB_HOST", "db.internal")
		t.Setenv("EB_DB_PASSWORD", "override")

		cfg, err := LoadConfig()

		assert.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "override", cfg.Database.Password)
	})
}
