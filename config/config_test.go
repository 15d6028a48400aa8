package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("minimal sqlite config gets defaults", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "")
		path := writeConfig(t, `
auth:
  secret: test-secret
`)
		require.NoError(t, LoadConfig(path))

		assert.Equal(t, "sqlite", GlobalConfig.Database.Driver)
		assert.Equal(t, "workzen.db", GlobalConfig.Database.Path)
		assert.Equal(t, "workzen.db", GlobalConfig.DSN())
		assert.Equal(t, "https://api.mistral.ai/v1", GlobalConfig.Chat.BaseURL)
		assert.Equal(t, "mistral-small-latest", GlobalConfig.Chat.Model)
		assert.Equal(t, uint32(400), GlobalConfig.Chat.MaxTokens)
		assert.InDelta(t, 0.7, float64(GlobalConfig.Chat.Temperature), 1e-6)
		assert.Equal(t, 8080, GlobalConfig.Server.Port)
		assert.Empty(t, GlobalConfig.Chat.APIKey, "missing key is a valid state")
		assert.Contains(t, GlobalConfig.Chat.CrisisKeywords, "suicide")
		assert.Contains(t, GlobalConfig.Chat.CrisisKeywords, "end it all")
	})

	t.Run("api key falls back to the environment", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "from-env")
		path := writeConfig(t, `
auth:
  secret: test-secret
`)
		require.NoError(t, LoadConfig(path))
		assert.Equal(t, "from-env", GlobalConfig.Chat.APIKey)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "")
		path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/other.db
chat:
  api_key: from-file
  model: mistral-large-latest
  crisis_keywords: ["custom phrase"]
auth:
  secret: test-secret
server:
  port: 9000
`)
		require.NoError(t, LoadConfig(path))
		assert.Equal(t, "/tmp/other.db", GlobalConfig.Database.Path)
		assert.Equal(t, "from-file", GlobalConfig.Chat.APIKey)
		assert.Equal(t, "mistral-large-latest", GlobalConfig.Chat.Model)
		assert.Equal(t, []string{"custom phrase"}, GlobalConfig.Chat.CrisisKeywords)
		assert.Equal(t, 9000, GlobalConfig.Server.Port)
	})

	t.Run("postgres DSN", func(t *testing.T) {
		t.Setenv("MISTRAL_API_KEY", "")
		path := writeConfig(t, `
database:
  driver: postgres
  host: localhost
  user: workzen
  password: secret
  dbname: workzen
  port: "5432"
  sslmode: disable
auth:
  secret: test-secret
`)
		require.NoError(t, LoadConfig(path))
		assert.Equal(t,
			"host=localhost user=workzen password=secret dbname=workzen port=5432 sslmode=disable",
			GlobalConfig.DSN())
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
