package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_ID", "amzn1.ask.skill.test")
	t.Setenv("EAGLE_USERNAME", "user@example.com")
	t.Setenv("EAGLE_PASSWORD", "secret")
	t.Setenv("EAGLE_CLOUD_ID", "cloud-42")
}

func TestLoadFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("TIME_ZONE", "America/Denver")
	t.Setenv("EAGLE_TIMEOUT", "3s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "amzn1.ask.skill.test", cfg.AppID)
	assert.Equal(t, "America/Denver", cfg.TimeZone)

	ec := cfg.EagleConfig()
	assert.Equal(t, "https://rainforestcloud.com:9445", ec.URL)
	assert.Equal(t, "user@example.com", ec.Username)
	assert.Equal(t, "secret", ec.Password)
	assert.Equal(t, "cloud-42", ec.CloudID)
	assert.Empty(t, ec.MacID)
	assert.Equal(t, 3*time.Second, ec.Timeout)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Denver", loc.String())
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, 10*time.Second, cfg.Eagle.Timeout)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("APP_ID", "")
	require.NoError(t, os.Unsetenv("APP_ID"))
	t.Setenv("EAGLE_USERNAME", "user@example.com")
	t.Setenv("EAGLE_PASSWORD", "secret")
	t.Setenv("EAGLE_CLOUD_ID", "cloud-42")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadBadTimeZone(t *testing.T) {
	setRequired(t)
	t.Setenv("TIME_ZONE", "Mars/Olympus_Mons")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_id: amzn1.ask.skill.file
time_zone: Europe/Berlin
eagle:
  username: file-user
  password: file-pass
  cloud_id: file-cloud
  mac_id: "0xd8d5b90000001234"
  timeout: 5s
`), 0o600))

	t.Setenv("EAGLE_PASSWORD", "env-pass")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "amzn1.ask.skill.file", cfg.AppID)
	assert.Equal(t, "Europe/Berlin", cfg.TimeZone)
	assert.Equal(t, "file-user", cfg.Eagle.Username)
	assert.Equal(t, "env-pass", cfg.Eagle.Password, "environment wins over the file")
	assert.Equal(t, "0xd8d5b90000001234", cfg.Eagle.MacID)
	assert.Equal(t, 5*time.Second, cfg.Eagle.Timeout)
}
