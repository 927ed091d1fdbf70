package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Port: "8080"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		cfg := validConfig()
		cfg.Logger.Level = level
		assert.NoError(t, cfg.Validate(), "level %s should be valid", level)
	}

	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_VendorConfigOptional(t *testing.T) {
	// Missing CMS and personalize credentials must not block startup.
	cfg := validConfig()
	cfg.Contentstack = ContentstackConfig{}
	cfg.Personalize = PersonalizeConfig{}

	assert.NoError(t, cfg.Validate())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, AppConfig{Environment: "production"}.IsProduction())
	assert.False(t, AppConfig{Environment: "development"}.IsProduction())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "STOREFRONT_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "STOREFRONT_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "STOREFRONT_TEST_MISSING", "default"))
}

func TestParseTimeout(t *testing.T) {
	d, err := parseTimeout("", "STOREFRONT_TEST_TIMEOUT_MISSING", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	_, err = parseTimeout("nonsense", "", "15s")
	assert.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		splitOrigins("https://a.example, https://b.example"))
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/.env"

	err := os.WriteFile(path, []byte("# comment\nSTOREFRONT_TEST_ENVFILE=hello\n\nSTOREFRONT_TEST_QUOTED=\"world\"\n"), 0o600)
	require.NoError(t, err)

	t.Setenv("STOREFRONT_TEST_ENVFILE", "")
	t.Setenv("STOREFRONT_TEST_QUOTED", "")

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "hello", os.Getenv("STOREFRONT_TEST_ENVFILE"))
	assert.Equal(t, "world", os.Getenv("STOREFRONT_TEST_QUOTED"))
}

func TestLoadEnvFile_DoesNotOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/.env"

	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_TEST_KEEP=file\n"), 0o600))
	t.Setenv("STOREFRONT_TEST_KEEP", "env")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "env", os.Getenv("STOREFRONT_TEST_KEEP"))
}
