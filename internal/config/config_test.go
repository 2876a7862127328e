package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HF_TOKEN", "hf_test_token")
	t.Setenv("SMTP_SERVER", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_TYPES", "welcome,support")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.True(t, conf.GenerationEnabled())
	assert.Equal(t, "smtp.example.com", conf.Mail.Server)
	assert.Equal(t, 2525, conf.Mail.Port)
	assert.Equal(t, []string{"welcome", "support"}, conf.Mail.EnabledTypes)
	assert.Equal(t, 30*time.Second, conf.Generation.Timeout)
	assert.Equal(t, "noreply@statica.in", conf.Mail.FromEmail)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(`
env: prod
listen:
  port: "9000"
mail:
  provider: ses
  aws_region: eu-west-1
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", conf.Env)
	assert.Equal(t, "9000", conf.Listen.Port)
	assert.Equal(t, "ses", conf.Mail.Provider)
	assert.Equal(t, "eu-west-1", conf.Mail.AwsRegion)
	assert.Equal(t, 587, conf.Mail.Port)
}
