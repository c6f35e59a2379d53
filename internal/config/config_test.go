package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: DriverMemory},
		JWT:      JWTConfig{Secret: "secret", AccessExpiration: "1h"},
		WorkDay:  WorkDayConfig{Timezone: "UTC", CheckoutCutoff: "19:00", LateAfter: "09:00"},
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	c := validConfig()
	c.Database.Driver = DriverPostgres
	assert.EqualError(t, c.Validate(), "DB_PASSWORD is required")

	c = validConfig()
	c.Database.Driver = "sqlite"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.JWT.Secret = ""
	assert.EqualError(t, c.Validate(), "JWT_SECRET_KEY is required")

	c = validConfig()
	c.WorkDay.CheckoutCutoff = "7pm"
	assert.Error(t, c.Validate())
}

func TestConfig_Policy(t *testing.T) {
	c := validConfig()
	c.WorkDay.CheckoutCutoff = "18:30"

	policy, err := c.Policy()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, policy.Location)
	assert.Equal(t, "18:30", policy.CheckoutCutoff.String())
	assert.Equal(t, "09:00", policy.LateAfter.String())
}

func TestGetEnvSlice(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvSlice("CORS_ALLOWED_ORIGINS", ""))

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"http://localhost:3000"}, getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
}
