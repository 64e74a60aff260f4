package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	require.NotNil(t, cfg)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, OpportunitySourceSeed, cfg.Opportunities.Source)
	assert.False(t, cfg.Opportunities.LocationCaseSensitive)
	assert.Equal(t, 5*time.Minute, cfg.Opportunities.CacheTTL)
	assert.Equal(t, "INR", cfg.Payments.Currency)
	assert.Equal(t, 2, cfg.Handoff.Workers)
	assert.False(t, cfg.Redis.Enabled)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("OPPORTUNITY_SOURCE", " Database ")
	v.Set("OPPORTUNITY_CACHE_TTL", "not-a-duration")
	v.Set("PAYMENT_CURRENCY", "usd")
	v.Set("ALLOWED_ORIGINS", "http://localhost:3000, ,https://ngo.example ")

	cfg := fromViper(v)
	assert.Equal(t, OpportunitySourceDatabase, cfg.Opportunities.Source)
	assert.Equal(t, 5*time.Minute, cfg.Opportunities.CacheTTL)
	assert.Equal(t, "USD", cfg.Payments.Currency)
	assert.Equal(t, []string{"http://localhost:3000", "https://ngo.example"}, cfg.CORS.AllowedOrigins)
}

func TestUnknownOpportunitySourceFallsBackToSeed(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("OPPORTUNITY_SOURCE", "ftp")

	cfg := fromViper(v)
	assert.Equal(t, OpportunitySourceSeed, cfg.Opportunities.Source)
}
