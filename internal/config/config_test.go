package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Paramaribo", cfg.Timezone)
	assert.Equal(t, 30, cfg.SlotGranularityMinutes)
	assert.Equal(t, 10, cfg.LoyaltyPointsPerVisit)
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.Equal(t, 15*time.Minute, cfg.S3.ProofURLTTL)
	assert.False(t, cfg.ProofStorageEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOYALTY_POINTS_PER_VISIT", "25")
	t.Setenv("S3_BUCKET", "proofs")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("LOCK_TTL", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 25, cfg.LoyaltyPointsPerVisit)
	assert.Equal(t, "proofs", cfg.S3.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.LockTTL)
	assert.True(t, cfg.ProofStorageEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero granularity", "SLOT_GRANULARITY_MINUTES", "0"},
		{"negative loyalty", "LOYALTY_POINTS_PER_VISIT", "-1"},
		{"unknown timezone", "TIMEZONE", "Mars/Olympus"},
		{"not a number", "TX_MAX_RETRIES", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
