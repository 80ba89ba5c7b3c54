package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_NanosecondsAndPartial(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"notice_ttl": int64(2 * time.Second),
	})

	cfg := defaults()
	require.NoError(t, parseJSON(&cfg, []string{"-config", path}))

	assert.Equal(t, 2*time.Second, cfg.NoticeTTL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "admin_state.db", cfg.StatePath)
}

func TestParseJSON_NoFile(t *testing.T) {
	t.Setenv("POPCUE_CONFIG", "")

	cfg := defaults()
	require.NoError(t, parseJSON(&cfg, []string{"-a", "x"}))
	assert.Equal(t, defaults(), cfg)
}
