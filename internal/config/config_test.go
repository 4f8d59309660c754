package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "a-long-enough-jwt-secret")
	t.Setenv("PHONE_SECRET_KEY", strings.Repeat("ab", 32))
}

func TestLoad_Defaults(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "./notes.db", cfg.DatabasePath)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, "development", cfg.AppEnv)
	require.Len(t, cfg.PhoneKey, 32)
}

func TestLoad_Overrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.ServerPort)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, "production", cfg.AppEnv)
}

func TestLoad_RejectsBadSecrets(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("PHONE_SECRET_KEY", strings.Repeat("ab", 32))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")
		t.Setenv("PHONE_SECRET_KEY", strings.Repeat("ab", 32))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("phone key wrong length", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-long-enough-jwt-secret")
		t.Setenv("PHONE_SECRET_KEY", "abcd")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("phone key not hex", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-long-enough-jwt-secret")
		t.Setenv("PHONE_SECRET_KEY", strings.Repeat("zz", 32))
		_, err := Load()
		require.Error(t, err)
	})
}
