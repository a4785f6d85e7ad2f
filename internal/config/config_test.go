package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/marketplace")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 3001, cfg.HTTP.Port)
	require.Equal(t, 2, cfg.Reports.BestClientsLimit)
	require.Equal(t, []string{"xlsx", "pdf"}, cfg.Reports.ExportFormats)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost:5432/marketplace")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("REPORTS_BEST_CLIENTS_LIMIT", "5")
	t.Setenv("REPORTS_EXPORT_FORMATS", "xlsx, pdf ,csv")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 5, cfg.Reports.BestClientsLimit)
	require.Equal(t, []string{"xlsx", "pdf", "csv"}, cfg.Reports.ExportFormats)
}

func TestLoadRequiresDSNAndSecret(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_DSN", "postgres://localhost:5432/marketplace")
	t.Setenv("JWT_ACCESS_SECRET", "")
	_, err = Load()
	require.Error(t, err)
}
