package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"financial-health/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, "memory", c.Storage.Driver)
	assert.Equal(t, 12, c.Forecast.HorizonMonths)
	assert.Equal(t, 0.4, c.Derivation.CurrentAssetsFraction)
	assert.Equal(t, 500, c.Upload.RawTextLimit)
	assert.NotNil(t, c.Benchmarks())
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bench.yaml", "benchmarks:\n  retail: {profit_margin: 0.07, debt_to_equity: 1.0, current_ratio: 1.4, inventory_turnover: 9}\n")
	path := writeFile(t, dir, "config.yaml", `
server:
  port: "9090"
log:
  level: debug
benchmarks_file: bench.yaml
forecast:
  growth_rate: 0.03
upload:
  extraction_timeout: 5s
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 0.03, c.Forecast.GrowthRate)
	assert.Equal(t, 12, c.Forecast.HorizonMonths)
	assert.Equal(t, 5*time.Second, c.Upload.ExtractionTimeout)

	_, b := c.Benchmarks().Lookup("retail")
	assert.Equal(t, 0.07, b.ProfitMargin)
	_, b = c.Benchmarks().Lookup("manufacturing")
	assert.Equal(t, 0.15, b.ProfitMargin)
	ind, _ := c.Benchmarks().Lookup("unknown")
	assert.Equal(t, model.IndustryServices, ind)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("API_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7000", c.Server.Port)
	assert.True(t, c.Production())
	assert.Equal(t, "postgres", c.Storage.Driver)
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := Default()
	c.Log.Format = "xml"
	assert.Error(t, c.Validate())

	c = Default()
	c.Storage.Driver = "postgres"
	assert.Error(t, c.Validate(), "postgres requires database_url")

	c = Default()
	c.Derivation.COGSFraction = -0.1
	assert.Error(t, c.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "FH_TEST_DOTENV=from-file\n")
	t.Setenv("FH_TEST_DOTENV", "")
	os.Unsetenv("FH_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(p))
	assert.Equal(t, "from-file", os.Getenv("FH_TEST_DOTENV"))
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestShippedConfigLoads(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "configs", "config.yaml"))
	require.NoError(t, err)
	assert.Len(t, c.Benchmarks().All(), len(model.Industries))
	assert.Equal(t, time.Hour, c.Upload.CacheTTL)
}

func TestReportFontMustExist(t *testing.T) {
	t.Setenv("REPORT_FONT", filepath.Join(t.TempDir(), "missing.ttf"))
	_, err := Load("")
	assert.Error(t, err)
}
