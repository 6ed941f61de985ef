package config_test

import (
	"testing"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 450, cfg.Payroll.MaleDailyRate)
	assert.Equal(t, 400, cfg.Payroll.FemaleDailyRate)
	assert.Equal(t, 50, cfg.Payroll.ContractorFee)
	assert.Equal(t, time.Minute, cfg.Worker.Tick)
	assert.Empty(t, cfg.Kafka.Broker)

	h, m, err := cfg.Attendance.LateAfterClock()
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 15, m)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("PAYROLL_MALE_DAILY_RATE", "500")
	t.Setenv("AUTO_ABSENT_AT", "17:30")
	t.Setenv("SEED_DEMO", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Store.SQLitePath)
	assert.Equal(t, 500, cfg.Payroll.MaleDailyRate)
	assert.True(t, cfg.SeedDemo)

	h, m, err := cfg.Worker.AutoAbsentClock()
	require.NoError(t, err)
	assert.Equal(t, 17, h)
	assert.Equal(t, 30, m)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "localstorage")
		_, err := config.Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("clock", func(t *testing.T) {
		t.Setenv("AUTO_ABSENT_AT", "6pm")
		_, err := config.Load()
		assert.ErrorContains(t, err, "AUTO_ABSENT_AT")
	})

	t.Run("late cutoff", func(t *testing.T) {
		t.Setenv("LATE_AFTER", "25:00")
		_, err := config.Load()
		assert.ErrorContains(t, err, "LATE_AFTER")
	})

	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("PAYROLL_CONTRACTOR_FEE", "-1")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "lots")
		_, err := config.Load()
		assert.ErrorContains(t, err, "parse env")
	})
}
