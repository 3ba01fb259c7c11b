package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitandwalk/internal/core/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFileMissingReturnsDefaults(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultReminderConfig(), config)
}

func TestLoadConfigFileReadsValues(t *testing.T) {
	path := writeConfig(t, "threshold_minutes: 45\ntick_interval_ms: 500\n")

	config, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 45, config.ThresholdMinutes)
	assert.Equal(t, 500*time.Millisecond, config.TickInterval)
}

func TestLoadConfigFileIgnoresOutOfRange(t *testing.T) {
	path := writeConfig(t, "threshold_minutes: 0\ntick_interval_ms: 120000\n")

	config, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultThresholdMinutes, config.ThresholdMinutes)
	assert.Equal(t, model.DefaultTickInterval, config.TickInterval)
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := writeConfig(t, "threshold_minutes: [oops\n")

	config, err := loadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
	assert.Equal(t, model.DefaultReminderConfig(), config)
}

func TestResolveConfigPath(t *testing.T) {
	path, err := resolveConfigPath("SitAndWalk")
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	assert.Equal(t, filepath.Join("SitAndWalk", configFileName), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestLoadConfigFileCapsTickInterval(t *testing.T) {
	for _, tickMs := range []int{1001, 1500, 60000} {
		path := writeConfig(t, fmt.Sprintf("tick_interval_ms: %d\n", tickMs))

		config, err := loadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, time.Second, config.TickInterval, "tick_interval_ms=%d", tickMs)
	}

	path := writeConfig(t, "tick_interval_ms: 1000\n")
	config, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, config.TickInterval)
}
