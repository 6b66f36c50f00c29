package ioc

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
	"github.com/KNICEX/amplitude-scanner/internal/service/notification/pushplus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, yaml string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	require.NoError(t, viper.ReadConfig(strings.NewReader(yaml)))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warning "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestInitNotifier(t *testing.T) {
	t.Run("console without token", func(t *testing.T) {
		t.Setenv("PUSHPLUS_TOKEN", "")
		t.Setenv("NOTIFY_PUSHPLUS_TOKEN", "")
		loadConfig(t, "notify:\n  pushplus:\n    title: test\n")
		_, ok := InitNotifier().(*notification.ConsoleNotifier)
		assert.True(t, ok)
	})

	t.Run("token from env", func(t *testing.T) {
		t.Setenv("NOTIFY_PUSHPLUS_TOKEN", "")
		t.Setenv("PUSHPLUS_TOKEN", "secret")
		loadConfig(t, "notify:\n  pushplus:\n    timeout: 3s\n")
		_, ok := InitNotifier().(*pushplus.Notifier)
		assert.True(t, ok)
	})

	t.Run("token from file", func(t *testing.T) {
		t.Setenv("PUSHPLUS_TOKEN", "")
		t.Setenv("NOTIFY_PUSHPLUS_TOKEN", "")
		loadConfig(t, "notify:\n  pushplus:\n    token: abc\n")
		_, ok := InitNotifier().(*pushplus.Notifier)
		assert.True(t, ok)
	})
}

func TestInitMetrics(t *testing.T) {
	loadConfig(t, "metrics:\n  job: test\n")
	m, pusher := InitMetrics()
	assert.NotNil(t, m)
	assert.Nil(t, pusher)

	loadConfig(t, "metrics:\n  pushgateway: http://127.0.0.1:9091\n")
	_, pusher = InitMetrics()
	assert.NotNil(t, pusher)
}

func TestInitAmplitudeMonitorTask_BadInterval(t *testing.T) {
	loadConfig(t, "scan:\n  interval: 7m\n")
	assert.Panics(t, func() {
		InitAmplitudeMonitorTask(nil, nil, nil, nil, nil, nil)
	})
}
