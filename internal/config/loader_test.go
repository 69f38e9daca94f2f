package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := NewViper()
	v.Set(KeyTarget, "10.0.0.1")
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", cfg.Target)
	require.Equal(t, "10.0.0.1", cfg.Address)
	require.Equal(t, 1, cfg.StartPort)
	require.Equal(t, 1024, cfg.EndPort)
	require.Equal(t, DefaultWorkers, cfg.Workers)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.True(t, cfg.ResolveServices)
	require.False(t, cfg.ShowClosed)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Hostname(t *testing.T) {
	v := NewViper()
	v.Set(KeyTarget, "scanme.example.org")
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Empty(t, cfg.Address)
}

func TestLoad_NoTarget(t *testing.T) {
	_, err := Load(NewViper())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BadPorts(t *testing.T) {
	v := NewViper()
	v.Set(KeyTarget, "127.0.0.1")
	v.Set(KeyPorts, "9-1")
	_, err := Load(v)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CSCANNER_THREADS", "42")
	t.Setenv("CSCANNER_SHOW_CLOSED", "true")
	t.Setenv("CSCANNER_LOG_LEVEL", "debug")
	v := NewViper()
	v.Set(KeyTarget, "127.0.0.1")
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.Workers)
	require.True(t, cfg.ShowClosed)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TimeoutSeconds(t *testing.T) {
	t.Setenv("CSCANNER_TIMEOUT", "2")
	v := NewViper()
	v.Set(KeyTarget, "127.0.0.1")
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_BadTimeout(t *testing.T) {
	for _, timeout := range []string{"soon", "0", "-2s"} {
		v := NewViper()
		v.Set(KeyTarget, "127.0.0.1")
		v.Set(KeyTimeout, timeout)
		_, err := Load(v)
		require.ErrorIs(t, err, ErrInvalidConfig, timeout)
	}
}

func TestReadFile_TimeoutSeconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cscanner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: 10.0.0.1\ntimeout: 2\n"), 0o644))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cscanner.yaml")
	content := `target: 192.168.1.1
ports: 20-25
threads: 8
timeout: 750ms
strategy: queue
format: yaml
log:
  level: info
  file: /tmp/cscanner.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "192.168.1.1", cfg.Address)
	require.Equal(t, 20, cfg.StartPort)
	require.Equal(t, 25, cfg.EndPort)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 750*time.Millisecond, cfg.Timeout)
	require.Equal(t, StrategyQueue, cfg.Strategy)
	require.Equal(t, FormatYAML, cfg.Format)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "/tmp/cscanner.log", cfg.Log.FilePath)
}

func TestReadFile_Missing(t *testing.T) {
	require.NoError(t, ReadFile(NewViper(), ""))
	require.Error(t, ReadFile(NewViper(), filepath.Join(t.TempDir(), "missing.yaml")))
}
