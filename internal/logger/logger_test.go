package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"CscannerGo/internal/config"
)

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cscanner.log")
	l, err := New(config.Log{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: path,
		MaxSize:  1,
	})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithField("port", 22).Info("scan started")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"scan started"`)
	require.Contains(t, string(data), `"port":22`)
}

func TestNew_InvalidLevel(t *testing.T) {
	l, err := New(config.Log{Level: "loud", Output: "stderr"})
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_Invalid(t *testing.T) {
	testdata := []config.Log{
		{Level: "info", Format: "xml"},
		{Level: "info", Output: "syslog"},
		{Level: "info", Output: "file"},
	}
	for _, cfg := range testdata {
		_, err := New(cfg)
		require.Error(t, err, "%+v", cfg)
	}
}
