package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"CscannerGo/internal/config"
)

func TestApplyArgs(t *testing.T) {
	v := config.NewViper()
	require.NoError(t, applyArgs(v, []string{"192.168.1.1", "1", "1024"}))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	require.Equal(t, "192.168.1.1", cfg.Address)
	require.Equal(t, 1, cfg.StartPort)
	require.Equal(t, 1024, cfg.EndPort)

	v = config.NewViper()
	require.NoError(t, applyArgs(v, []string{"scanme.example.org"}))
	require.Equal(t, "scanme.example.org", v.GetString(config.KeyTarget))

	require.Error(t, applyArgs(config.NewViper(), []string{"10.0.0.1", "80"}))
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-p", "20-25", "-t", "300", "-T", "500ms", "-v", "--strategy", "queue"}))

	flags := cmd.Flags()
	ports, err := flags.GetString(config.KeyPorts)
	require.NoError(t, err)
	require.Equal(t, "20-25", ports)
	threads, err := flags.GetInt(config.KeyThreads)
	require.NoError(t, err)
	require.Equal(t, 300, threads)
	timeout, err := flags.GetString(config.KeyTimeout)
	require.NoError(t, err)
	require.Equal(t, "500ms", timeout)
	showClosed, err := flags.GetBool(config.KeyShowClosed)
	require.NoError(t, err)
	require.True(t, showClosed)
}

func TestParseThreads(t *testing.T) {
	n, ok := parseThreads(" 50 ")
	require.True(t, ok)
	require.Equal(t, 50, n)

	for _, s := range []string{"", "0", "-1", "many"} {
		_, ok := parseThreads(s)
		require.False(t, ok, s)
	}
}

func TestRootCmd_TimeoutSeconds(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-T", "2"}))

	timeout, err := cmd.Flags().GetString(config.KeyTimeout)
	require.NoError(t, err)
	d, err := config.ParseTimeout(timeout)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, d)
}
