package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func validScan() Scan {
	cfg := Default()
	cfg.Target = "localhost"
	cfg.Address = "127.0.0.1"
	return cfg
}

func TestValidate(t *testing.T) {
	cfg := validScan()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1024, cfg.TotalPorts())
	require.Equal(t, StrategyPartition, cfg.Strategy)
	require.Equal(t, FormatText, cfg.Format)
}

func TestValidate_Normalize(t *testing.T) {
	cfg := validScan()
	cfg.Strategy = "QUEUE"
	cfg.Format = ""
	cfg.Workers = MaxWorkers + 1
	require.NoError(t, cfg.Validate())
	require.Equal(t, StrategyQueue, cfg.Strategy)
	require.Equal(t, FormatText, cfg.Format)
	require.Equal(t, MaxWorkers, cfg.Workers)
}

func TestValidate_Invalid(t *testing.T) {
	testdata := map[string]func(*Scan){
		"no address":      func(c *Scan) { c.Address = "" },
		"hostname":        func(c *Scan) { c.Address = "localhost" },
		"port zero":       func(c *Scan) { c.StartPort = 0 },
		"port too large":  func(c *Scan) { c.EndPort = MaxPort + 1 },
		"reversed range":  func(c *Scan) { c.StartPort, c.EndPort = 80, 79 },
		"zero workers":    func(c *Scan) { c.Workers = 0 },
		"negative":        func(c *Scan) { c.Workers = -3 },
		"zero timeout":    func(c *Scan) { c.Timeout = 0 },
		"bad strategy":    func(c *Scan) { c.Strategy = "random" },
		"bad format":      func(c *Scan) { c.Format = "xml" },
		"negative timout": func(c *Scan) { c.Timeout = -time.Second },
	}
	for name, mutate := range testdata {
		t.Run(name, func(t *testing.T) {
			cfg := validScan()
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Equal(t, ErrInvalidConfig, errors.Cause(err))
		})
	}
}

func TestValidate_IPv6(t *testing.T) {
	cfg := validScan()
	cfg.Address = "::1"
	require.NoError(t, cfg.Validate())
}
