package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"

	"CscannerGo/internal/config"
)

// promptConfig 交互模式: 依次询问目标, 端口范围, 是否使用默认设置
func promptConfig(v *viper.Viper) error {
	target, err := pterm.DefaultInteractiveTextInput.Show("Enter target IP or hostname")
	if err != nil {
		return err
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return errors.Wrap(config.ErrInvalidConfig, "no target specified")
	}
	v.Set(config.KeyTarget, target)

	ports, err := pterm.DefaultInteractiveTextInput.Show("Enter port range [" + config.DefaultPorts + "]")
	if err != nil {
		return err
	}
	if ports = strings.TrimSpace(ports); ports != "" {
		v.Set(config.KeyPorts, ports)
	}

	useDefaults, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(true).Show("Use default settings?")
	if err != nil {
		return err
	}
	if useDefaults {
		return nil
	}

	threads, err := pterm.DefaultInteractiveTextInput.Show("Threads [" + strconv.Itoa(config.DefaultWorkers) + "]")
	if err != nil {
		return err
	}
	if n, ok := parseThreads(threads); ok {
		v.Set(config.KeyThreads, n)
	}

	timeout, err := pterm.DefaultInteractiveTextInput.Show("Timeout [" + config.DefaultTimeout.String() + "]")
	if err != nil {
		return err
	}
	if d, err := config.ParseTimeout(timeout); err == nil {
		v.Set(config.KeyTimeout, d.String())
	}
	return nil
}

// parseThreads 非正数或非数字时忽略输入
func parseThreads(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
