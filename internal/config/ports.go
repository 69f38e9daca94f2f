package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParsePortRange 解析端口表达式, 支持:
//   - 单端口 "80"
//   - 区间 "1-1024"
//   - 全端口 "-", "-p-", "all"
func ParsePortRange(expr string) (start, end int, err error) {
	expr = strings.TrimSpace(expr)
	switch strings.ToLower(expr) {
	case "":
		return 0, 0, errors.Wrap(ErrInvalidConfig, "empty port range")
	case "-", "-p-", "all":
		return MinPort, MaxPort, nil
	}
	bounds := strings.SplitN(expr, "-", 2)
	start, err = parsePort(bounds[0])
	if err != nil {
		return 0, 0, err
	}
	end = start
	if len(bounds) == 2 {
		end, err = parsePort(bounds[1])
		if err != nil {
			return 0, 0, err
		}
	}
	if start > end {
		return 0, 0, errors.Wrapf(ErrInvalidConfig, "range start greater than end: %s", expr)
	}
	return start, end, nil
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "invalid port %q", s)
	}
	if n < MinPort || n > MaxPort {
		return 0, errors.Wrapf(ErrInvalidConfig, "port %d out of range %d-%d", n, MinPort, MaxPort)
	}
	return n, nil
}

// ParseTimeout 解析超时: 纯整数按秒处理, 否则按 time.Duration 解析 (如 500ms)
func ParseTimeout(expr string) (time.Duration, error) {
	expr = strings.TrimSpace(expr)
	d, err := time.ParseDuration(expr)
	if n, convErr := strconv.Atoi(expr); convErr == nil {
		d, err = time.Duration(n)*time.Second, nil
	}
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "invalid timeout %q", expr)
	}
	if d <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "timeout must be positive, got %s", d)
	}
	return d, nil
}
