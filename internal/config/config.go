package config

import (
	"net"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// MaxWorkers 并发 worker 上限, 超出时截断
	MaxWorkers = 250

	MinPort = 1
	MaxPort = 65535

	DefaultPorts    = "1-1024"
	DefaultWorkers  = 100
	DefaultTimeout  = 2 * time.Second
	DefaultStrategy = StrategyPartition
	DefaultFormat   = FormatText
)

const (
	StrategyPartition = "partition"
	StrategyQueue     = "queue"

	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrInvalidConfig 所有配置错误的根错误, 用 errors.Cause 判断
var ErrInvalidConfig = errors.New("invalid config")

// Scan 一次扫描的配置, 扫描期间只读
type Scan struct {
	Target          string        // 用户输入的目标 (主机名或 IP)
	Address         string        // 解析后的数字地址
	StartPort       int           // 起始端口 (含)
	EndPort         int           // 结束端口 (含)
	Workers         int           // 并发 worker 数
	Timeout         time.Duration // 单端口连接超时
	ShowClosed      bool          // 结果中包含关闭端口
	ResolveServices bool          // 解析服务名
	Strategy        string        // partition | queue
	Output          string        // 结果文件路径, 为空不写文件
	Format          string        // text | yaml | json
	Log             Log
}

// Log 日志配置
type Log struct {
	Level      string // debug/info/warn/error
	Format     string // text/json
	Output     string // stdout/stderr/file
	FilePath   string // 日志文件路径
	MaxSize    int    // 单文件最大 MB
	MaxBackups int    // 最大备份数
	MaxAge     int    // 保留天数
	Compress   bool   // 是否压缩
}

// Default 返回带默认值的配置
func Default() Scan {
	return Scan{
		StartPort:       MinPort,
		EndPort:         1024,
		Workers:         DefaultWorkers,
		Timeout:         DefaultTimeout,
		ResolveServices: true,
		Strategy:        DefaultStrategy,
		Format:          DefaultFormat,
		Log: Log{
			Level:      "warn",
			Format:     "text",
			Output:     "stderr",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// TotalPorts 端口区间大小
func (c Scan) TotalPorts() int {
	return c.EndPort - c.StartPort + 1
}

// Validate 校验配置, worker 数超过上限时截断为 MaxWorkers
func (c *Scan) Validate() error {
	if c.Address == "" {
		return errors.Wrap(ErrInvalidConfig, "no target address")
	}
	if net.ParseIP(c.Address) == nil {
		return errors.Wrapf(ErrInvalidConfig, "target address %q is not numeric", c.Address)
	}
	if c.StartPort < MinPort || c.EndPort > MaxPort || c.StartPort > c.EndPort {
		return errors.Wrapf(ErrInvalidConfig, "invalid port range %d-%d", c.StartPort, c.EndPort)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "worker count must be positive, got %d", c.Workers)
	}
	if c.Workers > MaxWorkers {
		c.Workers = MaxWorkers
	}
	if c.Timeout <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	c.Strategy = strings.ToLower(c.Strategy)
	switch c.Strategy {
	case "":
		c.Strategy = DefaultStrategy
	case StrategyPartition, StrategyQueue:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown strategy %q", c.Strategy)
	}
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "":
		c.Format = DefaultFormat
	case FormatText, FormatYAML, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown output format %q", c.Format)
	}
	return nil
}
