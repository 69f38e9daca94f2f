package config

import (
	"net"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀, 如 CSCANNER_THREADS=200
const EnvPrefix = "CSCANNER"

// 配置键
const (
	KeyTarget     = "target"
	KeyPorts      = "ports"
	KeyThreads    = "threads"
	KeyTimeout    = "timeout"
	KeyServices   = "services"
	KeyShowClosed = "show-closed"
	KeyStrategy   = "strategy"
	KeyOutput     = "output"
	KeyFormat     = "format"

	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyLogOutput     = "log.output"
	KeyLogFile       = "log.file"
	KeyLogMaxSize    = "log.max-size"
	KeyLogMaxBackups = "log.max-backups"
	KeyLogMaxAge     = "log.max-age"
	KeyLogCompress   = "log.compress"
)

// NewViper 创建带默认值和环境变量绑定的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyPorts, DefaultPorts)
	v.SetDefault(KeyThreads, d.Workers)
	v.SetDefault(KeyTimeout, d.Timeout.String())
	v.SetDefault(KeyServices, d.ResolveServices)
	v.SetDefault(KeyShowClosed, d.ShowClosed)
	v.SetDefault(KeyStrategy, d.Strategy)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyLogOutput, d.Log.Output)
	v.SetDefault(KeyLogMaxSize, d.Log.MaxSize)
	v.SetDefault(KeyLogMaxBackups, d.Log.MaxBackups)
	v.SetDefault(KeyLogMaxAge, d.Log.MaxAge)
	v.SetDefault(KeyLogCompress, d.Log.Compress)
	return v
}

// ReadFile 读取 YAML 配置文件, path 为空时忽略
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	return nil
}

// Load 从 viper 构造扫描配置
// 目标为数字地址时直接填入 Address, 主机名需要调用方解析后再填
func Load(v *viper.Viper) (Scan, error) {
	cfg := Default()
	start, end, err := ParsePortRange(v.GetString(KeyPorts))
	if err != nil {
		return cfg, err
	}
	cfg.Target = strings.TrimSpace(v.GetString(KeyTarget))
	if ip := net.ParseIP(cfg.Target); ip != nil {
		cfg.Address = ip.String()
	}
	cfg.StartPort = start
	cfg.EndPort = end
	cfg.Workers = v.GetInt(KeyThreads)
	if cfg.Timeout, err = ParseTimeout(v.GetString(KeyTimeout)); err != nil {
		return cfg, err
	}
	cfg.ResolveServices = v.GetBool(KeyServices)
	cfg.ShowClosed = v.GetBool(KeyShowClosed)
	cfg.Strategy = v.GetString(KeyStrategy)
	cfg.Output = v.GetString(KeyOutput)
	cfg.Format = v.GetString(KeyFormat)
	cfg.Log = Log{
		Level:      v.GetString(KeyLogLevel),
		Format:     v.GetString(KeyLogFormat),
		Output:     v.GetString(KeyLogOutput),
		FilePath:   v.GetString(KeyLogFile),
		MaxSize:    v.GetInt(KeyLogMaxSize),
		MaxBackups: v.GetInt(KeyLogMaxBackups),
		MaxAge:     v.GetInt(KeyLogMaxAge),
		Compress:   v.GetBool(KeyLogCompress),
	}
	if cfg.Target == "" {
		return cfg, errors.Wrap(ErrInvalidConfig, "no target specified")
	}
	return cfg, nil
}
