package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"CscannerGo/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// New 根据配置创建 logrus 实例
// 非法日志级别回退到 info, 非法格式/输出返回错误
func New(cfg config.Log) (*logrus.Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		defer l.Warnf("Invalid log level '%s', using 'info' as default", cfg.Level)
	}
	l.SetLevel(level)

	if err := setFormatter(l, cfg); err != nil {
		return nil, err
	}
	if err := setOutput(l, cfg); err != nil {
		return nil, err
	}
	return l, nil
}

func setFormatter(l *logrus.Logger, cfg config.Log) error {
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return errors.Errorf("unsupported log format: %s", cfg.Format)
	}
	return nil
}

func setOutput(l *logrus.Logger, cfg config.Log) error {
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		l.SetOutput(os.Stderr)
	case "stdout":
		l.SetOutput(os.Stdout)
	case "file":
		w, err := fileWriter(cfg)
		if err != nil {
			return err
		}
		l.SetOutput(w)
	default:
		return errors.Errorf("unsupported log output: %s", cfg.Output)
	}
	return nil
}

// fileWriter 使用 lumberjack 做日志轮转
func fileWriter(cfg config.Log) (io.Writer, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("file path is required when output is file")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}, nil
}
