package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"CscannerGo/internal/config"
	"CscannerGo/internal/portscan"
)

const separator = "============================================================"

// document yaml/json 报告结构
type document struct {
	Target    string                `json:"target" yaml:"target"`
	Address   string                `json:"address" yaml:"address"`
	StartPort int                   `json:"start_port" yaml:"start_port"`
	EndPort   int                   `json:"end_port" yaml:"end_port"`
	Started   time.Time             `json:"started" yaml:"started"`
	Elapsed   float64               `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Total     int                   `json:"total_ports" yaml:"total_ports"`
	Open      int                   `json:"open_ports" yaml:"open_ports"`
	Rate      *float64              `json:"rate" yaml:"rate"` // 耗时为 0 时为 null
	Results   []portscan.PortResult `json:"results" yaml:"results"`
}

// Render 按格式生成报告内容
// text 格式每行 "port service address", 只包含开放端口; yaml/json 包含全部结果
func Render(format string, cfg config.Scan, results []portscan.PortResult, s portscan.Summary) ([]byte, error) {
	switch format {
	case "", config.FormatText:
		return renderText(results, s.Finished), nil
	case config.FormatYAML:
		return yaml.Marshal(newDocument(cfg, results, s))
	case config.FormatJSON:
		return json.MarshalIndent(newDocument(cfg, results, s), "", "  ")
	default:
		return nil, errors.Errorf("unsupported output format: %s", format)
	}
}

func renderText(results []portscan.PortResult, at time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Port Scan Results - %s\n", at.Format(time.ANSIC))
	fmt.Fprintf(&buf, "# %s\n\n", separator)
	for _, r := range results {
		if r.IsOpen {
			fmt.Fprintf(&buf, "%-8d %-15s %s\n", r.Port, r.Service, r.Address)
		}
	}
	return buf.Bytes()
}

func newDocument(cfg config.Scan, results []portscan.PortResult, s portscan.Summary) document {
	doc := document{
		Target:    cfg.Target,
		Address:   cfg.Address,
		StartPort: cfg.StartPort,
		EndPort:   cfg.EndPort,
		Started:   s.Started,
		Elapsed:   s.Elapsed.Seconds(),
		Total:     s.TotalPorts,
		Open:      s.OpenPorts,
		Results:   results,
	}
	if rate, ok := s.Rate(); ok {
		doc.Rate = &rate
	}
	return doc
}

// WriteAtomic 先写临时文件, fsync 后 rename 到目标路径
// 失败时删除临时文件, 原文件保持不变
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	tmp, err := os.CreateTemp(dir, "cscanner-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename temp file")
	}
	return nil
}

// Save 渲染并写入结果文件
func Save(path string, cfg config.Scan, results []portscan.PortResult, s portscan.Summary) error {
	data, err := Render(cfg.Format, cfg, results, s)
	if err != nil {
		return err
	}
	return WriteAtomic(path, data)
}
