package portscan

import (
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"CscannerGo/internal/config"
	"CscannerGo/internal/services"
)

// Scanner 扫描调度器
// 按配置切分端口区间, 启动固定数量的 worker, 等待全部结束后计算统计信息
type Scanner struct {
	cfg      config.Scan
	probe    ProbeFunc
	label    LabelFunc
	progress Progress
	log      logrus.FieldLogger
}

// Option 扫描器可选项
type Option func(*Scanner)

// WithProbe 替换端口探测函数
func WithProbe(fn ProbeFunc) Option {
	return func(s *Scanner) { s.probe = fn }
}

// WithLabeler 替换服务名解析函数
func WithLabeler(fn LabelFunc) Option {
	return func(s *Scanner) { s.label = fn }
}

// WithProgress 设置进度上报
func WithProgress(p Progress) Option {
	return func(s *Scanner) { s.progress = p }
}

// WithLogger 设置日志
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Scanner) { s.log = l }
}

// NewScanner 校验配置并创建一个新的扫描器实例
// 配置错误在任何 worker 启动前返回
func NewScanner(cfg config.Scan, opts ...Option) (*Scanner, error) {
	requested := cfg.Workers
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scanner{
		cfg:      cfg,
		probe:    ConnectProbe,
		label:    services.Label,
		progress: nopProgress{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	if requested != cfg.Workers {
		s.log.WithFields(logrus.Fields{
			"requested": requested,
			"limit":     config.MaxWorkers,
		}).Warn("worker count clamped")
	}
	return s, nil
}

// Config 返回校验后的配置
func (s *Scanner) Config() config.Scan {
	return s.cfg
}

// Run 执行扫描并阻塞直到所有 worker 完成
// 运行开始后不可取消, 单个端口的失败不会中断扫描
func (s *Scanner) Run() (*ResultSink, Summary) {
	cfg := s.cfg
	sink := NewResultSink(cfg.EndPort - cfg.StartPort + 1)

	s.log.WithFields(logrus.Fields{
		"address":  cfg.Address,
		"start":    cfg.StartPort,
		"end":      cfg.EndPort,
		"workers":  cfg.Workers,
		"timeout":  cfg.Timeout,
		"strategy": cfg.Strategy,
	}).Info("scan started")

	var wg sync.WaitGroup
	started := time.Now()
	switch cfg.Strategy {
	case config.StrategyQueue:
		s.runQueued(&wg, sink)
	default:
		s.runPartitioned(&wg, sink)
	}
	wg.Wait()
	finished := time.Now()

	summary := NewSummary(started, finished, cfg.StartPort, cfg.EndPort, sink)
	s.log.WithFields(logrus.Fields{
		"total":    summary.TotalPorts,
		"recorded": summary.Recorded,
		"open":     summary.OpenPorts,
		"elapsed":  summary.Elapsed,
	}).Info("scan finished")
	return sink, summary
}

// runPartitioned 每个 worker 绑定一个静态子区间
func (s *Scanner) runPartitioned(wg *sync.WaitGroup, sink *ResultSink) {
	for i, r := range Partition(s.cfg.StartPort, s.cfg.EndPort, s.cfg.Workers) {
		wg.Add(1)
		go func(w *worker, r PortRange) {
			defer wg.Done()
			w.scanRange(r)
		}(s.newWorker(i, sink), r)
	}
}

// runQueued 所有 worker 共享一个端口队列
func (s *Scanner) runQueued(wg *sync.WaitGroup, sink *ResultSink) {
	ports := make(chan int, s.cfg.EndPort-s.cfg.StartPort+1)
	for p := s.cfg.StartPort; p <= s.cfg.EndPort; p++ {
		ports <- p
	}
	close(ports)
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			w.drain(ports)
		}(s.newWorker(i, sink))
	}
}

func (s *Scanner) newWorker(id int, sink *ResultSink) *worker {
	return &worker{
		id:         id,
		address:    s.cfg.Address,
		timeout:    s.cfg.Timeout,
		showClosed: s.cfg.ShowClosed,
		resolve:    s.cfg.ResolveServices,
		probe:      s.probe,
		label:      s.label,
		sink:       sink,
		progress:   s.progress,
		log:        s.log,
	}
}
