package portscan

import "time"

// Summary 所有 worker 结束后计算一次的统计信息
type Summary struct {
	TotalPorts int
	Recorded   int
	OpenPorts  int
	Started    time.Time
	Finished   time.Time
	Elapsed    time.Duration
}

// NewSummary 根据起止时间, 配置的端口区间和结果集计算统计
func NewSummary(started, finished time.Time, startPort, endPort int, sink *ResultSink) Summary {
	total := endPort - startPort + 1
	if total < 0 {
		total = 0
	}
	return Summary{
		TotalPorts: total,
		Recorded:   sink.Count(),
		OpenPorts:  sink.OpenCount(),
		Started:    started,
		Finished:   finished,
		Elapsed:    finished.Sub(started),
	}
}

// Rate 扫描速度 (端口/秒). 耗时为 0 时速度无定义, ok 返回 false
func (s Summary) Rate() (rate float64, ok bool) {
	if s.Elapsed <= 0 {
		return 0, false
	}
	return float64(s.TotalPorts) / s.Elapsed.Seconds(), true
}
