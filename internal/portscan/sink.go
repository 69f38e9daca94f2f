package portscan

import (
	"fmt"
	"sync"
)

// ResultSink 并发安全的只追加结果集
// 顺序为各 worker 的完成顺序, 不按端口排序
type ResultSink struct {
	mu      sync.Mutex
	results []PortResult
	open    int
}

// NewResultSink 创建容量为 capacity 的结果集, capacity 应为扫描端口总数
func NewResultSink(capacity int) *ResultSink {
	if capacity < 0 {
		capacity = 0
	}
	return &ResultSink{
		results: make([]PortResult, 0, capacity),
	}
}

// Append 追加一条结果. 超出容量说明配置与分区不一致, 属于程序错误, 直接 panic
func (s *ResultSink) Append(r PortResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.results) >= cap(s.results) {
		panic(fmt.Sprintf("portscan: result sink overflow (capacity %d, port %d)", cap(s.results), r.Port))
	}
	s.results = append(s.results, r)
	if r.IsOpen {
		s.open++
	}
}

// Count 已记录的结果数
func (s *ResultSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// OpenCount 已记录的开放端口数
func (s *ResultSink) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Cap 结果集容量
func (s *ResultSink) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cap(s.results)
}

// Results 返回结果快照
func (s *ResultSink) Results() []PortResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PortResult, len(s.results))
	copy(out, s.results)
	return out
}

// OpenPorts 返回开放端口列表, 顺序与 Results 相同
func (s *ResultSink) OpenPorts() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ports []int
	for _, r := range s.results {
		if r.IsOpen {
			ports = append(ports, r.Port)
		}
	}
	return ports
}
