package portscan

// PortRange 分配给单个 worker 的闭区间 [Lo, Hi]
// Lo > Hi 表示空区间 (worker 数大于端口数时出现)
type PortRange struct {
	Lo int
	Hi int
}

// Empty 区间是否没有端口
func (r PortRange) Empty() bool {
	return r.Lo > r.Hi
}

// Len 区间内端口数量, 倒置区间为 0
func (r PortRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// ProbeOutcome 单次探测结果
type ProbeOutcome struct {
	Port      int
	Reachable bool
}

// PortResult 写入 ResultSink 的扫描结果, 写入后不再修改
type PortResult struct {
	Address string `json:"address" yaml:"address"`
	Port    int    `json:"port" yaml:"port"`
	IsOpen  bool   `json:"open" yaml:"open"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
}
