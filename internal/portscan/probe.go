package portscan

import (
	"net"
	"strconv"
	"time"
)

// ProbeFunc 对 (address, port) 做一次限时可达性探测
type ProbeFunc func(address string, port int, timeout time.Duration) bool

// ConnectProbe TCP 全连接探测
// 每次调用新建连接, 超时/拒绝/不可达/无法创建 socket 一律视为不可达, 不返回错误.
// 连接成功后立即关闭, 不发送任何数据.
func ConnectProbe(address string, port int, timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}
	d := net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1, // 禁用 KeepAlive，扫描不需要保持连接
	}
	conn, err := d.Dial("tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// probe 包装 ProbeFunc, 返回 ProbeOutcome
func probe(fn ProbeFunc, address string, port int, timeout time.Duration) ProbeOutcome {
	return ProbeOutcome{
		Port:      port,
		Reachable: fn(address, port, timeout),
	}
}
