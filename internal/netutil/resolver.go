package netutil

import (
	"net"

	"github.com/pkg/errors"
)

// ErrResolve 目标无法解析为 IPv4 地址
var ErrResolve = errors.New("failed to resolve hostname")

// LookupIP 可在测试中替换
var LookupIP = net.LookupIP

// Resolve 将目标 (主机名或 IP) 解析为数字地址.
// IP 字面量原样返回 (IPv6 也接受), 主机名取第一个 A 记录.
func Resolve(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
		return ip.String(), nil
	}
	if target == "" {
		return "", errors.Wrap(ErrResolve, "empty target")
	}

	ips, err := LookupIP(target)
	if err != nil {
		return "", errors.Wrapf(ErrResolve, "%s: %v", target, err)
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", errors.Wrapf(ErrResolve, "%s: no A records found", target)
}

// IsNumeric 目标是否已经是 IP 字面量
func IsNumeric(target string) bool {
	return net.ParseIP(target) != nil
}
