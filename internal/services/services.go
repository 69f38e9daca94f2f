package services

import (
	"strconv"
	"strings"

	"github.com/google/gopacket/layers"
)

// Unknown 无法识别的端口
const Unknown = "unknown"

// fallback IANA 注册表中没有的常见端口
var fallback = map[int]string{
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "dns",
	80:    "http",
	110:   "pop3",
	111:   "rpcbind",
	135:   "msrpc",
	139:   "netbios-ssn",
	143:   "imap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "smtps",
	514:   "syslog",
	587:   "submission",
	631:   "ipp",
	993:   "imaps",
	995:   "pop3s",
	1433:  "ms-sql-s",
	1521:  "oracle",
	1701:  "l2tp",
	1723:  "pptp",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5432:  "postgresql",
	5900:  "vnc",
	5901:  "vnc-1",
	6000:  "x11",
	6379:  "redis",
	6667:  "irc",
	8000:  "http-alt",
	8008:  "http-alt",
	8080:  "http-proxy",
	8443:  "https-alt",
	8888:  "sun-answerbook",
	9090:  "websm",
	27017: "mongod",
	27018: "mongod",
	50000: "db2",
}

// Label 返回端口对应的服务名
// 先查 gopacket 内置的 IANA TCP 端口表, 再查静态表, 都没有返回 "unknown"
func Label(port int) string {
	if port < 1 || port > 65535 {
		return Unknown
	}
	if name := iana(port); name != "" {
		return name
	}
	if name, ok := fallback[port]; ok {
		return name
	}
	return Unknown
}

// iana 从 "80(http)" 形式中取出服务名, 没有注册名时 String() 只返回数字
func iana(port int) string {
	s := layers.TCPPort(port).String()
	prefix := strconv.Itoa(port) + "("
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ")") {
		return ""
	}
	return s[len(prefix) : len(s)-1]
}
