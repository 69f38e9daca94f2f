package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"CscannerGo/internal/config"
	"CscannerGo/internal/portscan"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
)

// Console 控制台输出
type Console struct {
	w          io.Writer
	showClosed bool
}

// NewConsole 创建控制台输出, showClosed 为 true 时同时列出关闭端口
func NewConsole(w io.Writer, showClosed bool) *Console {
	return &Console{w: w, showClosed: showClosed}
}

// Banner 打印程序横幅
func (c *Console) Banner(version string) {
	cyan.Fprintln(c.w, "╔══════════════════════════════════════════════╗")
	cyan.Fprintf(c.w, "║  CscannerGo TCP connect scanner  %-12s║\n", version)
	cyan.Fprintln(c.w, "╚══════════════════════════════════════════════╝")
}

// Configuration 打印扫描配置
func (c *Console) Configuration(cfg config.Scan) {
	services := "No"
	if cfg.ResolveServices {
		services = "Yes"
	}
	bold.Fprintln(c.w, "\n[+] Configuration:")
	c.item("Target    ", cfg.Target)
	c.item("IP Address", cfg.Address)
	c.item("Port Range", fmt.Sprintf("%d - %d (%d ports)", cfg.StartPort, cfg.EndPort, cfg.TotalPorts()))
	c.item("Threads   ", strconv.Itoa(cfg.Workers))
	c.item("Timeout   ", cfg.Timeout.String())
	c.item("Strategy  ", cfg.Strategy)
	c.item("Services  ", services)
}

// Results 以表格打印结果, 按端口排序; 结果集本身保持完成顺序
func (c *Console) Results(results []portscan.PortResult) error {
	rows := make([]portscan.PortResult, 0, len(results))
	for _, r := range results {
		if r.IsOpen || c.showClosed {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Port < rows[j].Port })

	title := "Open Ports Found"
	if c.showClosed {
		title = "Results"
	}
	green.Fprintf(c.w, "\n[+] %s:\n", title)
	if len(rows) == 0 {
		yellow.Fprintln(c.w, "  (none)")
		return nil
	}
	data := pterm.TableData{{"PORT", "SERVICE", "STATE"}}
	for _, r := range rows {
		state := "open"
		if !r.IsOpen {
			state = "closed"
		}
		data = append(data, []string{strconv.Itoa(r.Port), r.Service, state})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.w, table)
	return nil
}

// Statistics 打印统计信息
func (c *Console) Statistics(s portscan.Summary) {
	cyan.Fprintln(c.w, "\n[+] Statistics:")
	c.item("Total ports scanned", strconv.Itoa(s.TotalPorts))
	c.item("Open ports found   ", strconv.Itoa(s.OpenPorts))
	c.item("Time taken         ", fmt.Sprintf("%.2f seconds", s.Elapsed.Seconds()))
	c.item("Scan speed         ", FormatRate(s))
}

// Saved 打印结果文件路径
func (c *Console) Saved(path string) {
	green.Fprintf(c.w, "[+] Results saved to: %s\n", path)
}

// Error 打印错误
func (c *Console) Error(format string, args ...interface{}) {
	red.Fprintf(c.w, "[-] "+format+"\n", args...)
}

func (c *Console) item(key, value string) {
	fmt.Fprintf(c.w, "  %s %s : %s\n", green.Sprint("•"), key, value)
}

// FormatRate 格式化扫描速度, 耗时为 0 时输出 n/a
func FormatRate(s portscan.Summary) string {
	rate, ok := s.Rate()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.0f ports/second", rate)
}
