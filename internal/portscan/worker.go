package portscan

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ProgressEvery worker 每扫描多少个端口上报一次进度
const ProgressEvery = 100

// Progress 进度上报, *progressbar.ProgressBar 满足该接口
type Progress interface {
	Add(num int) error
}

type nopProgress struct{}

func (nopProgress) Add(int) error { return nil }

// LabelFunc 端口到服务名的映射
type LabelFunc func(port int) string

// worker 顺序扫描分配给它的端口, 结果写入共享的 sink
type worker struct {
	id         int
	address    string
	timeout    time.Duration
	showClosed bool
	resolve    bool

	probe    ProbeFunc
	label    LabelFunc
	sink     *ResultSink
	progress Progress
	log      logrus.FieldLogger

	scanned  int
	reported int
}

// scanRange 扫描闭区间内所有端口, 倒置区间直接返回
func (w *worker) scanRange(r PortRange) {
	for port := r.Lo; port <= r.Hi; port++ {
		w.scanPort(port)
	}
	w.flush()
}

// drain 从共享队列取端口直到队列关闭
func (w *worker) drain(ports <-chan int) {
	for port := range ports {
		w.scanPort(port)
	}
	w.flush()
}

func (w *worker) scanPort(port int) {
	// 探测在锁外进行, worker 之间不会因网络 I/O 互相阻塞
	out := probe(w.probe, w.address, port, w.timeout)
	if out.Reachable || w.showClosed {
		res := PortResult{
			Address: w.address,
			Port:    out.Port,
			IsOpen:  out.Reachable,
		}
		if w.resolve {
			res.Service = w.label(out.Port)
		}
		w.sink.Append(res)
	}

	w.scanned++
	if w.scanned%ProgressEvery == 0 {
		w.report()
		w.log.WithFields(logrus.Fields{
			"worker":  w.id,
			"scanned": w.scanned,
			"port":    port,
		}).Debug("worker progress")
	}
}

// flush 上报剩余进度, 保证进度总数等于已扫描端口数
func (w *worker) flush() {
	if w.scanned > w.reported {
		w.report()
	}
	w.log.WithFields(logrus.Fields{
		"worker":  w.id,
		"scanned": w.scanned,
	}).Debug("worker finished")
}

func (w *worker) report() {
	_ = w.progress.Add(w.scanned - w.reported)
	w.reported = w.scanned
}
