package portscan

// Partition 将闭区间 [start, end] 切分为 workers 个连续子区间.
//
// chunk = (end-start+1) / workers, 第 i 个区间起点为 start+i*chunk,
// 除最后一个外终点为起点+chunk-1; 最后一个区间终点固定为 end, 吸收余数.
// workers 大于端口数时 chunk 为 0, 前面的区间全部倒置 (Lo > Hi), 视为空区间.
func Partition(start, end, workers int) []PortRange {
	if workers < 1 {
		return nil
	}
	chunk := (end - start + 1) / workers
	ranges := make([]PortRange, workers)
	for i := 0; i < workers; i++ {
		lo := start + i*chunk
		hi := lo + chunk - 1
		if i == workers-1 {
			hi = end
		}
		ranges[i] = PortRange{Lo: lo, Hi: hi}
	}
	return ranges
}
