package device

/* ===== 장치 지오메트리 ===== */
type Geometry struct {
	Path      string
	SizeBytes int64
	PhysBlock int64 // physical sector size, write granularity
	LogBlock  int64 // logical sector size, alignment unit for direct I/O
}

// TotalBlocks is the device length in physical blocks; 0 when the length is
// not a whole multiple (such a target cannot be tiled exactly).
func (g Geometry) TotalBlocks() int64 {
	if g.PhysBlock <= 0 || g.SizeBytes%g.PhysBlock != 0 {
		return 0
	}
	return g.SizeBytes / g.PhysBlock
}

// 각 백엔드가 “지오메트리를 제공”
type Inspector interface {
	Geometry() (Geometry, error)
}
