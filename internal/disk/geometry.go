package disk

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/backend/file"

	"diskPatternMaker/internal/device"
)

// Probe reports the geometry of a block device or a regular file. Devices are
// queried with the BLK* ioctls first; if those fail (no permission, exotic
// kernels) lsblk is used instead. Regular files report their stat size with
// zero block sizes, the caller substitutes its configured default.
func Probe(path string) (device.Geometry, error) {
	st, err := os.Stat(path)
	if err != nil {
		return device.Geometry{}, err
	}

	if st.Mode()&os.ModeDevice != 0 {
		if g, err := probeIoctl(path); err == nil {
			return g, nil
		}
		return probeLsblk(path)
	}

	return device.Geometry{Path: path, SizeBytes: st.Size()}, nil
}

func probeLsblk(dev string) (device.Geometry, error) {
	out, err := exec.Command("lsblk", "-bdn", "-o", "SIZE,PHY-SEC,LOG-SEC", dev).Output()
	if err != nil {
		return device.Geometry{}, fmt.Errorf("lsblk %s: %w", dev, err)
	}
	size, phys, log, err := ParseLsblkGeometry(string(out))
	if err != nil {
		return device.Geometry{}, fmt.Errorf("lsblk %s: %w", dev, err)
	}
	return device.Geometry{Path: dev, SizeBytes: size, PhysBlock: phys, LogBlock: log}, nil
}

// lsblk -bdn -o SIZE,PHY-SEC,LOG-SEC 출력 파싱
func ParseLsblkGeometry(out string) (size, phys, log int64, err error) {
	f := strings.Fields(strings.TrimSpace(out))
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("unexpected output %q", strings.TrimSpace(out))
	}
	vals := make([]int64, 3)
	for i, s := range f {
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("bad field %q", s)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

/* ===== 인스펙터 백엔드 ===== */

// 실제 블록 디바이스 (/dev/sdX)
type DevInspector struct {
	Dev string
}

func (d DevInspector) Geometry() (device.Geometry, error) {
	return Probe(d.Dev)
}

// 디스크 이미지 파일: go-diskfs가 섹터 크기까지 보고함
type ImageInspector struct {
	Path string
}

func (i ImageInspector) Geometry() (device.Geometry, error) {
	b, err := file.OpenFromPath(i.Path, true)
	if err != nil {
		return device.Geometry{}, fmt.Errorf("open image %s: %w", i.Path, err)
	}
	d, err := diskfs.OpenBackend(b)
	if err != nil {
		return device.Geometry{}, fmt.Errorf("open image %s: %w", i.Path, err)
	}
	defer d.Close()
	return device.Geometry{
		Path:      i.Path,
		SizeBytes: d.Size,
		PhysBlock: d.PhysicalBlocksize,
		LogBlock:  d.LogicalBlocksize,
	}, nil
}
