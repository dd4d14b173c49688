//go:build linux

package disk

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"diskPatternMaker/internal/device"
)

func probeIoctl(dev string) (device.Geometry, error) {
	f, err := os.Open(dev)
	if err != nil {
		return device.Geometry{}, err
	}
	defer f.Close()

	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return device.Geometry{}, errno
	}

	phys, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKPBSZGET)
	if err != nil {
		return device.Geometry{}, err
	}
	logical, err := unix.IoctlGetInt(int(f.Fd()), unix.BLKSSZGET)
	if err != nil {
		return device.Geometry{}, err
	}

	return device.Geometry{
		Path:      dev,
		SizeBytes: int64(size),
		PhysBlock: int64(phys),
		LogBlock:  int64(logical),
	}, nil
}

// O_DIRECT는 장치 대상일 때만. 파일 대상(이미지, 테스트)은 일반 open.
func openTarget(path string, direct bool) (*os.File, error) {
	if direct {
		return os.OpenFile(path, os.O_WRONLY|unix.O_DIRECT, 0)
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
}
