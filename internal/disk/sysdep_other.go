//go:build !linux

package disk

import (
	"errors"
	"os"

	"diskPatternMaker/internal/device"
)

func probeIoctl(dev string) (device.Geometry, error) {
	return device.Geometry{}, errors.New("device ioctls are only supported on linux")
}

func openTarget(path string, direct bool) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
}
