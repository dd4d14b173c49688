package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dustin/go-humanize"

	"diskPatternMaker/internal/device"
	"diskPatternMaker/internal/disk"
	"diskPatternMaker/internal/tiler"
	"diskPatternMaker/internal/utils"
)

// === PROBE (지오메트리 조회) ===

// USB 디스크 후보만 수집 (TYPE=disk, TRAN=usb). nvme0n1 제외.
type usbDev struct {
	Path   string // /dev/sdX
	Size   string
	Model  string
	Serial string
}

func listUSBDiskCandidates() ([]usbDev, error) {
	out, err := exec.Command("lsblk", "-dn", "-o", "NAME,SIZE,MODEL,SERIAL,TRAN,TYPE").Output()
	if err != nil {
		return nil, err
	}
	var res []usbDev
	for _, ln := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		f := strings.Fields(ln)
		if len(f) < 6 {
			continue
		}
		name, size, tran, typ := f[0], f[1], f[len(f)-2], f[len(f)-1]
		if typ != "disk" || strings.ToLower(tran) != "usb" {
			continue
		}
		if name == "nvme0n1" {
			continue
		}
		model := strings.Join(f[2:len(f)-3], " ")
		serial := f[len(f)-3]
		res = append(res, usbDev{
			Path: "/dev/" + name, Size: size, Model: strings.TrimSpace(model), Serial: serial,
		})
	}
	return res, nil
}

// 대화형: USB 리스트 → 번호 선택
func pickUSBDisk() (string, error) {
	list, err := listUSBDiskCandidates()
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("no USB disks found")
	}

	fmt.Println("Select USB disk to probe:")
	for i, d := range list {
		tag := ""
		if d.Serial != "" {
			tag = "  (" + d.Serial + ")"
		}
		fmt.Printf("  [%d] %s  %s  %s%s\n", i, d.Path, d.Size, d.Model, tag)
	}
	idx := promptIndex(bufio.NewReader(os.Stdin), len(list))
	return list[idx].Path, nil
}

func cmdProbe(args []string) {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	devFlag := fs.String("device", "", "block device (e.g. /dev/sdX)")
	imgFlag := fs.String("image", "", "disk image file")
	jsonOut := fs.Bool("json", false, "print geometry as JSON")
	_ = fs.Parse(args)

	var insp device.Inspector
	switch {
	case *imgFlag != "":
		insp = disk.ImageInspector{Path: *imgFlag}
	case *devFlag != "":
		insp = disk.DevInspector{Dev: *devFlag}
	default:
		dev, err := pickUSBDisk()
		must(err)
		insp = disk.DevInspector{Dev: dev}
	}

	g, err := insp.Geometry()
	must(err)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(g)
		return
	}

	fmt.Println("=== geometry ===")
	fmt.Printf("path           : %s\n", g.Path)
	fmt.Printf("size           : %s  (%d bytes)\n", humanize.IBytes(uint64(g.SizeBytes)), g.SizeBytes)
	if g.PhysBlock > 0 {
		fmt.Printf("phys_block     : %d\n", g.PhysBlock)
	}
	if g.LogBlock > 0 {
		fmt.Printf("log_block      : %d\n", g.LogBlock)
	}
	if tb := g.TotalBlocks(); tb > 0 {
		fmt.Printf("total_blocks   : %d\n", tb)
		cands, err := tiler.Enumerate(tiler.Space{TotalLength: g.SizeBytes, BlockSize: g.PhysBlock}, 0, 0)
		if err == nil {
			fmt.Printf("segment_sizes  : %d candidates\n", len(cands))
		}
	} else if g.PhysBlock > 0 {
		fmt.Println("WARN: length is not a whole multiple of the physical block size; exact tiling impossible")
	}

	// udev 속성 (장치일 때만): 모델/시리얼 참고용
	if *imgFlag == "" {
		up, _ := exec.Command("udevadm", "info", "--query=property", "--name", g.Path).Output()
		kv := utils.ParseKVEq(string(up))
		if m := strings.TrimSpace(kv["ID_MODEL"]); m != "" {
			fmt.Printf("model          : %s %s\n", strings.TrimSpace(kv["ID_VENDOR"]), m)
		}
		if s := strings.TrimSpace(kv["ID_SERIAL_SHORT"]); s != "" {
			fmt.Printf("serial         : %s\n", s)
		}
	}
}
