package main

import (
	"flag"
	"fmt"

	"github.com/dustin/go-humanize"

	"diskPatternMaker/internal/config"
	"diskPatternMaker/internal/disk"
	"diskPatternMaker/internal/tiler"
)

// === PLAN (세그먼트 후보 열거) ===

func cmdPlan(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	total := fs.Int64("total", cfg.TotalLength, "target length in bytes")
	block := fs.Int64("block-size", cfg.BlockSize, "physical block size in bytes")
	min := fs.Int64("min", cfg.RangeMin, "smallest segment size to list (0 = no limit)")
	max := fs.Int64("max", cfg.RangeMax, "largest segment size to list (0 = no limit)")
	dev := fs.String("device", "", "probe length/block size from a block device")
	_ = fs.Parse(args)

	space, err := resolveSpace(*total, *block, *dev)
	must(err)

	cands, err := tiler.Enumerate(space, *min, *max)
	must(err)
	if len(cands) == 0 {
		fatal("%v (total=%d block=%d min=%d max=%d)", tiler.ErrNoCandidates, space.TotalLength, space.BlockSize, *min, *max)
	}

	printCandidates(space, cands)
}

func printCandidates(space tiler.Space, cands []tiler.Candidate) {
	fmt.Printf("Segment sizes for total=%s block=%s:\n",
		humanize.IBytes(uint64(space.TotalLength)), humanize.IBytes(uint64(space.BlockSize)))
	for i, c := range cands {
		fmt.Printf("  [%d] %s  (%d bytes, %d repetitions)\n",
			i, humanize.IBytes(uint64(c.Size)), c.Size, c.Repetitions)
	}
}

// --device가 있으면 지오메트리에서 total/block을 읽어옴
func resolveSpace(total, block int64, dev string) (tiler.Space, error) {
	if dev != "" {
		g, err := disk.DevInspector{Dev: dev}.Geometry()
		if err != nil {
			return tiler.Space{}, err
		}
		if total == 0 {
			total = g.SizeBytes
		}
		if g.PhysBlock > 0 {
			block = g.PhysBlock
		}
	}
	if total == 0 {
		return tiler.Space{}, fmt.Errorf("total length required (--total, DPM_TOTAL_LENGTH or --device)")
	}
	return tiler.Space{TotalLength: total, BlockSize: block}, nil
}
