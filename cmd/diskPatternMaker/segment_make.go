package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"diskPatternMaker/internal/config"
	"diskPatternMaker/internal/logger"
	"diskPatternMaker/internal/pattern"
	"diskPatternMaker/internal/tiler"
)

// === MAKE (대화형 세그먼트 파일 생성) ===
//
// literal 하나를 받아서: 후보 크기 열거 → 번호 선택 → literal+zero-pad 타일링
// → 파일 생성 → mmap 검증.

func cmdMake(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("make", flag.ExitOnError)
	total := fs.Int64("total", cfg.TotalLength, "target length in bytes")
	block := fs.Int64("block-size", cfg.BlockSize, "physical block size in bytes")
	min := fs.Int64("min", cfg.RangeMin, "smallest segment size to offer (0 = no limit)")
	max := fs.Int64("max", cfg.RangeMax, "largest segment size to offer (0 = no limit)")
	output := fs.String("output", cfg.Output, "output file path")
	size := fs.Int64("size", 0, "segment size in bytes (skip the menu)")
	dev := fs.String("device", "", "probe length/block size from a block device")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "make: exactly one literal argument is required")
		os.Exit(1)
	}
	literal := []byte(fs.Arg(0))

	log, err := logger.New(cfg.Debug)
	must(err)
	defer log.Sync()

	space, err := resolveSpace(*total, *block, *dev)
	must(err)

	// literal은 도달 가능한 최소 세그먼트(블록 1개)보다 짧아야 함.
	// 선택된 세그먼트 길이에 대해서는 ComputeUnit이 다시 검증한다.
	if len(literal) < 1 || int64(len(literal)) >= space.BlockSize {
		fatal("literal length must be 1..%d bytes, got %d", space.BlockSize-1, len(literal))
	}

	segment := *size
	if segment == 0 {
		cands, err := tiler.Enumerate(space, *min, *max)
		must(err)
		if len(cands) == 0 {
			fatal("%v (total=%d block=%d min=%d max=%d)", tiler.ErrNoCandidates, space.TotalLength, space.BlockSize, *min, *max)
		}
		printCandidates(space, cands)
		idx := promptIndex(bufio.NewReader(os.Stdin), len(cands))
		segment = cands[idx].Size
	}

	unit, err := pattern.ComputeUnit(segment, int64(len(literal)))
	must(err)
	log.Info("pattern unit",
		zap.Int64("segment", segment),
		zap.Int64("unit", unit.Length),
		zap.Int64("padding", unit.Padding),
		zap.Int64("repetitions", segment/unit.Length),
	)

	must(pattern.WriteFile(*output, segment, literal))
	must(pattern.VerifyFile(*output, segment, literal))
	log.Info("segment written",
		zap.String("path", *output),
		zap.String("size", humanize.IBytes(uint64(segment))),
	)
	fmt.Printf("OK: %s (%d bytes)\n", *output, segment)
}
