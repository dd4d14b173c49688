package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"diskPatternMaker/internal/config"
	"diskPatternMaker/internal/disk"
	"diskPatternMaker/internal/logger"
)

// === BURN (반복 기록 루프) ===
//
// source 파일을 target에 계속 다시 기록한다. 소비자가 스트림 끝까지 읽고
// 재시작하는 장치용. 복사 한 번이라도 실패하면 루프 종료.

func cmdBurn(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("burn", flag.ExitOnError)
	source := fs.String("source", cfg.Output, "source file (fixed, block-aligned length)")
	target := fs.String("target", "", "target block device or file")
	block := fs.Int64("block-size", cfg.BlockSize, "write granularity in bytes")
	cycles := fs.Int64("cycles", 0, "stop after N cycles (0 = until failure or interrupt)")
	force := fs.Bool("force", false, "do not ask for confirmation")
	_ = fs.Parse(args)

	if *target == "" {
		fmt.Fprintln(os.Stderr, "burn: --target is required")
		os.Exit(2)
	}

	log, err := logger.New(cfg.Debug)
	must(err)
	defer log.Sync()

	direct := false
	if st, err := os.Stat(*target); err == nil && st.Mode()&os.ModeDevice != 0 {
		direct = true
		if !*force {
			must(confirmErase(*target))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := disk.Burner{
		Source:    *source,
		Target:    *target,
		BlockSize: *block,
		Direct:    direct,
		MaxCycles: *cycles,
		Log:       log,
	}
	done, err := b.Run(ctx)
	if err != nil {
		fatal("burn stopped after %d cycles: %v", done, err)
	}
	fmt.Printf("done: %d cycles\n", done)
}
