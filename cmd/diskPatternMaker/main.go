// main.go — segment plan/make + raw device burn loop
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"diskPatternMaker/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Parse()
	if err != nil {
		fatal("config: %v", err)
	}

	switch os.Args[1] {
	case "plan":
		cmdPlan(cfg, os.Args[2:])
	case "make":
		cmdMake(cfg, os.Args[2:])
	case "burn":
		cmdBurn(cfg, os.Args[2:])
	case "probe":
		cmdProbe(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, `Usage:
  %s plan  [--total N --block-size N --min N --max N] [--device /dev/sdX]
  %s make  [--total N --block-size N --output FILE --size N] [--device /dev/sdX] <literal>
           # 세그먼트 크기 번호 선택 → literal+zero-pad 패턴 파일 생성 + 검증
  %s burn  --source FILE --target /dev/sdX [--block-size N] [--force]
           # source를 target에 반복 기록, 첫 실패에서 중단
  %s probe [--device /dev/sdX | --image FILE]
           # 대화형: USB 디스크 리스트 → 번호 선택 → 지오메트리 표시
`, prog, prog, prog, prog)
}
