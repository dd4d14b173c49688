package config

import (
	"github.com/caarlos0/env/v11"
)

const (
	DefaultBlockSize = 4096
	DefaultOutput    = "segment.bin"
)

// 환경변수 → 기본값, 플래그가 다시 오버라이드
type Config struct {
	TotalLength int64  `env:"DPM_TOTAL_LENGTH"`
	BlockSize   int64  `env:"DPM_BLOCK_SIZE" envDefault:"4096"`
	Output      string `env:"DPM_OUTPUT"     envDefault:"segment.bin"`
	RangeMin    int64  `env:"DPM_RANGE_MIN"`
	RangeMax    int64  `env:"DPM_RANGE_MAX"`
	Debug       bool   `env:"DPM_DEBUG"`
}

func Parse() (Config, error) {
	return env.ParseAs[Config]()
}
