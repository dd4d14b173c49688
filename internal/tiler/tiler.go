package tiler

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrConfiguration = errors.New("invalid length configuration")
	ErrNoCandidates  = errors.New("no candidate segment sizes in range")
)

// 전체 길이 + 물리 블록 크기
type Space struct {
	TotalLength int64
	BlockSize   int64
}

func (s Space) Validate() error {
	if s.TotalLength <= 0 {
		return fmt.Errorf("%w: total length must be positive, got %d", ErrConfiguration, s.TotalLength)
	}
	if s.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrConfiguration, s.BlockSize)
	}
	if s.TotalLength%s.BlockSize != 0 {
		return fmt.Errorf("%w: block size %d does not divide total length %d", ErrConfiguration, s.BlockSize, s.TotalLength)
	}
	return nil
}

// Size | TotalLength, BlockSize | Size, Repetitions = TotalLength/Size
type Candidate struct {
	Size        int64
	Repetitions int64
}

// Enumerate returns every segment size that is a multiple of the block size and
// an exact divisor of the total length, ascending by size. rangeMin/rangeMax
// filter inclusively on size; 0 leaves that end open.
//
// 나누어떨어지지 않으면 ErrConfiguration (열거 전에 바로 실패).
func Enumerate(space Space, rangeMin, rangeMax int64) ([]Candidate, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	totalBlocks := space.TotalLength / space.BlockSize

	// divisor pairs of totalBlocks: i and totalBlocks/i. totalBlocks can be
	// tens of millions of blocks on real disks, so no linear trial division.
	var reps []int64
	for i := int64(1); i*i <= totalBlocks; i++ {
		if totalBlocks%i != 0 {
			continue
		}
		reps = append(reps, i)
		if j := totalBlocks / i; j != i {
			reps = append(reps, j)
		}
	}

	cands := make([]Candidate, 0, len(reps))
	for _, r := range reps {
		size := space.TotalLength / r
		if rangeMin > 0 && size < rangeMin {
			continue
		}
		if rangeMax > 0 && size > rangeMax {
			continue
		}
		cands = append(cands, Candidate{Size: size, Repetitions: r})
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].Size < cands[b].Size })
	return cands, nil
}
