package pattern

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidInput = errors.New("invalid pattern input")
	ErrVerification = errors.New("output verification failed")
)

// 최소 반복 단위: literal + zero padding, 길이는 segmentLength의 약수
type Unit struct {
	Length  int64
	Padding int64 // Length - len(literal)
}

// ComputeUnit returns the smallest divisor of segmentLength that is at least
// literalLength. segmentLength itself always qualifies, so in the degenerate
// case the literal occurs exactly once and the rest of the segment is zeros.
func ComputeUnit(segmentLength, literalLength int64) (Unit, error) {
	if literalLength < 1 {
		return Unit{}, fmt.Errorf("%w: literal must not be empty", ErrInvalidInput)
	}
	if literalLength >= segmentLength {
		return Unit{}, fmt.Errorf("%w: literal length %d must be shorter than segment length %d", ErrInvalidInput, literalLength, segmentLength)
	}

	// smallest divisor >= literalLength, via divisor pairs. The linear scan
	// from literalLength upward is O(segmentLength) and unusable for the
	// multi-GiB segments this tool is pointed at.
	best := segmentLength
	for i := int64(1); i*i <= segmentLength; i++ {
		if segmentLength%i != 0 {
			continue
		}
		if i >= literalLength && i < best {
			best = i
		}
		if j := segmentLength / i; j >= literalLength && j < best {
			best = j
		}
	}
	return Unit{Length: best, Padding: best - literalLength}, nil
}

// Materialize writes segmentLength/unit.Length repetitions of
// literal+zero-padding to w and returns the exact byte count written.
func Materialize(w io.Writer, segmentLength int64, literal []byte) (int64, error) {
	unit, err := ComputeUnit(segmentLength, int64(len(literal)))
	if err != nil {
		return 0, err
	}

	units := segmentLength / unit.Length
	if unit.Length > bufTarget {
		// degenerate huge unit (e.g. prime segment): stream literal + zeros
		// instead of materializing the whole unit in memory
		return streamUnits(w, units, unit, literal)
	}

	// 단위 패턴을 버퍼에 여러 개 이어붙여서 write 호출 횟수를 줄임
	perChunk := bufTarget / unit.Length
	if perChunk > units {
		perChunk = units
	}
	chunk := make([]byte, perChunk*unit.Length)
	for u := int64(0); u < perChunk; u++ {
		copy(chunk[u*unit.Length:], literal)
	}

	var written int64
	for units > 0 {
		n := perChunk
		if units < n {
			n = units
		}
		nw, err := w.Write(chunk[:n*unit.Length])
		written += int64(nw)
		if err != nil {
			return written, err
		}
		units -= n
	}
	return written, nil
}

func streamUnits(w io.Writer, units int64, unit Unit, literal []byte) (int64, error) {
	zeros := make([]byte, bufTarget)
	var written int64
	for u := int64(0); u < units; u++ {
		nw, err := w.Write(literal)
		written += int64(nw)
		if err != nil {
			return written, err
		}
		for rem := unit.Padding; rem > 0; {
			n := rem
			if n > bufTarget {
				n = bufTarget
			}
			nw, err := w.Write(zeros[:n])
			written += int64(nw)
			if err != nil {
				return written, err
			}
			rem -= n
		}
	}
	return written, nil
}

const bufTarget = 1 << 20
