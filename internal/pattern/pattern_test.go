package pattern

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeUnitNoPadding(t *testing.T) {
	// 12 % 2 == 0, so "ab" tiles with no padding
	unit, err := ComputeUnit(12, 2)
	require.NoError(t, err)
	assert.Equal(t, Unit{Length: 2, Padding: 0}, unit)
}

func TestComputeUnitWithPadding(t *testing.T) {
	// divisors of 10 that fit "abc": 5 and 10 → smallest is 5
	unit, err := ComputeUnit(10, 3)
	require.NoError(t, err)
	assert.Equal(t, Unit{Length: 5, Padding: 2}, unit)
}

func TestComputeUnitDegenerate(t *testing.T) {
	// 13 is prime: the only divisor >= 2 is 13, literal occurs once
	unit, err := ComputeUnit(13, 2)
	require.NoError(t, err)
	assert.Equal(t, Unit{Length: 13, Padding: 11}, unit)

	// literal one byte shorter than the segment
	unit, err = ComputeUnit(14, 13)
	require.NoError(t, err)
	assert.Equal(t, Unit{Length: 14, Padding: 1}, unit)
}

func TestComputeUnitDeterministic(t *testing.T) {
	a, err := ComputeUnit(720, 7)
	require.NoError(t, err)
	b, err := ComputeUnit(720, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// 최소성: ComputeUnit 결과보다 작은 약수 중 literal 이상인 것이 없어야 함
func TestComputeUnitSmallest(t *testing.T) {
	for _, seg := range []int64{12, 60, 4096, 3 * 5 * 7 * 11, 1 << 16} {
		for _, lit := range []int64{1, 2, 3, 5, 9} {
			if lit >= seg {
				continue
			}
			unit, err := ComputeUnit(seg, lit)
			require.NoError(t, err)
			assert.Zero(t, seg%unit.Length)
			assert.GreaterOrEqual(t, unit.Length, lit)
			for d := lit; d < unit.Length; d++ {
				assert.NotZero(t, seg%d, "seg=%d lit=%d: smaller divisor %d missed", seg, lit, d)
			}
		}
	}
}

func TestComputeUnitRejectsBadLiteral(t *testing.T) {
	_, err := ComputeUnit(10, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeUnit(10, 10)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeUnit(10, 11)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaterializeNoPadding(t *testing.T) {
	var buf bytes.Buffer
	n, err := Materialize(&buf, 12, []byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Equal(t, "abababababab", buf.String())
}

func TestMaterializeWithPadding(t *testing.T) {
	var buf bytes.Buffer
	n, err := Materialize(&buf, 10, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, []byte("abc\x00\x00abc\x00\x00"), buf.Bytes())
}

func TestMaterializeEveryChunkMatches(t *testing.T) {
	literal := []byte("pattern!")
	segment := int64(8 * 1024)

	var buf bytes.Buffer
	n, err := Materialize(&buf, segment, literal)
	require.NoError(t, err)
	require.Equal(t, segment, n)
	require.Equal(t, segment, int64(buf.Len()))

	unit, err := ComputeUnit(segment, int64(len(literal)))
	require.NoError(t, err)

	want := make([]byte, unit.Length)
	copy(want, literal)
	out := buf.Bytes()
	for off := int64(0); off < segment; off += unit.Length {
		require.Equal(t, want, out[off:off+unit.Length], "chunk at %d", off)
	}
}

// 버퍼 한 번에 안 들어가는 큰 단위도 정확한 길이를 내야 함
func TestMaterializeLargeUnit(t *testing.T) {
	literal := bytes.Repeat([]byte{'x'}, 3)
	segment := int64(6 << 20) // unit stays small, many chunks

	var buf bytes.Buffer
	n, err := Materialize(&buf, segment, literal)
	require.NoError(t, err)
	assert.Equal(t, segment, n)
	assert.Equal(t, segment, int64(buf.Len()))
}

type failingWriter struct{ allow int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, assert.AnError
	}
	if len(p) > w.allow {
		n := w.allow
		w.allow = 0
		return n, assert.AnError
	}
	w.allow -= len(p)
	return len(p), nil
}

func TestMaterializePropagatesWriteError(t *testing.T) {
	n, err := Materialize(&failingWriter{allow: 4}, 1<<20, []byte("ab"))
	require.Error(t, err)
	assert.Less(t, n, int64(1<<20))
}
