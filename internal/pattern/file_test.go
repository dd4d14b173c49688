package pattern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileProducesExactSegment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.bin")
	literal := []byte("hello")
	segment := int64(4096) // divisors >= 5: 8 → unit 8, pad 3

	require.NoError(t, WriteFile(path, segment, literal))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, segment, int64(len(data)))

	unit, err := ComputeUnit(segment, int64(len(literal)))
	require.NoError(t, err)
	assert.Equal(t, Unit{Length: 8, Padding: 3}, unit)

	want := make([]byte, unit.Length)
	copy(want, literal)
	for off := int64(0); off < segment; off += unit.Length {
		require.Equal(t, want, data[off:off+unit.Length], "unit at %d", off)
	}
}

func TestWriteFileOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segment.bin")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	require.NoError(t, WriteFile(path, 64, []byte("ab")))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(64), st.Size())

	// no stray temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileRejectsBadLiteral(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segment.bin")

	err := WriteFile(path, 8, []byte("way too long"))
	require.ErrorIs(t, err, ErrInvalidInput)

	// 실패 시 최종 경로에 아무것도 남지 않아야 함
	_, serr := os.Stat(path)
	assert.True(t, os.IsNotExist(serr))
	entries, err2 := os.ReadDir(dir)
	require.NoError(t, err2)
	assert.Empty(t, entries)
}

func TestVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.bin")
	literal := []byte("abc")
	segment := int64(10)

	require.NoError(t, WriteFile(path, segment, literal))
	require.NoError(t, VerifyFile(path, segment, literal))

	// flip one padding byte and verification must fail with the offset
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[8] = 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))
	err = VerifyFile(path, segment, literal)
	require.ErrorIs(t, err, ErrVerification)
	assert.Contains(t, err.Error(), "offset 5")
}

func TestVerifyFileLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segment.bin")
	require.NoError(t, os.WriteFile(path, []byte("abab"), 0o644))

	err := VerifyFile(path, 8, []byte("ab"))
	require.ErrorIs(t, err, ErrVerification)
}
