package pattern

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// VerifyFile checks that the file at path is exactly segmentLength bytes of
// whole unit repetitions (literal + zero padding). The file is mmapped
// read-only so multi-GiB segments are verified without heap copies.
func VerifyFile(path string, segmentLength int64, literal []byte) error {
	unit, err := ComputeUnit(segmentLength, int64(len(literal)))
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.Size() != segmentLength {
		return fmt.Errorf("%w: file is %d bytes, want %d", ErrVerification, st.Size(), segmentLength)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer m.Unmap()

	// unit 길이만큼의 비교 버퍼를 만들지 않는다 (degenerate unit은 수 GiB).
	zeros := make([]byte, zeroCmpChunk)
	lit := int64(len(literal))
	for off := int64(0); off < segmentLength; off += unit.Length {
		if !bytes.Equal(m[off:off+lit], literal) {
			return fmt.Errorf("%w: unit at offset %d does not match pattern", ErrVerification, off)
		}
		for p := off + lit; p < off+unit.Length; {
			n := off + unit.Length - p
			if n > zeroCmpChunk {
				n = zeroCmpChunk
			}
			if !bytes.Equal(m[p:p+n], zeros[:n]) {
				return fmt.Errorf("%w: unit at offset %d does not match pattern", ErrVerification, off)
			}
			p += n
		}
	}
	return nil
}

const zeroCmpChunk = 1 << 20
