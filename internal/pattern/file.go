package pattern

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile materializes the pattern into path. The segment is staged as a
// temp file in the destination directory and renamed into place only after a
// successful sync and size check, so a failed run never leaves a partial file
// at the final path.
func WriteFile(path string, segmentLength int64, literal []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp_*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	written, werr := Materialize(tmp, segmentLength, literal)
	if werr != nil {
		tmp.Close()
		return werr
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if written != segmentLength {
		return fmt.Errorf("%w: wrote %d bytes, want %d", ErrVerification, written, segmentLength)
	}
	st, err := os.Stat(tmpPath)
	if err != nil {
		return err
	}
	if st.Size() != segmentLength {
		return fmt.Errorf("%w: file is %d bytes, want %d", ErrVerification, st.Size(), segmentLength)
	}
	return os.Rename(tmpPath, path)
}
