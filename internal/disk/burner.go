package disk

import (
	"context"
	"io"
	"os"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Burner streams a fixed-length source file to a raw target over and over,
// for consumers that read the device to end-of-stream and start again. Each
// cycle restarts from byte 0 of the source; the first failed copy is terminal
// (no backoff, no mid-file resume).
type Burner struct {
	Source    string
	Target    string
	BlockSize int64 // write granularity; source length must be a multiple
	Direct    bool  // open target with O_DIRECT (real devices)
	MaxCycles int64 // stop after this many cycles; 0 = run until failure or cancel
	Log       *zap.Logger
}

const burnChunkBlocks = 256 // blocks per write call

// Run loops until the context is cancelled or a copy fails. Returns the
// number of fully completed cycles.
func (b Burner) Run(ctx context.Context) (int64, error) {
	if b.BlockSize <= 0 {
		return 0, errors.Errorf("block size must be positive, got %d", b.BlockSize)
	}
	st, err := os.Stat(b.Source)
	if err != nil {
		return 0, errors.Wrap(err, "stat source")
	}
	if st.Size() == 0 || st.Size()%b.BlockSize != 0 {
		return 0, errors.Errorf("source length %d is not a positive multiple of block size %d", st.Size(), b.BlockSize)
	}

	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}

	var cycles int64
	for b.MaxCycles == 0 || cycles < b.MaxCycles {
		select {
		case <-ctx.Done():
			log.Info("burn loop stopped", zap.Int64("cycles", cycles))
			return cycles, nil
		default:
		}

		start := time.Now()
		n, err := b.cycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("burn loop interrupted", zap.Int64("cycles", cycles))
				return cycles, nil
			}
			return cycles, errors.Wrapf(err, "burn cycle %d", cycles+1)
		}
		cycles++
		elapsed := time.Since(start)
		log.Info("cycle complete",
			zap.Int64("cycle", cycles),
			zap.String("written", humanize.IBytes(uint64(n))),
			zap.Duration("took", elapsed),
		)
	}
	log.Info("burn loop finished", zap.Int64("cycles", cycles))
	return cycles, nil
}

func (b Burner) cycle(ctx context.Context) (int64, error) {
	src, err := os.Open(b.Source)
	if err != nil {
		return 0, errors.Wrap(err, "open source")
	}
	defer src.Close()

	out, err := openTarget(b.Target, b.Direct)
	if err != nil {
		return 0, errors.Wrap(err, "open target")
	}
	defer out.Close()

	buf := alignedBuf(burnChunkBlocks*b.BlockSize, b.BlockSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, rerr := io.ReadFull(src, buf)
		if n > 0 {
			// source length is a block multiple, so every write stays aligned
			nw, werr := out.Write(buf[:n])
			total += int64(nw)
			if werr != nil {
				return total, errors.Wrap(werr, "write target")
			}
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return total, errors.Wrap(rerr, "read source")
		}
	}
	if err := out.Sync(); err != nil {
		return total, errors.Wrap(err, "sync target")
	}
	return total, nil
}

// O_DIRECT rejects buffers that are not sector-aligned in memory, so carve an
// aligned window out of an oversized allocation.
func alignedBuf(size, align int64) []byte {
	raw := make([]byte, size+align)
	off := int64(0)
	if rem := int64(uintptr(unsafe.Pointer(&raw[0]))) % align; rem != 0 {
		off = align - rem
	}
	return raw[off : off+size]
}
