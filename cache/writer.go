package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/numcodec/compress"
	"github.com/arloliu/numcodec/format"
	"github.com/arloliu/numcodec/internal/hash"
	"github.com/arloliu/numcodec/internal/options"
	"github.com/arloliu/numcodec/internal/pool"
)

const (
	// segmentHeaderSize is the framed header preceding each segment
	// payload: compression type (1), compressed length (4), raw length (4),
	// xxHash64 of the compressed payload (8).
	segmentHeaderSize = 1 + 4 + 4 + 8

	// DefaultSegmentSize is the raw byte span of one segment unless
	// overridden with WithSegmentSize.
	DefaultSegmentSize = 64 * 1024
)

// Frame metadata is always little-endian, independent of the value engine
// used by the numeric codecs.
var frameOrder = binary.LittleEndian

type blockWriterConfig struct {
	segmentSize int
	compression format.CompressionType
}

// BlockWriterOption is a functional option for configuring a BlockWriter.
type BlockWriterOption = options.Option[*blockWriterConfig]

// WithSegmentSize sets the raw byte span of each segment.
func WithSegmentSize(n int) BlockWriterOption {
	return options.New(func(cfg *blockWriterConfig) error {
		if n <= 0 {
			return fmt.Errorf("segment size must be positive, got %d", n)
		}
		cfg.segmentSize = n

		return nil
	})
}

// WithCompression sets the compression applied to each segment payload.
//
// The default is Zstd. Segments that do not shrink under the configured
// compression are stored raw regardless of this setting.
func WithCompression(typ format.CompressionType) BlockWriterOption {
	return options.New(func(cfg *blockWriterConfig) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return err
		}
		cfg.compression = typ

		return nil
	})
}

// BlockWriter frames a flat byte stream into compressed, checksummed
// segments. It implements io.WriteCloser; Close flushes the tail segment.
//
// A BlockWriter is not safe for concurrent use.
type BlockWriter struct {
	w           io.Writer
	codec       compress.Codec
	compression format.CompressionType
	segmentSize int
	buf         *pool.ByteBuffer
	closed      bool
}

// NewBlockWriter creates a BlockWriter emitting framed segments to w.
func NewBlockWriter(w io.Writer, opts ...BlockWriterOption) (*BlockWriter, error) {
	cfg := &blockWriterConfig{
		segmentSize: DefaultSegmentSize,
		compression: format.CompressionZstd,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &BlockWriter{
		w:           w,
		codec:       codec,
		compression: cfg.compression,
		segmentSize: cfg.segmentSize,
		buf:         pool.GetBlockBuffer(),
	}, nil
}

// Write buffers p, emitting a framed segment for every full segment span.
func (bw *BlockWriter) Write(p []byte) (int, error) {
	if bw.closed {
		return 0, errors.New("write on closed BlockWriter")
	}

	bw.buf.MustWrite(p)
	for bw.buf.Len() >= bw.segmentSize {
		if err := bw.emit(bw.buf.B[:bw.segmentSize]); err != nil {
			return 0, err
		}
		remain := copy(bw.buf.B, bw.buf.B[bw.segmentSize:])
		bw.buf.SetLength(remain)
	}

	return len(p), nil
}

// Flush emits the buffered tail as a final short segment. It is a no-op
// when nothing is buffered.
func (bw *BlockWriter) Flush() error {
	if bw.closed {
		return errors.New("flush on closed BlockWriter")
	}
	if bw.buf.Len() == 0 {
		return nil
	}

	err := bw.emit(bw.buf.B)
	bw.buf.Reset()

	return err
}

// Close flushes the tail segment and releases the internal buffer. The
// underlying writer is not closed.
func (bw *BlockWriter) Close() error {
	if bw.closed {
		return nil
	}

	err := bw.Flush()
	bw.closed = true
	pool.PutBlockBuffer(bw.buf)
	bw.buf = nil

	return err
}

// emit frames and writes one segment of raw bytes. When compression does
// not shrink the payload the segment is stored raw under CompressionNone,
// which also covers incompressible input that the LZ4 block codec refuses
// to encode.
func (bw *BlockWriter) emit(raw []byte) error {
	compression := bw.compression
	payload := raw

	if compression != format.CompressionNone {
		comp, err := bw.codec.Compress(raw)
		if err != nil {
			return fmt.Errorf("compress segment: %w", err)
		}
		if len(comp) > 0 && len(comp) < len(raw) {
			payload = comp
		} else {
			compression = format.CompressionNone
		}
	}

	var hdr [segmentHeaderSize]byte
	hdr[0] = byte(compression)
	frameOrder.PutUint32(hdr[1:5], uint32(len(payload)))
	frameOrder.PutUint32(hdr[5:9], uint32(len(raw)))
	frameOrder.PutUint64(hdr[9:17], hash.Sum(payload))

	if _, err := bw.w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := bw.w.Write(payload); err != nil {
		return err
	}

	return nil
}
