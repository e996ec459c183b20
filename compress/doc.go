// Package compress provides the compression codecs used for cached block
// segments.
//
// Compression is applied per segment when a flat binary column block is
// written through cache.BlockWriter, and reversed on demand by
// cache.SegmentReader. Four algorithms are supported:
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType through GetCodec or
// CreateCodec. All built-in codecs are stateless values, safe for
// concurrent use; internal encoder/decoder state is pooled.
//
// Two Zstd implementations exist: a cgo build uses valyala/gozstd, the
// pure-Go build falls back to klauspost/compress/zstd. Both produce
// interoperable Zstandard frames.
package compress
