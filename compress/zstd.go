package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// supported codecs. Use it when envelopes are stored or shipped over
// constrained links and the extra CPU is acceptable.
//
// Two implementations back this type: valyala/gozstd when cgo is available,
// and klauspost/compress/zstd as the pure-Go fallback. Both produce standard
// zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
