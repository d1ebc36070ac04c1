package gen

// Bytes generates a []byte of length governed by size (defaults: Min=0, Max=32).
// It reuses SliceOf's block-removal/isolated-removal/local-shrink strategy by
// generating bytes through Uint8 and converting the resulting []uint8.
func Bytes(size Size) Generator[[]byte] {
	return Map(SliceOf(Uint8(Size{Min: 0, Max: 255}), size), func(bs []uint8) []byte {
		out := make([]byte, len(bs))
		for i, b := range bs {
			out[i] = byte(b)
		}
		return out
	})
}
