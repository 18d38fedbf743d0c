package tensor

// Rank-generic windowing over one dimension, shared by the narrow and
// chunk operations of every element kind. Expressed purely through a
// slice primitive so any backend's implementation applies.

type sliceFunc func(t *RawTensor, ranges []Range) *RawTensor

// narrow extracts [start, start+length) of dim via the slice primitive.
func narrow(shape Shape, dim, start, length int, t *RawTensor, slice sliceFunc) *RawTensor {
	checkDim("narrow", dim, shape.Rank())
	if start < 0 || length < 0 || start+length > shape[dim] {
		Errf("narrow", ErrOutOfRange,
			"window [%d, %d) exceeds extent %d of dimension %d", start, start+length, shape[dim], dim)
	}

	ranges := shape.FullRanges()
	ranges[dim] = Range{Start: start, End: start + length}
	return slice(t, ranges)
}

// chunk splits dim into sub-tensors of as-equal-as-possible size. When the
// extent does not divide evenly, every chunk but the last gets the ceiling
// size and the last gets the remainder, so fewer than the requested number
// of chunks may be produced.
func chunk(shape Shape, chunks, dim int, t *RawTensor, slice sliceFunc) []*RawTensor {
	if chunks < 1 {
		Errf("chunk", ErrInvalidArgument, "chunk count must be >= 1, got %d", chunks)
	}
	checkDim("chunk", dim, shape.Rank())

	size := shape[dim]
	chunkSize := size / chunks
	if size%chunks != 0 {
		chunkSize++
	}

	var out []*RawTensor
	for start := 0; start < size; start += chunkSize {
		length := chunkSize
		if start+length > size {
			length = size - start
		}
		out = append(out, narrow(shape, dim, start, length, t.Clone(), slice))
	}
	t.Release()
	return out
}
