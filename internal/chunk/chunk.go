package chunk

import "iter"

type Chunk[T any] struct {
	Index int
	Start int
	End   int
	Items []T
}

// Chunks yields consecutive groups of size items. The last chunk is shorter
// when len(items) is not a multiple of size; callers that need complete
// groups check len(c.Items). The sequence can be ranged over repeatedly.
// A non-positive size yields nothing.
func Chunks[T any](items []T, size int) iter.Seq[Chunk[T]] {
	return func(yield func(Chunk[T]) bool) {
		if size <= 0 {
			return
		}

		n := len(items)
		chunkIndex := 0
		for i := 0; i < n; i += size {
			end := min(i+size, n)
			c := Chunk[T]{
				Index: chunkIndex,
				Start: i,
				End:   end,
				Items: items[i:end:end],
			}
			if !yield(c) {
				return
			}
			chunkIndex++
		}
	}
}
