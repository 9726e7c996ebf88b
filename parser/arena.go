package parser

// miniArena is a typed bump allocator that hands out pointers into
// pre-allocated chunks of T. When a chunk is used up, a new one is allocated
// at 1.5x the previous size. Earlier chunks stay reachable through the nodes
// that point into them.
type miniArena[T any] struct {
	chunk []T
	size  int
}

func newArena[T any](size int) miniArena[T] {
	return miniArena[T]{size: size}
}

func (a *miniArena[T]) make() *T {
	if len(a.chunk) == 0 {
		a.grow()
	}
	n := &a.chunk[0]
	a.chunk = a.chunk[1:]
	return n
}

//go:noinline
func (a *miniArena[T]) grow() {
	if a.size < 16 {
		a.size = 16
	} else {
		a.size += a.size >> 1 // 1.5x growth, integer math
	}
	a.chunk = make([]T, a.size)
}
