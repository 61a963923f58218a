package fixedpool

import "unsafe"

// Alloc returns an array of p.ArrayLen() elements of type T backed by a
// pool block. A reused block keeps its previous contents; use clear on
// the slice when zeroed memory is needed.
//
// Panics for zero-size element types (the element size contract is
// sizeof(T) > 0).
func Alloc[T any](p *Pool) []T {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := p.AllocArray(elemSize)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), p.arrayLen)
}

// Free returns an array obtained from Alloc to the pool's free list for
// sizeof(T). The slice must not be used afterwards.
func Free[T any](p *Pool, s []T) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*elemSize)
	p.FreeArray(b, elemSize)
}

// AllocScoped allocates like Alloc and binds the block to a handle that
// frees it on Release. Pair with defer.
func AllocScoped[T any](p *Pool) *Scoped[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	return &Scoped[T]{pool: p, buf: p.AllocArray(elemSize), elemSize: elemSize}
}
