package fixedpool

import "unsafe"

// Scoped is a move-only claim on one checked-out block. Exactly one
// handle owns a block at a time; releasing the owning handle puts the
// block back on the pool's free list, exactly once. Handles are created
// by Pool.AllocArrayScoped and AllocScoped and must not be duplicated —
// two handles over one block would free it twice.
//
// A handle is either owning (holds a block) or released. Release and
// Move leave it released; both are safe to call on an already released
// handle.
type Scoped[T any] struct {
	pool     *Pool
	buf      []byte
	elemSize int
}

// Slice returns the typed view of the held block. For a handle from
// AllocScoped this is pool.ArrayLen() elements of T; for a Scoped[byte]
// from Pool.AllocArrayScoped it is the whole block. Returns nil when
// the handle is released, and the view must not be used after Release.
func (s *Scoped[T]) Slice() []T {
	if s.buf == nil {
		return nil
	}
	var zero T
	n := len(s.buf) / int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(&s.buf[0])), n)
}

// Release puts the held block back on the pool's free list, once.
// Calling it again, or on a moved-from handle, does nothing. Pair with
// defer at the allocation site so the block is returned on every exit
// path.
func (s *Scoped[T]) Release() {
	if s.buf == nil {
		return
	}
	s.pool.FreeArray(s.buf, s.elemSize)
	s.buf = nil
}

// Move transfers ownership of the block to a fresh handle and leaves s
// released. Moving an already released handle yields another released
// handle.
func (s *Scoped[T]) Move() *Scoped[T] {
	dst := &Scoped[T]{pool: s.pool, buf: s.buf, elemSize: s.elemSize}
	s.buf = nil
	return dst
}

// Released reports whether the handle no longer owns a block.
func (s *Scoped[T]) Released() bool {
	return s.buf == nil
}
