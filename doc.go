// Package fixedpool implements a pooling allocator for same-length
// arrays.
//
// # Overview
//
// A fixed-array pool is useful when arrays of one shared length are
// allocated and freed over and over, with only the element size varying
// per call site. Because every block holds the same number of elements,
// a single small integer (the element byte size) identifies a block's
// length, and freed blocks can be recycled through exact-fit per-size
// free lists instead of going back to the general-purpose allocator.
// This is particularly useful for:
//
//   - Per-call-site temporary buffers in a hot evaluation loop
//   - Batch processing where every batch has the same element count
//   - Reducing garbage collection pressure from short-lived arrays
//
// # Basic Usage
//
//	pool, err := fixedpool.New(1024) // every array holds 1024 elements
//	if err != nil {
//		return err
//	}
//	defer pool.Release() // Clean up when done
//
//	// Allocate and free raw blocks (element size in bytes)
//	buf := pool.AllocArray(8)
//	pool.FreeArray(buf, 8)
//
//	// Allocate typed arrays
//	floats := fixedpool.Alloc[float64](pool)
//	fixedpool.Free(pool, floats)
//
// Freed blocks are reused in LIFO order: the most recently freed block
// of a size is the next one handed out, which keeps hot-loop reuse in
// cache.
//
// # Scoped Allocations
//
// A Scoped handle ties a block to a scope so it is returned on every
// exit path, exactly once:
//
//	tmp := fixedpool.AllocScoped[float32](pool)
//	defer tmp.Release()
//	process(tmp.Slice())
//
// Handles are move-only: Move transfers ownership and leaves the source
// released, so the source's deferred Release does nothing.
//
// # Thread Safety
//
// Pool is not goroutine-safe. Use one pool per goroutine or worker, or
// guard all pool operations with external locking.
//
// # Checked Mode
//
// FreeArray's contract (block came from this pool, same element size,
// not already free) is not validated by default. Pools built with
// WithChecked record per-block state and panic on violations; use it in
// debug builds and tests.
//
// # Performance Characteristics
//
//   - AllocArray with a matching free block: O(1), no allocation
//   - AllocArray cold path: one memory-system allocation
//   - FreeArray: O(1), never touches the memory system
//   - Release: O(blocks owned)
//
// # Important Notes
//
//   - Every block is aligned to Alignment (64 bytes)
//   - Reused blocks are not zeroed
//   - Blocks and handles are only valid while their pool exists; the
//     pool does not detect pointers that outlive it
//   - Freeing a block twice, at the wrong size, or into the wrong pool
//     is undefined behavior unless WithChecked is on
package fixedpool
