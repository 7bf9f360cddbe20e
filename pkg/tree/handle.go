package tree

import "sync/atomic"

// Handle is a shared, atomically reference-counted owning pointer to a
// Node, the copy-on-write primitive that lets two trees share structure
// until one of them mutates. Cloning a Handle is O(1) (bumps the
// refcount); mutating through a Handle requires unique ownership, obtained
// via MakeMut, which deep-clones the pointee the first time the handle is
// shared and is a no-op once it is unique again.
//
// Go's GC reclaims memory on its own, so the refcount here exists purely
// to answer "am I shared?", not to decide when to free.
type Handle[T any] struct {
	ptr  *T
	refs *atomic.Int32
}

// NewHandle wraps v in a fresh, uniquely-owned Handle.
func NewHandle[T any](v *T) Handle[T] {
	r := &atomic.Int32{}
	r.Store(1)
	return Handle[T]{ptr: v, refs: r}
}

// Clone returns a new handle sharing the same pointee, bumping the
// refcount. O(1), no allocation of T.
func (h Handle[T]) Clone() Handle[T] {
	if h.refs != nil {
		h.refs.Add(1)
	}
	return h
}

// Get returns the shared, read-only pointee. Callers must not mutate
// through the returned pointer unless they have first called MakeMut.
func (h Handle[T]) Get() *T {
	return h.ptr
}

// IsUnique reports whether this handle is the only owner of its pointee.
func (h Handle[T]) IsUnique() bool {
	return h.refs == nil || h.refs.Load() == 1
}

// MakeMut returns a pointer that is safe to mutate in place. If the handle
// is uniquely owned, it returns the existing pointee directly (O(1)). If
// the pointee is shared, it deep-clones it via clone, installs the clone
// as this handle's new pointee with a fresh refcount of 1, and decrements
// the old shared refcount — so further mutation through *h is isolated
// from whoever else still holds the original handle.
func (h *Handle[T]) MakeMut(clone func(*T) *T) *T {
	if h.IsUnique() {
		return h.ptr
	}
	h.refs.Add(-1)
	cloned := clone(h.ptr)
	r := &atomic.Int32{}
	r.Store(1)
	h.ptr = cloned
	h.refs = r
	return h.ptr
}
