package vlc

import (
	"sync/atomic"
)

// releaseFunc drops one native reference. Every libvlc object kind has its own
// release entry point; the pairing is fixed when the handle is created and
// never changes for the life of the ownership group.
type releaseFunc func(ptr uintptr)

// retainFunc acquires an additional native reference.
type retainFunc func(ptr uintptr)

// handle is one member of an ownership group: the set of wrappers sharing a
// single native reference. Members created with clone share the refs counter;
// whichever member drops it to zero invokes the release function, exactly once
// for the whole group. A handle with a zero pointer is empty: valid to hold
// and close, never released.
type handle struct {
	ptr     uintptr
	release releaseFunc
	refs    *atomic.Int32
	closed  atomic.Bool
}

// newHandle adopts an already-acquired native reference. Only pointers
// returned by native calls that transfer ownership (create and duplicate
// entry points) may be passed here; adopting a borrowed pointer leads to a
// double release. A zero ptr yields an empty handle, which is well-defined
// and not an error.
func newHandle(ptr uintptr, release releaseFunc) *handle {
	h := &handle{ptr: ptr, release: release, refs: new(atomic.Int32)}
	h.refs.Store(1)
	return h
}

// retainedHandle adopts a pointer that arrived without an ownership transfer
// (container extractions, event payloads). The native retain runs before the
// handle takes ownership so the group's eventual release stays balanced.
// Wrapping the same borrowed pointer twice is safe: each wrapper holds its
// own native reference.
func retainedHandle(ptr uintptr, retain retainFunc, release releaseFunc) *handle {
	if ptr != 0 && retain != nil {
		retain(ptr)
	}
	return newHandle(ptr, release)
}

// valid reports whether the handle holds a native pointer.
func (h *handle) valid() bool {
	return h != nil && h.ptr != 0
}

// clone joins the ownership group. O(1), no native call.
func (h *handle) clone() *handle {
	if h == nil {
		return nil
	}
	h.refs.Add(1)
	return &handle{ptr: h.ptr, release: h.release, refs: h.refs}
}

// cptr exposes the native pointer for library calls. Ownership is neither
// transferred nor duplicated; the pointer must not outlive the group.
func (h *handle) cptr() uintptr {
	if h == nil {
		return 0
	}
	return h.ptr
}

// close leaves the ownership group. Repeated calls on the same member are
// no-ops; the member that empties the group invokes the native release.
func (h *handle) close() {
	if h == nil || !h.closed.CompareAndSwap(false, true) {
		return
	}
	if h.refs.Add(-1) == 0 && h.ptr != 0 && h.release != nil {
		h.release(h.ptr)
	}
}
