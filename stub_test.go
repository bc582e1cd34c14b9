package vlc

// Test doubles for the native library. The function table is swapped per
// test and restored via t.Cleanup; fakeVLC tracks reference counts per fake
// object and fails the test on unbalanced or unknown releases.

import (
	"sync"
	"testing"
)

// swap replaces *p for the duration of the test.
func swap[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

// stubLoaded marks the native library as loaded so constructors skip the
// real dlopen.
func stubLoaded(t *testing.T) {
	t.Helper()
	old := vlcLoaded.Load()
	vlcLoaded.Store(true)
	t.Cleanup(func() { vlcLoaded.Store(old) })
}

type fakeObject struct {
	kind     string
	refs     int
	retains  int
	releases int
}

type fakeVLC struct {
	t       *testing.T
	mu      sync.Mutex
	next    uintptr
	objects map[uintptr]*fakeObject
}

func newFakeVLC(t *testing.T) *fakeVLC {
	t.Helper()
	stubLoaded(t)
	// Wrapper Close detaches leftover event attachments during cleanup, after
	// the test body's own stubs are already restored.
	swap(t, &libvlcEventDetach, func(_ uintptr, _ int32, _, _ uintptr) {})
	return &fakeVLC{t: t, next: 0x1000, objects: map[uintptr]*fakeObject{}}
}

// create allocates a fake native object with one reference, as a native
// create/duplicate entry point would.
func (f *fakeVLC) create(kind string) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next += 16
	p := f.next
	f.objects[p] = &fakeObject{kind: kind, refs: 1}
	return p
}

func (f *fakeVLC) retain(p uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.objects[p]
	if o == nil {
		f.t.Errorf("retain of unknown pointer %#x", p)
		return
	}
	o.refs++
	o.retains++
}

func (f *fakeVLC) release(p uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.objects[p]
	if o == nil {
		f.t.Errorf("release of unknown pointer %#x", p)
		return
	}
	if o.refs <= 0 {
		f.t.Errorf("double release of %s %#x", o.kind, p)
		return
	}
	o.refs--
	o.releases++
}

func (f *fakeVLC) refs(p uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o := f.objects[p]; o != nil {
		return o.refs
	}
	return -1
}

func (f *fakeVLC) retains(p uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o := f.objects[p]; o != nil {
		return o.retains
	}
	return -1
}

func (f *fakeVLC) releases(p uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o := f.objects[p]; o != nil {
		return o.releases
	}
	return -1
}

// newTestInstance builds an Instance backed by the fake library.
func newTestInstance(t *testing.T, f *fakeVLC) *Instance {
	t.Helper()
	swap(t, &libvlcNew, func(argc int32, argv uintptr) uintptr { return f.create("instance") })
	swap(t, &libvlcRelease, f.release)
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })
	// Close uninstalls any leftover callbacks during cleanup, after the test
	// body's own stubs are already restored.
	swap(t, &libvlcLogSet, func(_, _, _ uintptr) {})
	swap(t, &libvlcLogUnset, func(uintptr) {})
	swap(t, &libvlcSetExitHandler, func(_, _, _ uintptr) {})
	inst, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { inst.Close() })
	return inst
}

// newTestMedia builds a Media backed by the fake library.
func newTestMedia(t *testing.T, f *fakeVLC, inst *Instance) *Media {
	t.Helper()
	swap(t, &libvlcMediaNewPath, func(i, path uintptr) uintptr { return f.create("media") })
	swap(t, &libvlcMediaRelease, f.release)
	swap(t, &libvlcMediaRetain, f.retain)
	m, err := NewMediaFromPath(inst, "/tmp/test.mp4")
	if err != nil {
		t.Fatalf("NewMediaFromPath() error = %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}
