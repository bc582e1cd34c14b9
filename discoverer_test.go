package vlc

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"
)

func newTestDiscoverer(t *testing.T, f *fakeVLC, inst *Instance) *MediaDiscoverer {
	t.Helper()
	swap(t, &libvlcMediaDiscovererNew, func(_, _ uintptr) uintptr { return f.create("media_discoverer") })
	swap(t, &libvlcMediaDiscovererRelease, f.release)
	d, err := NewMediaDiscoverer(inst, "upnp")
	if err != nil {
		t.Fatalf("NewMediaDiscoverer() error = %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestNewMediaDiscoverer_FailureIsHard(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)

	swap(t, &libvlcMediaDiscovererNew, func(_, _ uintptr) uintptr { return 0 })
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })

	d, err := NewMediaDiscoverer(inst, "no-such-service")
	if d != nil {
		t.Fatal("discoverer produced despite NULL create")
	}
	if !errors.Is(err, ErrCreation) {
		t.Fatalf("error = %v, want ErrCreation", err)
	}
}

func TestNewMediaDiscoverer_MarshalsServiceName(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)

	var gotName string
	swap(t, &libvlcMediaDiscovererNew, func(_, name uintptr) uintptr {
		gotName = goString(name)
		return f.create("media_discoverer")
	})
	swap(t, &libvlcMediaDiscovererRelease, f.release)

	d, err := NewMediaDiscoverer(inst, "mdns")
	if err != nil {
		t.Fatalf("NewMediaDiscoverer() error = %v", err)
	}
	defer d.Close()
	if gotName != "mdns" {
		t.Errorf("service name argument = %q", gotName)
	}
}

func TestDiscovererStart_SurfacesStatus(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)

	swap(t, &libvlcMediaDiscovererStart, func(uintptr) int32 { return -1 })
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })
	if err := d.Start(); err == nil {
		t.Error("failed start returned nil error")
	}

	swap(t, &libvlcMediaDiscovererStart, func(uintptr) int32 { return 0 })
	if err := d.Start(); err != nil {
		t.Errorf("Start() error = %v", err)
	}
}

func TestDiscovererStop_FireAndForget(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)

	stops := 0
	swap(t, &libvlcMediaDiscovererStop, func(uintptr) { stops++ })
	d.Stop()
	if stops != 1 {
		t.Errorf("stop called %d times, want 1", stops)
	}
}

func TestDiscovererLocalizedName_FreesNativeString(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)

	name := cString("Universal Plug'n'Play")
	var freed uintptr
	swap(t, &libvlcMediaDiscovererLocalizedName, func(uintptr) uintptr { return cPtr(name) })
	swap(t, &libvlcFree, func(p uintptr) { freed = p })

	got := d.LocalizedName()
	runtime.KeepAlive(name)
	if got != "Universal Plug'n'Play" {
		t.Errorf("LocalizedName() = %q", got)
	}
	if freed != cPtr(name) {
		t.Errorf("libvlc_free called with %#x, want %#x", freed, cPtr(name))
	}
}

func TestDiscovererMediaList_AdoptsTransferredReference(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)

	listPtr := f.create("media_list")
	swap(t, &libvlcMediaDiscovererMediaList, func(uintptr) uintptr {
		f.retain(listPtr)
		return listPtr
	})
	swap(t, &libvlcMediaListRelease, f.release)

	l := d.MediaList()
	if l == nil {
		t.Fatal("MediaList() = nil")
	}
	if r := f.refs(listPtr); r != 2 {
		t.Fatalf("list refs = %d, want 2", r)
	}
	l.Close()
	if r := f.refs(listPtr); r != 1 {
		t.Errorf("list refs after close = %d, want 1", r)
	}
}

func TestDiscovererIsRunning(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)

	running := int32(0)
	swap(t, &libvlcMediaDiscovererIsRunning, func(uintptr) int32 { return running })
	if d.IsRunning() {
		t.Error("IsRunning() = true before start")
	}
	running = 1
	if !d.IsRunning() {
		t.Error("IsRunning() = false after start")
	}
}

func TestDiscovererEvents(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)
	swap(t, &libvlcMediaDiscovererEventManager, func(uintptr) uintptr { return 0xE800 })
	attached, _ := stubEventFuncs(t)

	var got []EventType
	for _, et := range []EventType{EventMediaDiscovererStarted, EventMediaDiscovererEnded} {
		if _, err := d.EventManager().Attach(et, func(e Event) { got = append(got, e.Type) }); err != nil {
			t.Fatalf("Attach(%v) error = %v", et, err)
		}
	}

	dispatchEvent(uintptr(unsafe.Pointer(makeEvent(EventMediaDiscovererStarted))), (*attached)[0].opaque)
	dispatchEvent(uintptr(unsafe.Pointer(makeEvent(EventMediaDiscovererEnded))), (*attached)[1].opaque)

	if len(got) != 2 || got[0] != EventMediaDiscovererStarted || got[1] != EventMediaDiscovererEnded {
		t.Errorf("dispatched events = %v", got)
	}
}

func TestDiscovererReleaseOnce(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	d := newTestDiscoverer(t, f, inst)
	ptr := d.h.cptr()

	d.Close()
	d.Close()
	if got := f.releases(ptr); got != 1 {
		t.Errorf("releases = %d, want 1", got)
	}
}
