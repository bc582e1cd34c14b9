package vlc

import (
	"errors"
	"testing"
	"time"
	"unsafe"
)

func newTestPlayer(t *testing.T, f *fakeVLC, inst *Instance) *MediaPlayer {
	t.Helper()
	swap(t, &libvlcMediaPlayerNew, func(uintptr) uintptr { return f.create("media_player") })
	swap(t, &libvlcMediaPlayerRelease, f.release)
	p, err := NewPlayer(inst)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestNewPlayer_FailureIsHard(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)

	swap(t, &libvlcMediaPlayerNew, func(uintptr) uintptr { return 0 })
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })

	p, err := NewPlayer(inst)
	if p != nil {
		t.Fatal("player produced despite NULL create")
	}
	if !errors.Is(err, ErrCreation) {
		t.Fatalf("error = %v, want ErrCreation", err)
	}
}

func TestNewPlayerFromMedia_CallerKeepsMedia(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	m := newTestMedia(t, f, inst)

	var gotMedia uintptr
	swap(t, &libvlcMediaPlayerNewFromMedia, func(media uintptr) uintptr {
		gotMedia = media
		return f.create("media_player")
	})
	swap(t, &libvlcMediaPlayerRelease, f.release)

	p, err := NewPlayerFromMedia(m)
	if err != nil {
		t.Fatalf("NewPlayerFromMedia() error = %v", err)
	}
	defer p.Close()

	if gotMedia != m.h.cptr() {
		t.Errorf("media argument = %#x, want %#x", gotMedia, m.h.cptr())
	}
	// The wrapper's media reference is untouched; closing the media stays
	// the caller's job.
	if got := f.refs(m.h.cptr()); got != 1 {
		t.Errorf("media refs = %d, want 1", got)
	}
}

func TestPlayerMedia_AdoptsTransferredReference(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)
	m := newTestMedia(t, f, inst)
	ptr := m.h.cptr()

	// libvlc_media_player_get_media retains before returning, so the wrapper
	// adopts the reference without a second retain.
	swap(t, &libvlcMediaPlayerGetMedia, func(uintptr) uintptr {
		f.retain(ptr)
		return ptr
	})

	got := p.Media()
	if got == nil || !got.Equal(m) {
		t.Fatal("Media() did not return the set media")
	}
	if r := f.refs(ptr); r != 2 {
		t.Fatalf("refs = %d, want 2", r)
	}
	got.Close()
	if r := f.refs(ptr); r != 1 {
		t.Errorf("refs after close = %d, want 1", r)
	}
}

func TestPlayerMedia_EmptyIsNil(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	swap(t, &libvlcMediaPlayerGetMedia, func(uintptr) uintptr { return 0 })
	if got := p.Media(); got != nil {
		t.Error("Media() != nil for a player with no media set")
	}
}

func TestPlayerPlay_SurfacesStatus(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	swap(t, &libvlcMediaPlayerPlay, func(uintptr) int32 { return -1 })
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })
	if err := p.Play(); err == nil {
		t.Error("failed play returned nil error")
	}

	swap(t, &libvlcMediaPlayerPlay, func(uintptr) int32 { return 0 })
	if err := p.Play(); err != nil {
		t.Errorf("Play() error = %v", err)
	}
}

func TestPlayerStop_FireAndForget(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	stops := 0
	swap(t, &libvlcMediaPlayerStop, func(uintptr) { stops++ })
	p.Stop()
	if stops != 1 {
		t.Errorf("stop called %d times, want 1", stops)
	}
}

func TestPlayerTimeAndPosition(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	var setMS int64
	swap(t, &libvlcMediaPlayerGetTime, func(uintptr) int64 { return 90500 })
	swap(t, &libvlcMediaPlayerSetTime, func(_ uintptr, t int64) { setMS = t })
	swap(t, &libvlcMediaPlayerGetLength, func(uintptr) int64 { return 181000 })
	swap(t, &libvlcMediaPlayerGetPosition, func(uintptr) float32 { return 0.5 })

	if got := p.Time(); got != 90500*time.Millisecond {
		t.Errorf("Time() = %v", got)
	}
	if got := p.Length(); got != 181*time.Second {
		t.Errorf("Length() = %v", got)
	}
	p.SetTime(2 * time.Minute)
	if setMS != 120000 {
		t.Errorf("set time = %d ms, want 120000", setMS)
	}
	if got := p.Position(); got != 0.5 {
		t.Errorf("Position() = %v", got)
	}
}

func TestPlayerTimeUnknownSentinel(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	// Native -1 scales to -1ms; the invalid-wrapper path must agree so
	// callers compare against a single unknown sentinel.
	swap(t, &libvlcMediaPlayerGetTime, func(uintptr) int64 { return -1 })
	swap(t, &libvlcMediaPlayerGetLength, func(uintptr) int64 { return -1 })
	if got := p.Time(); got != -time.Millisecond {
		t.Errorf("Time() = %v, want -1ms", got)
	}
	if got := p.Length(); got != -time.Millisecond {
		t.Errorf("Length() = %v, want -1ms", got)
	}

	var none *MediaPlayer
	if got := none.Time(); got != -time.Millisecond {
		t.Errorf("nil player Time() = %v, want -1ms", got)
	}
	if got := none.Length(); got != -time.Millisecond {
		t.Errorf("nil player Length() = %v, want -1ms", got)
	}
}

func TestPlayerVolumeAndMute(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	volume := int32(80)
	muted := int32(0)
	swap(t, &libvlcAudioGetVolume, func(uintptr) int32 { return volume })
	swap(t, &libvlcAudioSetVolume, func(_ uintptr, v int32) int32 {
		if v < 0 {
			return -1
		}
		volume = v
		return 0
	})
	swap(t, &libvlcAudioGetMute, func(uintptr) int32 { return muted })
	swap(t, &libvlcAudioSetMute, func(_ uintptr, m int32) { muted = m })

	if got := p.Volume(); got != 80 {
		t.Errorf("Volume() = %d", got)
	}
	if err := p.SetVolume(50); err != nil {
		t.Errorf("SetVolume() error = %v", err)
	}
	if volume != 50 {
		t.Errorf("volume = %d, want 50", volume)
	}
	swap(t, &libvlcErrMsg, func() uintptr { return 0 })
	if err := p.SetVolume(-5); err == nil {
		t.Error("rejected volume returned nil error")
	}

	if p.Mute() {
		t.Error("Mute() = true before muting")
	}
	p.SetMute(true)
	if muted != 1 {
		t.Errorf("mute = %d, want 1", muted)
	}
}

func TestPlayerStateQueries(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	swap(t, &libvlcMediaPlayerGetState, func(uintptr) int32 { return int32(StateBuffering) })
	swap(t, &libvlcMediaPlayerIsPlaying, func(uintptr) int32 { return 1 })
	swap(t, &libvlcMediaPlayerWillPlay, func(uintptr) int32 { return 1 })

	if got := p.State(); got != StateBuffering {
		t.Errorf("State() = %v", got)
	}
	if !p.IsPlaying() {
		t.Error("IsPlaying() = false")
	}
	if !p.WillPlay() {
		t.Error("WillPlay() = false")
	}
}

func TestPlayerAudioTrackDescriptions(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	names := []*byte{cString("Stereo"), cString("Commentary")}
	nodes := make([]cTrackDescription, 2)
	nodes[1] = cTrackDescription{id: 2, name: cPtr(names[1])}
	nodes[0] = cTrackDescription{id: 1, name: cPtr(names[0]), next: uintptr(unsafe.Pointer(&nodes[1]))}
	head := uintptr(unsafe.Pointer(&nodes[0]))

	var releasedHead uintptr
	swap(t, &libvlcAudioGetTrackDescription, func(uintptr) uintptr { return head })
	swap(t, &libvlcTrackDescriptionListRelease, func(p uintptr) { releasedHead = p })

	got := p.AudioTrackDescriptions()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 1 || got[0].Name != "Stereo" {
		t.Errorf("first track = %+v", got[0])
	}
	if got[1].ID != 2 || got[1].Name != "Commentary" {
		t.Errorf("second track = %+v", got[1])
	}
	if releasedHead != head {
		t.Errorf("list release called with %#x, want %#x", releasedHead, head)
	}
}

func TestPlayerEventManagerLazyCache(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)

	calls := 0
	swap(t, &libvlcMediaPlayerEventManager, func(uintptr) uintptr {
		calls++
		return 0xE700
	})

	if p.EventManager() != p.EventManager() {
		t.Error("EventManager() returned distinct instances")
	}
	if calls != 1 {
		t.Errorf("native accessor called %d times, want 1", calls)
	}
}

func TestPlayerReleaseOnce(t *testing.T) {
	f := newFakeVLC(t)
	inst := newTestInstance(t, f)
	p := newTestPlayer(t, f, inst)
	ptr := p.h.cptr()

	p.Close()
	p.Close()
	if got := f.releases(ptr); got != 1 {
		t.Errorf("releases = %d, want 1", got)
	}
}
