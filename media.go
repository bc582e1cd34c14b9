package vlc

import (
	"runtime"
	"unsafe"
)

// State is the lifecycle state of a media or player.
type State int32

const (
	StateNothingSpecial State = iota
	StateOpening
	StateBuffering
	StatePlaying
	StatePaused
	StateStopped
	StateEnded
	StateError
)

func (s State) String() string {
	switch s {
	case StateNothingSpecial:
		return "idle"
	case StateOpening:
		return "opening"
	case StateBuffering:
		return "buffering"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateEnded:
		return "ended"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// MetaType selects one media metadata field.
type MetaType int32

const (
	MetaTitle MetaType = iota
	MetaArtist
	MetaGenre
	MetaCopyright
	MetaAlbum
	MetaTrackNumber
	MetaDescription
	MetaRating
	MetaDate
	MetaSetting
	MetaURL
	MetaLanguage
	MetaNowPlaying
	MetaPublisher
	MetaEncodedBy
	MetaArtworkURL
	MetaTrackID
	MetaTrackTotal
	MetaDirector
	MetaSeason
	MetaEpisode
	MetaShowName
	MetaActors
	MetaAlbumArtist
	MetaDiscNumber
	MetaDiscTotal
)

// Media is a media descriptor. Every constructor yields a wrapper owning one
// native reference; a NULL result from any media factory is a hard
// construction failure.
type Media struct {
	h  *handle
	em emCache
}

// newMedia runs one of the media factory functions taking a string argument.
func newMedia(inst *Instance, value string, factory func(inst, value uintptr) uintptr, kind string) (*Media, error) {
	ip, err := instancePtr(inst)
	if err != nil {
		return nil, err
	}
	cs := cString(value)
	ptr := factory(ip, cPtr(cs))
	runtime.KeepAlive(cs)
	if ptr == 0 {
		return nil, createError(kind)
	}
	return wrapMedia(ptr), nil
}

// NewMediaFromPath creates a media for a local file path.
func NewMediaFromPath(inst *Instance, path string) (*Media, error) {
	return newMedia(inst, path, func(i, v uintptr) uintptr { return libvlcMediaNewPath(i, v) }, "media from path")
}

// NewMediaFromURL creates a media from a media resource locator, e.g. a
// valid URL. Local files need the file:// syntax; prefer NewMediaFromPath
// for those.
func NewMediaFromURL(inst *Instance, mrl string) (*Media, error) {
	return newMedia(inst, mrl, func(i, v uintptr) uintptr { return libvlcMediaNewLocation(i, v) }, "media from location")
}

// NewMediaAsNode creates a media as an empty node with a name.
func NewMediaAsNode(inst *Instance, name string) (*Media, error) {
	return newMedia(inst, name, func(i, v uintptr) uintptr { return libvlcMediaNewAsNode(i, v) }, "media node")
}

// NewMediaFromFD creates a media for an already open file descriptor. The
// descriptor is never closed by libvlc.
func NewMediaFromFD(inst *Instance, fd int) (*Media, error) {
	ip, err := instancePtr(inst)
	if err != nil {
		return nil, err
	}
	ptr := libvlcMediaNewFD(ip, int32(fd))
	if ptr == 0 {
		return nil, createError("media from fd")
	}
	return wrapMedia(ptr), nil
}

// wrapMedia adopts a media pointer that already carries a fresh reference
// (create and duplicate entry points).
func wrapMedia(ptr uintptr) *Media {
	return &Media{h: newHandle(ptr, libvlcMediaRelease)}
}

// borrowedMedia wraps a media pointer obtained without an ownership transfer
// (event payloads). The pointer is retained first so this wrapper holds its
// own reference.
func borrowedMedia(ptr uintptr) *Media {
	return &Media{h: retainedHandle(ptr, libvlcMediaRetain, libvlcMediaRelease)}
}

// Duplicate returns an independent copy of the media descriptor. The native
// duplicate call transfers a fresh reference, adopted directly.
func (m *Media) Duplicate() (*Media, error) {
	if !m.IsValid() {
		return nil, ErrInvalidObject
	}
	ptr := libvlcMediaDuplicate(m.h.cptr())
	if ptr == 0 {
		return nil, createError("media duplicate")
	}
	return wrapMedia(ptr), nil
}

// Close releases this owner's reference. Event attachments made through this
// wrapper's EventManager are detached first.
func (m *Media) Close() error {
	if m == nil {
		return nil
	}
	m.em.close()
	m.h.close()
	return nil
}

// IsValid reports whether the media holds a native object.
func (m *Media) IsValid() bool {
	return m != nil && m.h.valid()
}

// Equal reports whether both wrappers refer to the same native media.
// Two distinct media with identical content are not equal.
func (m *Media) Equal(other *Media) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.h.cptr() == other.h.cptr()
}

// EventManager returns the media's event manager. It is created on first
// access and cached; later calls return the same instance. The manager shares
// the media's lifetime and must not be used after the last owner closes.
func (m *Media) EventManager() *EventManager {
	return m.em.get(func() uintptr {
		if !m.IsValid() {
			return 0
		}
		return libvlcMediaEventManager(m.h.cptr())
	})
}

// AddOption adds a per-media option controlling how the player reads this
// media. Most audio and video options have no effect here and must be set on
// the Instance instead.
func (m *Media) AddOption(options string) {
	if !m.IsValid() {
		return
	}
	cs := cString(options)
	libvlcMediaAddOption(m.h.cptr(), cPtr(cs))
	runtime.KeepAlive(cs)
}

// AddOptionFlags is AddOption with explicit option flags.
func (m *Media) AddOptionFlags(options string, flags uint32) {
	if !m.IsValid() {
		return
	}
	cs := cString(options)
	libvlcMediaAddOptionFlag(m.h.cptr(), cPtr(cs), flags)
	runtime.KeepAlive(cs)
}

// MRL returns the media resource locator.
func (m *Media) MRL() string {
	if !m.IsValid() {
		return ""
	}
	return goStringFree(libvlcMediaGetMRL(m.h.cptr()))
}

// Meta reads one metadata field. Returns "" until the media is parsed.
func (m *Media) Meta(meta MetaType) string {
	if !m.IsValid() {
		return ""
	}
	return goStringFree(libvlcMediaGetMeta(m.h.cptr(), int32(meta)))
}

// SetMeta writes one metadata field locally; SaveMeta persists it.
func (m *Media) SetMeta(meta MetaType, value string) {
	if !m.IsValid() {
		return
	}
	cs := cString(value)
	libvlcMediaSetMeta(m.h.cptr(), int32(meta), cPtr(cs))
	runtime.KeepAlive(cs)
}

// SaveMeta persists metadata previously set with SetMeta.
func (m *Media) SaveMeta() error {
	if !m.IsValid() {
		return ErrInvalidObject
	}
	if libvlcMediaSaveMeta(m.h.cptr()) != 0 {
		return nil
	}
	return statusErr("save meta", -1)
}

// State returns the media's current state.
func (m *Media) State() State {
	if !m.IsValid() {
		return StateNothingSpecial
	}
	return State(libvlcMediaGetState(m.h.cptr()))
}

// Stats returns the media's current statistics, or false when unavailable.
func (m *Media) Stats() (MediaStats, bool) {
	if !m.IsValid() {
		return MediaStats{}, false
	}
	// Heap-allocated out parameter; the GC may move the stack during the
	// native call.
	stats := new(cMediaStats)
	ok := libvlcMediaGetStats(m.h.cptr(), uintptr(unsafe.Pointer(stats))) != 0
	runtime.KeepAlive(stats)
	if !ok {
		return MediaStats{}, false
	}
	return decodeMediaStats(stats), true
}

// Duration returns the media duration in milliseconds, or -1 when unknown.
func (m *Media) Duration() int64 {
	if !m.IsValid() {
		return -1
	}
	return libvlcMediaGetDuration(m.h.cptr())
}

// Parse fetches local metadata and track information, synchronously.
func (m *Media) Parse() {
	if !m.IsValid() {
		return
	}
	libvlcMediaParse(m.h.cptr())
}

// ParseAsync is the asynchronous form of Parse. Completion is observed
// through EventMediaParsedChanged, which is not delivered if the media was
// already parsed.
func (m *Media) ParseAsync() {
	if !m.IsValid() {
		return
	}
	libvlcMediaParseAsync(m.h.cptr())
}

// IsParsed reports whether the media has been parsed.
func (m *Media) IsParsed() bool {
	if !m.IsValid() {
		return false
	}
	return libvlcMediaIsParsed(m.h.cptr()) != 0
}

// SetUserData attaches an opaque host value to the media descriptor.
func (m *Media) SetUserData(v uintptr) {
	if !m.IsValid() {
		return
	}
	libvlcMediaSetUserData(m.h.cptr(), v)
}

// UserData returns the value set with SetUserData.
func (m *Media) UserData() uintptr {
	if !m.IsValid() {
		return 0
	}
	return libvlcMediaGetUserData(m.h.cptr())
}

// Tracks returns the elementary stream descriptions of a parsed media. The
// native array is copied and released before returning; an unparsed media
// yields an empty slice.
func (m *Media) Tracks() []MediaTrack {
	out := []MediaTrack{}
	if !m.IsValid() {
		return out
	}
	// Heap-allocated out parameter, see Stats.
	head := new(uintptr)
	n := libvlcMediaTracksGet(m.h.cptr(), uintptr(unsafe.Pointer(head)))
	runtime.KeepAlive(head)
	if n == 0 || *head == 0 {
		return out
	}
	arr := *head
	for idx := uint32(0); idx < n; idx++ {
		p := *(*uintptr)(unsafe.Pointer(arr + uintptr(idx)*ptrSize))
		if p == 0 {
			continue
		}
		out = append(out, decodeMediaTrack(p))
	}
	libvlcMediaTracksRelease(arr, n)
	return out
}
