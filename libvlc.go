// Native function table for libvlc. All entry points are package-level
// function variables bound at load time, so the ownership layer can be
// exercised against a fake library in tests.

package vlc

import (
	"sync"
	"sync/atomic"
)

var (
	vlcOnce    sync.Once
	vlcHandle  uintptr
	vlcInitErr error
	vlcLoaded  atomic.Bool
)

// Core instance functions.
var (
	libvlcNew        func(argc int32, argv uintptr) uintptr
	libvlcRelease    func(inst uintptr)
	libvlcErrMsg     func() uintptr
	libvlcFree       func(ptr uintptr)
	libvlcGetVersion func() uintptr
	libvlcAddIntf    func(inst uintptr, name uintptr) int32

	libvlcSetUserAgent   func(inst, name, http uintptr)
	libvlcSetAppID       func(inst, id, version, icon uintptr)
	libvlcSetExitHandler func(inst, cb, opaque uintptr)
	libvlcLogSet         func(inst, cb, data uintptr)
	libvlcLogUnset       func(inst uintptr)

	libvlcAudioFilterListGet           func(inst uintptr) uintptr
	libvlcVideoFilterListGet           func(inst uintptr) uintptr
	libvlcModuleDescriptionListRelease func(list uintptr)
	libvlcAudioOutputListGet           func(inst uintptr) uintptr
	libvlcAudioOutputListRelease       func(list uintptr)
	libvlcAudioOutputDeviceListGet     func(inst, aout uintptr) uintptr
	libvlcAudioOutputDeviceListRelease func(list uintptr)
)

// Media functions.
var (
	libvlcMediaNewPath     func(inst, path uintptr) uintptr
	libvlcMediaNewLocation func(inst, mrl uintptr) uintptr
	libvlcMediaNewAsNode   func(inst, name uintptr) uintptr
	libvlcMediaNewFD       func(inst uintptr, fd int32) uintptr
	libvlcMediaRelease     func(media uintptr)
	libvlcMediaRetain      func(media uintptr)
	libvlcMediaDuplicate   func(media uintptr) uintptr

	libvlcMediaAddOption     func(media, options uintptr)
	libvlcMediaAddOptionFlag func(media, options uintptr, flags uint32)
	libvlcMediaGetMRL        func(media uintptr) uintptr
	libvlcMediaGetMeta       func(media uintptr, meta int32) uintptr
	libvlcMediaSetMeta       func(media uintptr, meta int32, value uintptr)
	libvlcMediaSaveMeta      func(media uintptr) int32
	libvlcMediaGetState      func(media uintptr) int32
	libvlcMediaGetStats      func(media, stats uintptr) int32
	libvlcMediaGetDuration   func(media uintptr) int64
	libvlcMediaParse         func(media uintptr)
	libvlcMediaParseAsync    func(media uintptr)
	libvlcMediaIsParsed      func(media uintptr) int32
	libvlcMediaSetUserData   func(media, userData uintptr)
	libvlcMediaGetUserData   func(media uintptr) uintptr
	libvlcMediaTracksGet     func(media, tracks uintptr) uint32
	libvlcMediaTracksRelease func(tracks uintptr, count uint32)
	libvlcMediaEventManager  func(media uintptr) uintptr
)

// Media list functions.
var (
	libvlcMediaListNew          func(inst uintptr) uintptr
	libvlcMediaListRelease      func(list uintptr)
	libvlcMediaListAddMedia     func(list, media uintptr) int32
	libvlcMediaListInsertMedia  func(list, media uintptr, pos int32) int32
	libvlcMediaListRemoveIndex  func(list uintptr, pos int32) int32
	libvlcMediaListCount        func(list uintptr) int32
	libvlcMediaListItemAtIndex  func(list uintptr, pos int32) uintptr
	libvlcMediaListMedia        func(list uintptr) uintptr
	libvlcMediaListIsReadonly   func(list uintptr) int32
	libvlcMediaListLock         func(list uintptr)
	libvlcMediaListUnlock       func(list uintptr)
	libvlcMediaListEventManager func(list uintptr) uintptr
)

// Media player functions.
var (
	libvlcMediaPlayerNew          func(inst uintptr) uintptr
	libvlcMediaPlayerNewFromMedia func(media uintptr) uintptr
	libvlcMediaPlayerRelease      func(player uintptr)
	libvlcMediaPlayerSetMedia     func(player, media uintptr)
	libvlcMediaPlayerGetMedia     func(player uintptr) uintptr
	libvlcMediaPlayerPlay         func(player uintptr) int32
	libvlcMediaPlayerPause        func(player uintptr)
	libvlcMediaPlayerSetPause     func(player uintptr, pause int32)
	libvlcMediaPlayerStop         func(player uintptr)
	libvlcMediaPlayerIsPlaying    func(player uintptr) int32
	libvlcMediaPlayerWillPlay     func(player uintptr) int32
	libvlcMediaPlayerGetState     func(player uintptr) int32
	libvlcMediaPlayerGetLength    func(player uintptr) int64
	libvlcMediaPlayerGetTime      func(player uintptr) int64
	libvlcMediaPlayerSetTime      func(player uintptr, t int64)
	libvlcMediaPlayerGetPosition  func(player uintptr) float32
	libvlcMediaPlayerSetPosition  func(player uintptr, pos float32)
	libvlcMediaPlayerGetRate      func(player uintptr) float32
	libvlcMediaPlayerSetRate      func(player uintptr, rate float32) int32
	libvlcMediaPlayerEventManager func(player uintptr) uintptr

	libvlcAudioGetVolume func(player uintptr) int32
	libvlcAudioSetVolume func(player uintptr, volume int32) int32
	libvlcAudioGetMute   func(player uintptr) int32
	libvlcAudioSetMute   func(player uintptr, mute int32)

	libvlcAudioGetTrackDescription    func(player uintptr) uintptr
	libvlcVideoGetTrackDescription    func(player uintptr) uintptr
	libvlcVideoGetSpuDescription      func(player uintptr) uintptr
	libvlcTrackDescriptionListRelease func(list uintptr)
)

// Media discoverer functions.
var (
	libvlcMediaDiscovererNew           func(inst, name uintptr) uintptr
	libvlcMediaDiscovererRelease       func(disc uintptr)
	libvlcMediaDiscovererStart         func(disc uintptr) int32
	libvlcMediaDiscovererStop          func(disc uintptr)
	libvlcMediaDiscovererLocalizedName func(disc uintptr) uintptr
	libvlcMediaDiscovererIsRunning     func(disc uintptr) int32
	libvlcMediaDiscovererEventManager  func(disc uintptr) uintptr
	libvlcMediaDiscovererMediaList     func(disc uintptr) uintptr
)

// Event functions.
var (
	libvlcEventAttach func(em uintptr, eventType int32, cb, opaque uintptr) int32
	libvlcEventDetach func(em uintptr, eventType int32, cb, opaque uintptr)
)

// cVsnprintf formats log messages from the native va_list. Bound from libc;
// optional, the raw format string is used when unavailable.
var cVsnprintf func(buf uintptr, size uintptr, format uintptr, args uintptr) int32

// loadVLC loads libvlc and binds all symbols, once. The atomic store happens
// after symbol registration, so a caller taking the fast path is guaranteed to
// observe the bound function table.
func loadVLC() error {
	if vlcLoaded.Load() {
		return nil
	}
	vlcOnce.Do(func() {
		vlcInitErr = loadVLCLib()
		if vlcInitErr == nil {
			vlcLoaded.Store(true)
		}
	})
	return vlcInitErr
}

// IsAvailable checks if libvlc can be loaded.
func IsAvailable() bool {
	return loadVLC() == nil
}

// Version returns the libvlc version string (e.g. "3.0.20 Vetinari").
func Version() (string, error) {
	if err := loadVLC(); err != nil {
		return "", err
	}
	return goString(libvlcGetVersion()), nil
}
