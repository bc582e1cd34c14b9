package vlc

import "time"

// MediaPlayer plays one media at a time. Playback control requests are
// forwarded to libvlc; completion of asynchronous requests (stop, state
// transitions) is observed through the player's EventManager, not through
// return values.
type MediaPlayer struct {
	h  *handle
	em emCache
}

// NewPlayer creates an empty media player. A NULL result is a hard
// construction failure for this kind.
func NewPlayer(inst *Instance) (*MediaPlayer, error) {
	ip, err := instancePtr(inst)
	if err != nil {
		return nil, err
	}
	ptr := libvlcMediaPlayerNew(ip)
	if ptr == 0 {
		return nil, createError("media player")
	}
	return &MediaPlayer{h: newHandle(ptr, libvlcMediaPlayerRelease)}, nil
}

// NewPlayerFromMedia creates a player for the given media. The player takes
// its own reference; the caller keeps ownership of m.
func NewPlayerFromMedia(m *Media) (*MediaPlayer, error) {
	if !m.IsValid() {
		return nil, ErrInvalidObject
	}
	ptr := libvlcMediaPlayerNewFromMedia(m.h.cptr())
	if ptr == 0 {
		return nil, createError("media player")
	}
	return &MediaPlayer{h: newHandle(ptr, libvlcMediaPlayerRelease)}, nil
}

// Close releases this owner's reference after detaching event attachments
// made through this wrapper.
func (p *MediaPlayer) Close() error {
	if p == nil {
		return nil
	}
	p.em.close()
	p.h.close()
	return nil
}

// IsValid reports whether the player holds a native object.
func (p *MediaPlayer) IsValid() bool {
	return p != nil && p.h.valid()
}

// Equal reports whether both wrappers refer to the same native player.
func (p *MediaPlayer) Equal(other *MediaPlayer) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.h.cptr() == other.h.cptr()
}

// SetMedia sets the media to play. The player takes its own reference; the
// caller keeps ownership of m.
func (p *MediaPlayer) SetMedia(m *Media) {
	if !p.IsValid() || !m.IsValid() {
		return
	}
	libvlcMediaPlayerSetMedia(p.h.cptr(), m.h.cptr())
}

// Media returns the media currently set, or nil when none is (tolerated
// empty, not an error). The native call transfers a fresh reference, adopted
// directly and owned by the caller.
func (p *MediaPlayer) Media() *Media {
	if !p.IsValid() {
		return nil
	}
	ptr := libvlcMediaPlayerGetMedia(p.h.cptr())
	if ptr == 0 {
		return nil
	}
	return wrapMedia(ptr)
}

// EventManager returns the player's event manager, created on first access
// and cached. It shares the player's lifetime.
func (p *MediaPlayer) EventManager() *EventManager {
	return p.em.get(func() uintptr {
		if !p.IsValid() {
			return 0
		}
		return libvlcMediaPlayerEventManager(p.h.cptr())
	})
}

// Play starts playback. Playback begins asynchronously; observe
// EventMediaPlayerPlaying for confirmation.
func (p *MediaPlayer) Play() error {
	if !p.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("play", libvlcMediaPlayerPlay(p.h.cptr()))
}

// Pause toggles pause.
func (p *MediaPlayer) Pause() {
	if !p.IsValid() {
		return
	}
	libvlcMediaPlayerPause(p.h.cptr())
}

// SetPause pauses or resumes playback explicitly.
func (p *MediaPlayer) SetPause(pause bool) {
	if !p.IsValid() {
		return
	}
	v := int32(0)
	if pause {
		v = 1
	}
	libvlcMediaPlayerSetPause(p.h.cptr(), v)
}

// Stop requests playback to stop. Fire-and-forget: completion is observed
// through EventMediaPlayerStopped.
func (p *MediaPlayer) Stop() {
	if !p.IsValid() {
		return
	}
	libvlcMediaPlayerStop(p.h.cptr())
}

// IsPlaying reports whether the player is currently playing.
func (p *MediaPlayer) IsPlaying() bool {
	if !p.IsValid() {
		return false
	}
	return libvlcMediaPlayerIsPlaying(p.h.cptr()) != 0
}

// WillPlay reports whether the player can start playing its current media.
func (p *MediaPlayer) WillPlay() bool {
	if !p.IsValid() {
		return false
	}
	return libvlcMediaPlayerWillPlay(p.h.cptr()) != 0
}

// State returns the player's current state.
func (p *MediaPlayer) State() State {
	if !p.IsValid() {
		return StateNothingSpecial
	}
	return State(libvlcMediaPlayerGetState(p.h.cptr()))
}

// Length returns the current media's length, or -1ms when unknown.
func (p *MediaPlayer) Length() time.Duration {
	if !p.IsValid() {
		return -time.Millisecond
	}
	return time.Duration(libvlcMediaPlayerGetLength(p.h.cptr())) * time.Millisecond
}

// Time returns the current playback time, or -1ms when unknown.
func (p *MediaPlayer) Time() time.Duration {
	if !p.IsValid() {
		return -time.Millisecond
	}
	return time.Duration(libvlcMediaPlayerGetTime(p.h.cptr())) * time.Millisecond
}

// SetTime seeks to the given playback time. Not all media are seekable.
func (p *MediaPlayer) SetTime(t time.Duration) {
	if !p.IsValid() {
		return
	}
	libvlcMediaPlayerSetTime(p.h.cptr(), t.Milliseconds())
}

// Position returns the playback position as a fraction in [0, 1].
func (p *MediaPlayer) Position() float32 {
	if !p.IsValid() {
		return -1
	}
	return libvlcMediaPlayerGetPosition(p.h.cptr())
}

// SetPosition seeks to a fractional position in [0, 1].
func (p *MediaPlayer) SetPosition(pos float32) {
	if !p.IsValid() {
		return
	}
	libvlcMediaPlayerSetPosition(p.h.cptr(), pos)
}

// Rate returns the requested playback rate.
func (p *MediaPlayer) Rate() float32 {
	if !p.IsValid() {
		return 0
	}
	return libvlcMediaPlayerGetRate(p.h.cptr())
}

// SetRate sets the playback rate. Depending on the media, the rate may not
// be honored.
func (p *MediaPlayer) SetRate(rate float32) error {
	if !p.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("set rate", libvlcMediaPlayerSetRate(p.h.cptr(), rate))
}

// Volume returns the software volume in percent, or -1 on error.
func (p *MediaPlayer) Volume() int {
	if !p.IsValid() {
		return -1
	}
	return int(libvlcAudioGetVolume(p.h.cptr()))
}

// SetVolume sets the software volume in percent.
func (p *MediaPlayer) SetVolume(volume int) error {
	if !p.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("set volume", libvlcAudioSetVolume(p.h.cptr(), int32(volume)))
}

// Mute reports the current mute status.
func (p *MediaPlayer) Mute() bool {
	if !p.IsValid() {
		return false
	}
	return libvlcAudioGetMute(p.h.cptr()) > 0
}

// SetMute sets the mute status.
func (p *MediaPlayer) SetMute(mute bool) {
	if !p.IsValid() {
		return
	}
	v := int32(0)
	if mute {
		v = 1
	}
	libvlcAudioSetMute(p.h.cptr(), v)
}

// AudioTrackDescriptions returns the selectable audio tracks of the current
// media. The native list is copied and released before returning; no current
// media yields an empty slice.
func (p *MediaPlayer) AudioTrackDescriptions() []TrackDescription {
	if !p.IsValid() {
		return []TrackDescription{}
	}
	return decodeTrackDescriptionList(libvlcAudioGetTrackDescription(p.h.cptr()))
}

// VideoTrackDescriptions returns the selectable video tracks of the current
// media.
func (p *MediaPlayer) VideoTrackDescriptions() []TrackDescription {
	if !p.IsValid() {
		return []TrackDescription{}
	}
	return decodeTrackDescriptionList(libvlcVideoGetTrackDescription(p.h.cptr()))
}

// SubtitleDescriptions returns the selectable subtitle tracks of the current
// media.
func (p *MediaPlayer) SubtitleDescriptions() []TrackDescription {
	if !p.IsValid() {
		return []TrackDescription{}
	}
	return decodeTrackDescriptionList(libvlcVideoGetSpuDescription(p.h.cptr()))
}
