// Value structs decoded from native libvlc containers. Native lists are
// walked exactly once, strings are deep-copied, and the container is handed
// back to its dedicated release function before returning.

package vlc

import (
	"unsafe"
)

// ModuleDescription describes an available libvlc module (filter, interface).
type ModuleDescription struct {
	Name      string
	ShortName string
	LongName  string
	Help      string
}

// AudioOutput describes an available audio output module.
type AudioOutput struct {
	Name        string
	Description string
}

// AudioOutputDevice describes an audio output device of a given module.
type AudioOutputDevice struct {
	Device      string
	Description string
}

// TrackDescription describes one selectable player track (audio, video or
// subtitle).
type TrackDescription struct {
	ID   int
	Name string
}

// MediaTrackType identifies the kind of an elementary stream.
type MediaTrackType int32

const (
	MediaTrackUnknown MediaTrackType = iota - 1
	MediaTrackAudio
	MediaTrackVideo
	MediaTrackText
)

func (t MediaTrackType) String() string {
	switch t {
	case MediaTrackAudio:
		return "audio"
	case MediaTrackVideo:
		return "video"
	case MediaTrackText:
		return "text"
	default:
		return "unknown"
	}
}

// AudioTrack carries the audio-specific part of a MediaTrack.
type AudioTrack struct {
	Channels uint32
	Rate     uint32
}

// VideoTrack carries the video-specific part of a MediaTrack.
type VideoTrack struct {
	Height       uint32
	Width        uint32
	SarNum       uint32
	SarDen       uint32
	FrameRateNum uint32
	FrameRateDen uint32
}

// SubtitleTrack carries the subtitle-specific part of a MediaTrack.
type SubtitleTrack struct {
	Encoding string
}

// MediaTrack describes one elementary stream of a parsed media.
type MediaTrack struct {
	Codec          uint32
	OriginalFourCC uint32
	ID             int32
	Type           MediaTrackType
	Profile        int32
	Level          int32
	Bitrate        uint32
	Language       string
	Description    string

	// Exactly one of these is set, according to Type.
	Audio    *AudioTrack
	Video    *VideoTrack
	Subtitle *SubtitleTrack
}

// MediaStats reports the current input/demux/output statistics of a media.
type MediaStats struct {
	ReadBytes          int
	InputBitrate       float32
	DemuxReadBytes     int
	DemuxBitrate       float32
	DemuxCorrupted     int
	DemuxDiscontinuity int
	DecodedVideo       int
	DecodedAudio       int
	DisplayedPictures  int
	LostPictures       int
	PlayedABuffers     int
	LostABuffers       int
	SentPackets        int
	SentBytes          int
	SendBitrate        float32
}

// Native layout mirrors, 64-bit. Field order and padding must match the
// libvlc headers exactly; these are read through unsafe.Pointer.

type cModuleDescription struct {
	name      uintptr
	shortname uintptr
	longname  uintptr
	help      uintptr
	next      uintptr
}

type cAudioOutput struct {
	name        uintptr
	description uintptr
	next        uintptr
}

// libvlc_audio_output_device_t has its next pointer first.
type cAudioOutputDevice struct {
	next        uintptr
	device      uintptr
	description uintptr
}

type cTrackDescription struct {
	id   int32
	_    int32
	name uintptr
	next uintptr
}

type cMediaTrack struct {
	codec          uint32
	originalFourCC uint32
	id             int32
	trackType      int32
	profile        int32
	level          int32
	union          uintptr
	bitrate        uint32
	_              uint32
	language       uintptr
	description    uintptr
}

type cAudioTrack struct {
	channels uint32
	rate     uint32
}

type cVideoTrack struct {
	height       uint32
	width        uint32
	sarNum       uint32
	sarDen       uint32
	frameRateNum uint32
	frameRateDen uint32
}

type cSubtitleTrack struct {
	encoding uintptr
}

type cMediaStats struct {
	readBytes          int32
	inputBitrate       float32
	demuxReadBytes     int32
	demuxBitrate       float32
	demuxCorrupted     int32
	demuxDiscontinuity int32
	decodedVideo       int32
	decodedAudio       int32
	displayedPictures  int32
	lostPictures       int32
	playedABuffers     int32
	lostABuffers       int32
	sentPackets        int32
	sentBytes          int32
	sendBitrate        float32
}

// decodeModuleList walks a module description list and releases it. A zero
// head yields an empty, non-nil slice.
func decodeModuleList(head uintptr) []ModuleDescription {
	out := []ModuleDescription{}
	if head == 0 {
		return out
	}
	for p := head; p != 0; {
		c := (*cModuleDescription)(unsafe.Pointer(p))
		out = append(out, ModuleDescription{
			Name:      goString(c.name),
			ShortName: goString(c.shortname),
			LongName:  goString(c.longname),
			Help:      goString(c.help),
		})
		p = c.next
	}
	libvlcModuleDescriptionListRelease(head)
	return out
}

func decodeAudioOutputList(head uintptr) []AudioOutput {
	out := []AudioOutput{}
	if head == 0 {
		return out
	}
	for p := head; p != 0; {
		c := (*cAudioOutput)(unsafe.Pointer(p))
		out = append(out, AudioOutput{
			Name:        goString(c.name),
			Description: goString(c.description),
		})
		p = c.next
	}
	libvlcAudioOutputListRelease(head)
	return out
}

func decodeAudioOutputDeviceList(head uintptr) []AudioOutputDevice {
	out := []AudioOutputDevice{}
	if head == 0 {
		return out
	}
	for p := head; p != 0; {
		c := (*cAudioOutputDevice)(unsafe.Pointer(p))
		out = append(out, AudioOutputDevice{
			Device:      goString(c.device),
			Description: goString(c.description),
		})
		p = c.next
	}
	libvlcAudioOutputDeviceListRelease(head)
	return out
}

func decodeTrackDescriptionList(head uintptr) []TrackDescription {
	out := []TrackDescription{}
	if head == 0 {
		return out
	}
	for p := head; p != 0; {
		c := (*cTrackDescription)(unsafe.Pointer(p))
		out = append(out, TrackDescription{
			ID:   int(c.id),
			Name: goString(c.name),
		})
		p = c.next
	}
	libvlcTrackDescriptionListRelease(head)
	return out
}

func decodeMediaTrack(p uintptr) MediaTrack {
	c := (*cMediaTrack)(unsafe.Pointer(p))
	t := MediaTrack{
		Codec:          c.codec,
		OriginalFourCC: c.originalFourCC,
		ID:             c.id,
		Type:           MediaTrackType(c.trackType),
		Profile:        c.profile,
		Level:          c.level,
		Bitrate:        c.bitrate,
		Language:       goString(c.language),
		Description:    goString(c.description),
	}
	if c.union == 0 {
		return t
	}
	switch t.Type {
	case MediaTrackAudio:
		a := (*cAudioTrack)(unsafe.Pointer(c.union))
		t.Audio = &AudioTrack{Channels: a.channels, Rate: a.rate}
	case MediaTrackVideo:
		v := (*cVideoTrack)(unsafe.Pointer(c.union))
		t.Video = &VideoTrack{
			Height:       v.height,
			Width:        v.width,
			SarNum:       v.sarNum,
			SarDen:       v.sarDen,
			FrameRateNum: v.frameRateNum,
			FrameRateDen: v.frameRateDen,
		}
	case MediaTrackText:
		s := (*cSubtitleTrack)(unsafe.Pointer(c.union))
		t.Subtitle = &SubtitleTrack{Encoding: goString(s.encoding)}
	}
	return t
}

func decodeMediaStats(c *cMediaStats) MediaStats {
	return MediaStats{
		ReadBytes:          int(c.readBytes),
		InputBitrate:       c.inputBitrate,
		DemuxReadBytes:     int(c.demuxReadBytes),
		DemuxBitrate:       c.demuxBitrate,
		DemuxCorrupted:     int(c.demuxCorrupted),
		DemuxDiscontinuity: int(c.demuxDiscontinuity),
		DecodedVideo:       int(c.decodedVideo),
		DecodedAudio:       int(c.decodedAudio),
		DisplayedPictures:  int(c.displayedPictures),
		LostPictures:       int(c.lostPictures),
		PlayedABuffers:     int(c.playedABuffers),
		LostABuffers:       int(c.lostABuffers),
		SentPackets:        int(c.sentPackets),
		SentBytes:          int(c.sentBytes),
		SendBitrate:        c.sendBitrate,
	}
}
