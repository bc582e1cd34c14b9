package vlc

import "runtime"

// MediaDiscoverer discovers media from a service (mDNS, UPnP, ...) by name.
type MediaDiscoverer struct {
	h  *handle
	em emCache
}

// NewMediaDiscoverer creates a discoverer for the named service. The service
// must be started with Start. An unknown service name makes the native
// create fail, which is a hard construction failure for this kind.
func NewMediaDiscoverer(inst *Instance, name string) (*MediaDiscoverer, error) {
	ip, err := instancePtr(inst)
	if err != nil {
		return nil, err
	}
	cs := cString(name)
	ptr := libvlcMediaDiscovererNew(ip, cPtr(cs))
	runtime.KeepAlive(cs)
	if ptr == 0 {
		return nil, createError("media discoverer")
	}
	return &MediaDiscoverer{h: newHandle(ptr, libvlcMediaDiscovererRelease)}, nil
}

// Close releases this owner's reference after detaching event attachments
// made through this wrapper. A running discovery is stopped by the native
// release.
func (d *MediaDiscoverer) Close() error {
	if d == nil {
		return nil
	}
	d.em.close()
	d.h.close()
	return nil
}

// IsValid reports whether the discoverer holds a native object.
func (d *MediaDiscoverer) IsValid() bool {
	return d != nil && d.h.valid()
}

// Start begins discovery. Results are observed through the media list and
// its events.
func (d *MediaDiscoverer) Start() error {
	if !d.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("discoverer start", libvlcMediaDiscovererStart(d.h.cptr()))
}

// Stop requests discovery to end. Fire-and-forget: completion is observed
// through EventMediaDiscovererEnded.
func (d *MediaDiscoverer) Stop() {
	if !d.IsValid() {
		return
	}
	libvlcMediaDiscovererStop(d.h.cptr())
}

// LocalizedName returns the service's localized name.
func (d *MediaDiscoverer) LocalizedName() string {
	if !d.IsValid() {
		return ""
	}
	return goStringFree(libvlcMediaDiscovererLocalizedName(d.h.cptr()))
}

// IsRunning reports whether discovery is in progress.
func (d *MediaDiscoverer) IsRunning() bool {
	if !d.IsValid() {
		return false
	}
	return libvlcMediaDiscovererIsRunning(d.h.cptr()) != 0
}

// MediaList returns the list collecting discovered media, or nil. The native
// call transfers a fresh reference, adopted directly and owned by the caller.
func (d *MediaDiscoverer) MediaList() *MediaList {
	if !d.IsValid() {
		return nil
	}
	ptr := libvlcMediaDiscovererMediaList(d.h.cptr())
	if ptr == 0 {
		return nil
	}
	return &MediaList{h: newHandle(ptr, libvlcMediaListRelease)}
}

// EventManager returns the discoverer's event manager, created on first
// access and cached. It shares the discoverer's lifetime.
func (d *MediaDiscoverer) EventManager() *EventManager {
	return d.em.get(func() uintptr {
		if !d.IsValid() {
			return 0
		}
		return libvlcMediaDiscovererEventManager(d.h.cptr())
	})
}
