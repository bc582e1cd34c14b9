package vlc

import (
	"errors"
	"runtime"
)

// Instance is a libvlc instance. It adopts the fresh reference returned by
// libvlc_new and releases it through libvlc_release when the last owner
// closes.
type Instance struct {
	h    *handle
	log  logSlot
	exit exitSlot
}

// New creates and initializes a libvlc instance. args are passed to libvlc
// the way VLC's own command line would be; invalid arguments make the native
// create fail. A NULL result is a hard construction failure for this kind.
func New(args ...string) (*Instance, error) {
	if err := loadVLC(); err != nil {
		return nil, err
	}
	argv, pinned := cStringArray(args)
	ptr := libvlcNew(int32(len(args)), argv)
	runtime.KeepAlive(pinned)
	if ptr == 0 {
		return nil, createError("instance")
	}
	return &Instance{h: newHandle(ptr, libvlcRelease)}, nil
}

// Close releases this owner's reference. Installed log and exit callbacks are
// uninstalled first, draining any in-flight invocation. Safe to call more
// than once.
func (i *Instance) Close() error {
	if i == nil {
		return nil
	}
	if i.h.valid() {
		i.UnsetLogHandler()
		i.exit.mu.Lock()
		hasExit := i.exit.id != 0
		i.exit.mu.Unlock()
		if hasExit {
			i.SetExitHandler(nil)
		}
	}
	i.h.close()
	return nil
}

// IsValid reports whether the instance holds a native object.
func (i *Instance) IsValid() bool {
	return i != nil && i.h.valid()
}

// Equal reports whether both wrappers refer to the same native instance.
// Equality is pointer identity, never structural.
func (i *Instance) Equal(other *Instance) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.h.cptr() == other.h.cptr()
}

// AddInterface tries to start a user interface for the instance.
func (i *Instance) AddInterface(name string) error {
	if !i.IsValid() {
		return ErrInvalidObject
	}
	cs := cString(name)
	status := libvlcAddIntf(i.h.cptr(), cPtr(cs))
	runtime.KeepAlive(cs)
	return statusErr("add interface", status)
}

// SetUserAgent sets the application name and HTTP user agent libvlc presents
// when a protocol requires it.
func (i *Instance) SetUserAgent(name, http string) {
	if !i.IsValid() {
		return
	}
	cn, ch := cString(name), cString(http)
	libvlcSetUserAgent(i.h.cptr(), cPtr(cn), cPtr(ch))
	runtime.KeepAlive(cn)
	runtime.KeepAlive(ch)
}

// SetAppID sets application metadata: a Java-style identifier, a version
// string and an icon name.
func (i *Instance) SetAppID(id, version, icon string) {
	if !i.IsValid() {
		return
	}
	ci, cv, cc := cString(id), cString(version), cString(icon)
	libvlcSetAppID(i.h.cptr(), cPtr(ci), cPtr(cv), cPtr(cc))
	runtime.KeepAlive(ci)
	runtime.KeepAlive(cv)
	runtime.KeepAlive(cc)
}

// AudioFilterList returns the available audio filter modules.
func (i *Instance) AudioFilterList() []ModuleDescription {
	if !i.IsValid() {
		return []ModuleDescription{}
	}
	return decodeModuleList(libvlcAudioFilterListGet(i.h.cptr()))
}

// VideoFilterList returns the available video filter modules.
func (i *Instance) VideoFilterList() []ModuleDescription {
	if !i.IsValid() {
		return []ModuleDescription{}
	}
	return decodeModuleList(libvlcVideoFilterListGet(i.h.cptr()))
}

// AudioOutputList returns the available audio output modules.
func (i *Instance) AudioOutputList() []AudioOutput {
	if !i.IsValid() {
		return []AudioOutput{}
	}
	return decodeAudioOutputList(libvlcAudioOutputListGet(i.h.cptr()))
}

// AudioOutputDeviceList returns the devices of the named audio output module.
// An empty list does not imply the output is unusable.
func (i *Instance) AudioOutputDeviceList(aout string) []AudioOutputDevice {
	if !i.IsValid() {
		return []AudioOutputDevice{}
	}
	cs := cString(aout)
	head := libvlcAudioOutputDeviceListGet(i.h.cptr(), cPtr(cs))
	runtime.KeepAlive(cs)
	return decodeAudioOutputDeviceList(head)
}

var errNilInstance = errors.New("vlc: instance is required")

// instancePtr validates the instance argument shared by the factory
// functions in this package.
func instancePtr(i *Instance) (uintptr, error) {
	if i == nil || !i.h.valid() {
		return 0, errNilInstance
	}
	return i.h.cptr(), nil
}
