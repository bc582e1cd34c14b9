package vlc

// MediaList is a list of media descriptors. List mutation requires holding
// the list lock; libvlc enforces this internally, so Lock/Unlock are exposed
// as-is.
type MediaList struct {
	h  *handle
	em emCache
}

// NewMediaList creates an empty media list. A NULL result is a hard
// construction failure for this kind.
func NewMediaList(inst *Instance) (*MediaList, error) {
	ip, err := instancePtr(inst)
	if err != nil {
		return nil, err
	}
	ptr := libvlcMediaListNew(ip)
	if ptr == 0 {
		return nil, createError("media list")
	}
	return &MediaList{h: newHandle(ptr, libvlcMediaListRelease)}, nil
}

// Close releases this owner's reference after detaching event attachments
// made through this wrapper.
func (l *MediaList) Close() error {
	if l == nil {
		return nil
	}
	l.em.close()
	l.h.close()
	return nil
}

// IsValid reports whether the list holds a native object.
func (l *MediaList) IsValid() bool {
	return l != nil && l.h.valid()
}

// Equal reports whether both wrappers refer to the same native list.
func (l *MediaList) Equal(other *MediaList) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.h.cptr() == other.h.cptr()
}

// Lock acquires the native list lock. Required around mutation.
func (l *MediaList) Lock() {
	if !l.IsValid() {
		return
	}
	libvlcMediaListLock(l.h.cptr())
}

// Unlock releases the native list lock.
func (l *MediaList) Unlock() {
	if !l.IsValid() {
		return
	}
	libvlcMediaListUnlock(l.h.cptr())
}

// Add appends a media to the list. The caller must hold the list lock. The
// list takes its own reference; the caller keeps ownership of m.
func (l *MediaList) Add(m *Media) error {
	if !l.IsValid() || !m.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("media list add", libvlcMediaListAddMedia(l.h.cptr(), m.h.cptr()))
}

// Insert inserts a media at the given position. The caller must hold the
// list lock.
func (l *MediaList) Insert(m *Media, pos int) error {
	if !l.IsValid() || !m.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("media list insert", libvlcMediaListInsertMedia(l.h.cptr(), m.h.cptr(), int32(pos)))
}

// RemoveAt removes the media at the given position. The caller must hold the
// list lock.
func (l *MediaList) RemoveAt(pos int) error {
	if !l.IsValid() {
		return ErrInvalidObject
	}
	return statusErr("media list remove", libvlcMediaListRemoveIndex(l.h.cptr(), int32(pos)))
}

// Count returns the number of items. The caller must hold the list lock.
func (l *MediaList) Count() int {
	if !l.IsValid() {
		return 0
	}
	return int(libvlcMediaListCount(l.h.cptr()))
}

// MediaAt returns the media at the given position, or nil when out of range.
// The native call transfers a fresh reference (it retains the item before
// returning), so the result is adopted directly and owned by the caller.
func (l *MediaList) MediaAt(pos int) *Media {
	if !l.IsValid() {
		return nil
	}
	ptr := libvlcMediaListItemAtIndex(l.h.cptr(), int32(pos))
	if ptr == 0 {
		return nil
	}
	return wrapMedia(ptr)
}

// AssociatedMedia returns the media this list was created for, or nil. The
// native call transfers a fresh reference. The list lock must NOT be held.
func (l *MediaList) AssociatedMedia() *Media {
	if !l.IsValid() {
		return nil
	}
	ptr := libvlcMediaListMedia(l.h.cptr())
	if ptr == 0 {
		return nil
	}
	return wrapMedia(ptr)
}

// IsReadOnly reports whether the list can be modified by the caller.
func (l *MediaList) IsReadOnly() bool {
	if !l.IsValid() {
		return true
	}
	return libvlcMediaListIsReadonly(l.h.cptr()) != 0
}

// EventManager returns the list's event manager, created on first access and
// cached. It shares the list's lifetime.
func (l *MediaList) EventManager() *EventManager {
	return l.em.get(func() uintptr {
		if !l.IsValid() {
			return 0
		}
		return libvlcMediaListEventManager(l.h.cptr())
	})
}
