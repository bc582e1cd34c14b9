// Event subscription over libvlc event managers.
//
// An EventManager is a back-reference to an event manager embedded in its
// parent object: it never owns a native reference and is valid exactly as
// long as its parent. Each parent caches the wrapper on first access.
//
// Callbacks run on libvlc-internal threads. A single native trampoline serves
// every attachment; the opaque pointer passed to libvlc is a registry key, so
// no Go pointer ever crosses the boundary.

package vlc

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// EventType identifies a libvlc event.
type EventType int32

// Event types, matching libvlc_event_e.
const (
	EventMediaMetaChanged EventType = iota
	EventMediaSubItemAdded
	EventMediaDurationChanged
	EventMediaParsedChanged
	EventMediaFreed
	EventMediaStateChanged
	EventMediaSubItemTreeAdded
)

const (
	EventMediaPlayerMediaChanged EventType = 0x100 + iota
	EventMediaPlayerNothingSpecial
	EventMediaPlayerOpening
	EventMediaPlayerBuffering
	EventMediaPlayerPlaying
	EventMediaPlayerPaused
	EventMediaPlayerStopped
	EventMediaPlayerForward
	EventMediaPlayerBackward
	EventMediaPlayerEndReached
	EventMediaPlayerEncounteredError
	EventMediaPlayerTimeChanged
	EventMediaPlayerPositionChanged
	EventMediaPlayerSeekableChanged
	EventMediaPlayerPausableChanged
	EventMediaPlayerTitleChanged
	EventMediaPlayerSnapshotTaken
	EventMediaPlayerLengthChanged
	EventMediaPlayerVout
)

const (
	EventMediaListItemAdded EventType = 0x200 + iota
	EventMediaListWillAddItem
	EventMediaListItemDeleted
	EventMediaListWillDeleteItem
	EventMediaListEndReached
)

const (
	EventMediaDiscovererStarted EventType = 0x500 + iota
	EventMediaDiscovererEnded
)

// Event is a decoded native event. Only the fields relevant to Type are set.
//
// Media carries its own native reference when non-nil (the payload pointer is
// retained before wrapping); the callback owns it and must Close it.
type Event struct {
	Type EventType

	Meta         MetaType // EventMediaMetaChanged
	Media        *Media   // sub-item, media-changed and list item events
	Duration     int64    // EventMediaDurationChanged, in ms
	ParsedStatus bool     // EventMediaParsedChanged
	State        State    // EventMediaStateChanged
	Time         int64    // EventMediaPlayerTimeChanged, in ms
	Position     float32  // EventMediaPlayerPositionChanged
	Length       int64    // EventMediaPlayerLengthChanged, in ms
	Buffering    float32  // EventMediaPlayerBuffering, percent
	Index        int      // media list item events
}

// cEvent mirrors libvlc_event_t on 64-bit platforms: event type, sender
// object, then a union sized for its largest member.
type cEvent struct {
	etype int32
	_     int32
	obj   uintptr
	u     [16]byte
}

// EventID identifies one attachment on an EventManager.
type EventID uint64

type eventBinding struct {
	em       *EventManager
	event    EventType
	callback func(Event)
}

var (
	eventMu       sync.RWMutex
	eventBindings = map[uintptr]*eventBinding{}
	eventNextID   uintptr
)

var (
	eventCallbackOnce sync.Once
	eventCallbackPtr  uintptr
)

// eventTrampoline returns the shared native-callable entry point. Created
// once; purego callbacks cannot be released.
func eventTrampoline() uintptr {
	eventCallbackOnce.Do(func() {
		eventCallbackPtr = purego.NewCallback(func(ev uintptr, opaque uintptr) {
			dispatchEvent(ev, opaque)
		})
	})
	return eventCallbackPtr
}

// dispatchEvent routes one native event to its registered callback. Events
// delivered after a detach (already in flight on a library thread) find no
// binding and are dropped.
func dispatchEvent(ev uintptr, opaque uintptr) {
	eventMu.RLock()
	b := eventBindings[opaque]
	eventMu.RUnlock()
	if b == nil || ev == 0 {
		return
	}
	b.callback(decodeEvent(ev))
}

func decodeEvent(ev uintptr) Event {
	c := (*cEvent)(unsafe.Pointer(ev))
	e := Event{Type: EventType(c.etype)}
	u := unsafe.Pointer(&c.u[0])
	switch e.Type {
	case EventMediaMetaChanged:
		e.Meta = MetaType(*(*int32)(u))
	case EventMediaSubItemAdded, EventMediaSubItemTreeAdded, EventMediaPlayerMediaChanged:
		if p := *(*uintptr)(u); p != 0 {
			e.Media = borrowedMedia(p)
		}
	case EventMediaDurationChanged:
		e.Duration = *(*int64)(u)
	case EventMediaParsedChanged:
		e.ParsedStatus = *(*int32)(u) != 0
	case EventMediaStateChanged:
		e.State = State(*(*int32)(u))
	case EventMediaPlayerTimeChanged:
		e.Time = *(*int64)(u)
	case EventMediaPlayerPositionChanged:
		e.Position = *(*float32)(u)
	case EventMediaPlayerLengthChanged:
		e.Length = *(*int64)(u)
	case EventMediaPlayerBuffering:
		e.Buffering = *(*float32)(u)
	case EventMediaListItemAdded, EventMediaListWillAddItem,
		EventMediaListItemDeleted, EventMediaListWillDeleteItem:
		if p := *(*uintptr)(u); p != 0 {
			e.Media = borrowedMedia(p)
		}
		e.Index = int(*(*int32)(unsafe.Pointer(&c.u[ptrSize])))
	}
	return e
}

// EventManager subscribes callbacks on one libvlc object. Obtain it from the
// owning wrapper's EventManager method; its validity window is the parent's.
type EventManager struct {
	ptr uintptr

	mu  sync.Mutex
	ids []EventID
}

// Attach registers fn for the given event type. The returned id detaches it.
// fn runs on a libvlc-internal thread.
func (em *EventManager) Attach(event EventType, fn func(Event)) (EventID, error) {
	if em == nil || em.ptr == 0 {
		return 0, ErrInvalidObject
	}
	if fn == nil {
		return 0, errors.New("vlc: nil event callback")
	}

	eventMu.Lock()
	eventNextID++
	id := eventNextID
	eventBindings[id] = &eventBinding{em: em, event: event, callback: fn}
	eventMu.Unlock()

	if status := libvlcEventAttach(em.ptr, int32(event), eventTrampoline(), id); status != 0 {
		eventMu.Lock()
		delete(eventBindings, id)
		eventMu.Unlock()
		return 0, statusErr("event attach", status)
	}

	em.mu.Lock()
	em.ids = append(em.ids, EventID(id))
	em.mu.Unlock()
	return EventID(id), nil
}

// Detach removes one attachment. The native detach runs first, so once it
// returns no further invocation of the callback is observed.
func (em *EventManager) Detach(id EventID) {
	if em == nil || em.ptr == 0 {
		return
	}

	eventMu.RLock()
	b := eventBindings[uintptr(id)]
	eventMu.RUnlock()
	if b == nil || b.em != em {
		return
	}

	libvlcEventDetach(em.ptr, int32(b.event), eventTrampoline(), uintptr(id))

	eventMu.Lock()
	delete(eventBindings, uintptr(id))
	eventMu.Unlock()

	em.mu.Lock()
	for i, v := range em.ids {
		if v == id {
			em.ids = append(em.ids[:i], em.ids[i+1:]...)
			break
		}
	}
	em.mu.Unlock()
}

// detachAll removes every attachment made through this manager. Called when
// the owning wrapper closes, before the parent reference is released.
func (em *EventManager) detachAll() {
	if em == nil {
		return
	}
	em.mu.Lock()
	ids := em.ids
	em.ids = nil
	em.mu.Unlock()

	for _, id := range ids {
		eventMu.RLock()
		b := eventBindings[uintptr(id)]
		eventMu.RUnlock()
		if b == nil {
			continue
		}
		if em.ptr != 0 {
			libvlcEventDetach(em.ptr, int32(b.event), eventTrampoline(), uintptr(id))
		}
		eventMu.Lock()
		delete(eventBindings, uintptr(id))
		eventMu.Unlock()
	}
}

// emCache lazily creates and caches a wrapper's EventManager. The native
// accessor transfers no ownership and is idempotent for every libvlc object
// kind exposing one, so a mutex-guarded check-and-set is sufficient; once
// cached the entry never resets while the wrapper exists.
type emCache struct {
	mu sync.Mutex
	em *EventManager
}

func (c *emCache) get(accessor func() uintptr) *EventManager {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.em == nil {
		c.em = &EventManager{ptr: accessor()}
	}
	return c.em
}

func (c *emCache) close() {
	c.mu.Lock()
	em := c.em
	c.mu.Unlock()
	em.detachAll()
}
