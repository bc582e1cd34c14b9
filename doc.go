// Package vlc provides Go bindings for libVLC with a shared-ownership
// handle layer over the native reference-counted objects.
//
// Key pieces include:
//   - Instance: a libVLC instance with log/exit callback slots and
//     module/output discovery queries
//   - Media, MediaList, MediaPlayer, MediaDiscoverer wrappers
//   - EventManager: per-object event subscription with typed payloads
//   - Marshaling of native linked lists and counted arrays into Go slices
//
// # Ownership
//
// Every wrapper owns exactly one native reference, released when the last
// member of its ownership group is closed. Constructors adopt the fresh
// reference returned by the native create/duplicate entry points; pointers
// obtained without an ownership transfer (event payloads) are retained
// before being wrapped. Close is safe to call more than once on the same
// wrapper; the native release runs exactly once per group.
//
// # Native Library
//
// Bindings load libvlc at runtime via purego (CGO_ENABLED=0). Set
// VLC_LIB_PATH to the shared library or its directory to override the
// default search order. Use IsAvailable to probe without creating objects.
//
// # Callbacks
//
// Event, log, and exit callbacks are delivered on libVLC-internal threads.
// Uninstalling a callback blocks until in-flight invocations complete;
// uninstalling from inside the callback itself deadlocks and is a
// programming error, mirroring the native contract.
package vlc
