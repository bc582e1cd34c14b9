// Shared C string helpers for the purego-based bindings.

package vlc

import (
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// goString converts a NUL-terminated C string pointer to a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	var length int
	for *(*byte)(unsafe.Pointer(uintptr(p) + uintptr(length))) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), length))
}

// goStringFree converts a libvlc-allocated string and hands the buffer back
// to libvlc_free.
func goStringFree(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := goString(ptr)
	if libvlcFree != nil {
		libvlcFree(ptr)
	}
	return s
}

// cString returns a NUL-terminated copy of s. The caller must keep the
// returned buffer alive across the native call (runtime.KeepAlive).
func cString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// cPtr exposes a cString buffer as a native pointer.
func cPtr(b *byte) uintptr {
	if b == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(b))
}

// cStringArray builds a native char** for the given strings. Both returned
// values must stay alive across the native call.
func cStringArray(args []string) (uintptr, any) {
	if len(args) == 0 {
		return 0, nil
	}
	bufs := make([][]byte, len(args))
	arr := make([]uintptr, len(args))
	for i, s := range args {
		bufs[i] = append([]byte(s), 0)
		arr[i] = uintptr(unsafe.Pointer(&bufs[i][0]))
	}
	return uintptr(unsafe.Pointer(&arr[0])), []any{bufs, arr}
}
