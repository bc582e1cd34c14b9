// Log and exit callback slots.
//
// Each Instance has at most one log handler and one exit handler installed at
// a time: installing replaces the previous registration, installing nil
// uninstalls. Uninstalling the log handler waits for in-flight invocations to
// drain; doing so from inside the handler deadlocks and is a programming
// error (the native library behaves the same way).

package vlc

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// LogLevel is a libvlc log verbosity level.
type LogLevel int32

const (
	LogDebug   LogLevel = 0
	LogNotice  LogLevel = 2
	LogWarning LogLevel = 3
	LogError   LogLevel = 4
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogNotice:
		return "notice"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	default:
		return "unknown"
	}
}

// LogHandler receives formatted libvlc log messages. It runs on
// libvlc-internal threads, possibly concurrently.
type LogHandler func(level LogLevel, message string)

type logSlot struct {
	mu sync.Mutex
	id uintptr // registry key while installed, 0 otherwise
}

type exitSlot struct {
	mu sync.Mutex
	id uintptr
}

var (
	logMu       sync.RWMutex
	logHandlers = map[uintptr]LogHandler{}
	logNextID   uintptr

	exitMu       sync.RWMutex
	exitHandlers = map[uintptr]func(){}
	exitNextID   uintptr
)

var (
	logCallbackOnce sync.Once
	logCallbackPtr  uintptr

	exitCallbackOnce sync.Once
	exitCallbackPtr  uintptr
)

func logTrampoline() uintptr {
	logCallbackOnce.Do(func() {
		logCallbackPtr = purego.NewCallback(func(data, level, ctx, format, args uintptr) {
			dispatchLog(data, int32(level), ctx, format, args)
		})
	})
	return logCallbackPtr
}

func exitTrampoline() uintptr {
	exitCallbackOnce.Do(func() {
		exitCallbackPtr = purego.NewCallback(func(opaque uintptr) {
			dispatchExit(opaque)
		})
	})
	return exitCallbackPtr
}

func dispatchLog(data uintptr, level int32, _ uintptr, format, args uintptr) {
	logMu.RLock()
	fn := logHandlers[data]
	logMu.RUnlock()
	if fn == nil {
		return
	}
	fn(LogLevel(level), formatLogMessage(format, args))
}

func dispatchExit(opaque uintptr) {
	exitMu.RLock()
	fn := exitHandlers[opaque]
	exitMu.RUnlock()
	if fn != nil {
		fn()
	}
}

// formatLogMessage expands the printf-style message once. A va_list may only
// be consumed a single time, so there is no retry with a larger buffer; long
// messages are truncated.
func formatLogMessage(format, args uintptr) string {
	if cVsnprintf == nil || format == 0 {
		return goString(format)
	}
	buf := make([]byte, 1024)
	n := cVsnprintf(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), format, args)
	if n < 0 {
		return goString(format)
	}
	if int(n) >= len(buf) {
		n = int32(len(buf) - 1)
	}
	return string(buf[:n])
}

// SetLogHandler installs fn as the instance's log callback, replacing any
// previous handler. Messages already in flight may still reach the old
// handler. A nil fn is equivalent to UnsetLogHandler.
func (i *Instance) SetLogHandler(fn LogHandler) {
	if !i.IsValid() {
		return
	}
	if fn == nil {
		i.UnsetLogHandler()
		return
	}

	i.log.mu.Lock()
	defer i.log.mu.Unlock()

	logMu.Lock()
	logNextID++
	id := logNextID
	logHandlers[id] = fn
	logMu.Unlock()

	old := i.log.id
	i.log.id = id
	// libvlc_log_set waits for pending invocations of the previous callback,
	// so the old registry entry is safe to drop afterwards.
	libvlcLogSet(i.h.cptr(), logTrampoline(), id)
	if old != 0 {
		logMu.Lock()
		delete(logHandlers, old)
		logMu.Unlock()
	}
}

// UnsetLogHandler removes the installed log handler. It blocks until any
// in-flight invocation completes; no invocation is observed after it returns.
// Calling it from within the handler deadlocks.
func (i *Instance) UnsetLogHandler() {
	if !i.IsValid() {
		return
	}
	i.log.mu.Lock()
	defer i.log.mu.Unlock()
	if i.log.id == 0 {
		return
	}
	libvlcLogUnset(i.h.cptr())
	logMu.Lock()
	delete(logHandlers, i.log.id)
	logMu.Unlock()
	i.log.id = 0
}

// EnableLogging routes libvlc log messages to a logrus logger. A nil logger
// uses the logrus standard logger.
func (i *Instance) EnableLogging(logger *logrus.Logger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	i.SetLogHandler(func(level LogLevel, message string) {
		entry := logger.WithField("source", "libvlc")
		switch level {
		case LogDebug:
			entry.Debug(message)
		case LogNotice:
			entry.Info(message)
		case LogWarning:
			entry.Warn(message)
		case LogError:
			entry.Error(message)
		default:
			entry.Info(message)
		}
	})
}

// SetExitHandler registers fn to run when libvlc asks the application to
// exit, replacing any previous handler. Register it before starting a
// playlist or interface, or the exit event may be raised first. A nil fn
// disables the handler.
func (i *Instance) SetExitHandler(fn func()) {
	if !i.IsValid() {
		return
	}
	i.exit.mu.Lock()
	defer i.exit.mu.Unlock()

	old := i.exit.id
	if fn == nil {
		libvlcSetExitHandler(i.h.cptr(), 0, 0)
		i.exit.id = 0
	} else {
		exitMu.Lock()
		exitNextID++
		id := exitNextID
		exitHandlers[id] = fn
		exitMu.Unlock()
		i.exit.id = id
		libvlcSetExitHandler(i.h.cptr(), exitTrampoline(), id)
	}
	if old != 0 {
		exitMu.Lock()
		delete(exitHandlers, old)
		exitMu.Unlock()
	}
}
