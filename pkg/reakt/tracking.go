package reakt

import (
	"runtime"
	"sync"
)

// currentRuntimes maps goroutine ids to the runtime rendering on them.
// Hooks find their slot store through it for the duration of a pass.
var currentRuntimes sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the "goroutine <id> " stack header.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// currentRuntime returns the runtime rendering on this goroutine, or nil.
func currentRuntime() *Runtime {
	if r, ok := currentRuntimes.Load(getGoroutineID()); ok {
		return r.(*Runtime)
	}
	return nil
}

// setCurrentRuntime makes r current for this goroutine and returns the
// previous one so it can be restored.
func setCurrentRuntime(r *Runtime) *Runtime {
	gid := getGoroutineID()
	var old *Runtime
	if prev, ok := currentRuntimes.Load(gid); ok {
		old = prev.(*Runtime)
	}
	if r == nil {
		currentRuntimes.Delete(gid)
	} else {
		currentRuntimes.Store(gid, r)
	}
	return old
}

// mustCurrent returns the rendering runtime or panics with E001.
func mustCurrent(hook string) *Runtime {
	r := currentRuntime()
	if r == nil || !r.rendering {
		panic(newError("E001").WithDetailf("%s was called outside of a render pass", hook))
	}
	return r
}
