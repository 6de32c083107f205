package core

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goidBufPool holds small scratch buffers for reading the stack header.
var goidBufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 64)
		return &b
	},
}

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the runtime id of the calling goroutine. The id
// is stable for the goroutine's lifetime and unique among live
// goroutines, which makes it usable as the thread id of a log entry.
//
// The id is read from the first line of the stack trace header
// ("goroutine 42 [running]:"). The runtime does not expose it any
// other way; this is only done for entries that actually get logged.
func GoroutineID() uint64 {
	bp := goidBufPool.Get().(*[]byte)
	b := (*bp)[:runtime.Stack(*bp, false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	goidBufPool.Put(bp)
	if err != nil {
		return 0
	}
	return id
}
