// Package bufpool provides a sync.Pool-backed buffer pool. Report
// artifacts are rendered into pooled buffers before they touch disk,
// which keeps allocations flat when one process generates reports for
// many analyzer runs.
package bufpool

import (
	"bytes"
	"sync"
)

// maxBufferSize is the largest buffer returned to the pool. Whole
// report files pass through these buffers, so the cap is generous;
// anything larger is left to the GC.
const maxBufferSize = 1 << 20 // 1MB

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Get retrieves an empty bytes.Buffer from the pool.
// Callers should call Put when done.
func Get() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. Nil buffers are safely ignored;
// buffers over maxBufferSize are dropped to prevent memory bloat.
func Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if buf.Cap() > maxBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
