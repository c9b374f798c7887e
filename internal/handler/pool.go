package handler

import (
	"bytes"
	"sync"
)

const (
	// Serialized plan trees for mid-tier products land in the low kilobytes
	initialBufferSize = 4 << 10
	// Buffers grown past this by a very deep plan are dropped rather than pooled
	maxPooledBufferSize = 1 << 20
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer retrieves an empty buffer for JSON encoding
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew too large to keep around
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
