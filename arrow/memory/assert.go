package memory

import (
	"strconv"

	"github.com/wsf1990/arrow/arrow/internal/debug"
)

func AssertBuffer(pfx string, buffer *Buffer) {
	if buffer == nil {
		return
	}
	debug.Assert(buffer.refCount == 1, pfx+": buffer.refCount="+strconv.Itoa(int(buffer.refCount)))
}

func AssertBufferN(pfx string, buffer *Buffer, n int64) {
	if buffer == nil {
		return
	}
	debug.Assert(buffer.refCount == n, pfx+": buffer.refCount="+strconv.Itoa(int(buffer.refCount))+", want "+strconv.Itoa(int(n)))
}
