package bitstream

// newStream wraps raw bytes for tests that need exact bit patterns.
func newStream(b []byte) *Stream {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Stream{buf: buf}
}
