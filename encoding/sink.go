package encoding

// Sink is the encoder's output abstraction: a destination that can be
// asked how much it can still accept before writing to it, so the
// encoder can check capacity before each atomic write rather than
// writing partway and discovering failure mid-packet.
type Sink interface {
	// Remaining reports how many more bytes the sink can accept, or -1
	// if unbounded.
	Remaining() int
	// Write appends p to the sink. The caller (the encoder) has already
	// verified via Remaining that p fits; Write returns ErrWriteZero if
	// it doesn't.
	Write(p []byte) (int, error)
}

// BoundedSink is a fixed-capacity Sink backed by a pre-allocated slice;
// it never grows and never allocates after construction, matching the
// bounded/allocation-free operating mode.
type BoundedSink struct {
	buf []byte
	n   int
}

// NewBoundedSink wraps buf as a Sink with capacity len(buf).
func NewBoundedSink(buf []byte) *BoundedSink {
	return &BoundedSink{buf: buf}
}

func (s *BoundedSink) Remaining() int {
	return len(s.buf) - s.n
}

func (s *BoundedSink) Write(p []byte) (int, error) {
	if len(p) > s.Remaining() {
		return 0, errWriteZero(Reserved, int64(len(p)))
	}
	copy(s.buf[s.n:], p)
	s.n += len(p)
	return len(p), nil
}

// Bytes returns the bytes written so far.
func (s *BoundedSink) Bytes() []byte {
	return s.buf[:s.n]
}

// GrowingSink is a heap-backed Sink that grows without limit, for the
// unbounded operating mode.
type GrowingSink struct {
	buf []byte
}

// NewGrowingSink returns a GrowingSink with an empty initial buffer.
func NewGrowingSink() *GrowingSink {
	return &GrowingSink{}
}

func (s *GrowingSink) Remaining() int {
	return -1
}

func (s *GrowingSink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Bytes returns the bytes written so far.
func (s *GrowingSink) Bytes() []byte {
	return s.buf
}
