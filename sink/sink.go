package sink

import "sync"

// Sink holds the single most recent JPEG frame produced by the capture
// pipeline. There is no history: each publish replaces the previous frame
// and wakes every waiting reader. Readers track their own generation number
// to detect frames they have not seen yet.
type Sink struct {
	mu    sync.Mutex
	cond  *sync.Cond
	frame []byte
	gen   uint64
}

func New() *Sink {
	s := &Sink{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Publish replaces the current frame, advances the generation counter and
// wakes all readers blocked in AwaitNext. The frame must not be mutated by
// the caller afterwards.
func (s *Sink) Publish(frame []byte) {
	s.mu.Lock()
	s.frame = frame
	s.gen++
	s.mu.Unlock()
	s.cond.Broadcast()
}

// AwaitNext blocks until a frame newer than lastSeen has been published,
// then returns the current frame and its generation. If several frames
// arrive while the reader sleeps, only the newest is returned.
func (s *Sink) AwaitNext(lastSeen uint64) ([]byte, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.gen <= lastSeen {
		s.cond.Wait()
	}
	return s.frame, s.gen
}

// Latest returns the current frame without blocking. The frame is nil if
// nothing has been published yet. Readers call this once on attach so a
// frame published before they arrived is not lost behind AwaitNext.
func (s *Sink) Latest() ([]byte, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.gen
}

// Generation reports how many frames have been published so far.
func (s *Sink) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
