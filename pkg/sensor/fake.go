package sensor

import (
	"math/rand"
	"sync"
)

// FakeConn replays a fixed response. Response may be shorter than the
// requested length to simulate a short read.
type FakeConn struct {
	Response []byte
	WriteErr error
	ReadErr  error

	mu     sync.Mutex
	writes [][]byte
	closed bool
}

// NewSimulatedConn returns a FakeConn holding a random reading between
// 15.0 and 35.0.
func NewSimulatedConn() *FakeConn {
	raw := uint16(150 + rand.Intn(201))
	return &FakeConn{Response: []byte{byte(raw), byte(raw >> 8)}}
}

func (f *FakeConn) Write(b []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.writes = append(f.writes, append([]byte(nil), b...))
	return nil
}

func (f *FakeConn) Read(n int) (int, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReadErr != nil {
		return 0, nil, f.ReadErr
	}
	out := f.Response
	if len(out) > n {
		out = out[:n]
	}
	data := append([]byte(nil), out...)
	return len(data), data, nil
}

func (f *FakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Writes returns a copy of every payload written so far.
func (f *FakeConn) Writes() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.writes...)
}

func (f *FakeConn) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
