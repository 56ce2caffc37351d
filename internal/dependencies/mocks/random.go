package mocks

import (
	"sync"

	"github.com/mcoot/sosgame/internal/dependencies/random"
)

// MockRandom returns queued values instead of random ones.
// Queued Intn values are reduced modulo n so a queue never indexes out of range.
type MockRandom struct {
	mu sync.Mutex

	intnQueue   []int
	stringQueue []string

	// IntnCalls records the n passed to each Intn call
	IntnCalls []int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued value mod n, or 0 once the queue is empty
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.IntnCalls = append(r.IntnCalls, n)
	if len(r.intnQueue) == 0 || n <= 0 {
		return 0
	}
	v := r.intnQueue[0]
	r.intnQueue = r.intnQueue[1:]
	return v % n
}

// String returns the next queued string, or "" once the queue is empty
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.stringQueue) == 0 {
		return ""
	}
	v := r.stringQueue[0]
	r.stringQueue = r.stringQueue[1:]
	return v
}

// QueueIntn adds values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnQueue = append(r.intnQueue, values...)
}

// QueueString adds values to the String queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stringQueue = append(r.stringQueue, values...)
}

// Reset clears queues and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnQueue = nil
	r.stringQueue = nil
	r.IntnCalls = nil
}
