package random

import (
	"encoding/binary"
	"sync"

	"github.com/google/uuid"
	"lukechampine.com/frand"
)

// Random provides randomness that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// ID returns a fresh unique identifier
	ID() string
}

// FastRandom implements Random using frand's shared generator
type FastRandom struct{}

// New creates a new FastRandom
func New() *FastRandom {
	return &FastRandom{}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return frand.Intn(n)
}

// ID returns a random UUID
func (r *FastRandom) ID() string {
	return uuid.NewString()
}

// SeededRandom is a reproducible generator. The same seed always yields
// the same sequence.
type SeededRandom struct {
	mu  sync.Mutex
	rng *frand.RNG
}

// NewSeeded creates a SeededRandom from a 64-bit seed
func NewSeeded(seed int64) *SeededRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return &SeededRandom{rng: frand.NewCustom(key, 1024, 12)}
}

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// ID returns a UUID built from the seeded stream
func (r *SeededRandom) ID() string {
	b := make([]byte, 16)
	r.mu.Lock()
	r.rng.Read(b)
	r.mu.Unlock()
	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
