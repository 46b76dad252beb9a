package projection

import (
	"encoding/binary"
	"math"
	"sync"

	"sensory-map-api/internal/models"

	"github.com/cespare/xxhash/v2"
)

// Projector memoises the last projection and skips recomputation when the
// inputs that can affect the result have not changed.
type Projector struct {
	mu      sync.Mutex
	valid   bool
	lastKey uint64
	last    []models.AggregatedPin
}

// NewProjector creates an empty projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Project returns the projection of pins for q. generation identifies the pin
// set's source data; recomputed is false when the memoised result was reused.
func (p *Projector) Project(generation uint64, pins []models.AggregatedPin, q Query) (result []models.AggregatedPin, recomputed bool) {
	key := changeKey(generation, len(pins), q)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && key == p.lastKey {
		return cloneSlice(p.last), false
	}

	p.last = Project(pins, q)
	p.lastKey = key
	p.valid = true
	return cloneSlice(p.last), true
}

// Reset drops the memoised result.
func (p *Projector) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.valid = false
	p.last = nil
}

func changeKey(generation uint64, size int, q Query) uint64 {
	var buf [8]byte
	d := xxhash.New()
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	put(generation)
	put(uint64(size))
	put(math.Float64bits(q.Filters.MaxNoise))
	put(math.Float64bits(q.Filters.MaxCrowds))
	put(math.Float64bits(q.Filters.MaxLighting))
	put(uint64(q.Filters.From.UnixNano()))
	put(uint64(q.Filters.To.UnixNano()))
	put(uint64(q.MaxPins))
	put(boolBits(q.SortByRecent, q.Clustered, q.Filters.From.IsZero(), q.Filters.To.IsZero()))
	return d.Sum64()
}

func boolBits(flags ...bool) uint64 {
	var v uint64
	for i, f := range flags {
		if f {
			v |= 1 << i
		}
	}
	return v
}

func cloneSlice(pins []models.AggregatedPin) []models.AggregatedPin {
	out := make([]models.AggregatedPin, len(pins))
	copy(out, pins)
	return out
}
