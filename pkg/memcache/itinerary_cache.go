package mem

import (
	"sync"
	"time"

	"wanderly/internal/models/response_models"
)

type ItineraryStore interface {
	Set(id string, itinerary *response_models.ItineraryResponse, ttl time.Duration)

	// Get returns the itinerary stored under id unless it has expired.
	Get(id string) (*response_models.ItineraryResponse, bool)

	Len() int
}

type entry struct {
	itinerary *response_models.ItineraryResponse
	expiresAt time.Time
}

// ItineraryCache keeps recently generated itineraries in process memory.
// Expired entries are dropped on read and by a sweep on every write.
type ItineraryCache struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewItineraryCache() *ItineraryCache {
	return &ItineraryCache{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *ItineraryCache) Set(id string, itinerary *response_models.ItineraryResponse, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
	s.data[id] = entry{
		itinerary: itinerary,
		expiresAt: now.Add(ttl),
	}
}

func (s *ItineraryCache) Get(id string) (*response_models.ItineraryResponse, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// re-check: a concurrent Set may have refreshed the entry
		if cur, ok := s.data[id]; ok && s.now().After(cur.expiresAt) {
			delete(s.data, id)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.itinerary, true
}

func (s *ItineraryCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
