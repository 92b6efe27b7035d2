package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/models/response_models"
)

func TestItineraryCache_SetGet(t *testing.T) {
	c := NewItineraryCache()
	want := &response_models.ItineraryResponse{ID: "trip-1", Name: "Lisbon"}

	c.Set("trip-1", want, time.Hour)

	got, ok := c.Get("trip-1")
	require.True(t, ok)
	assert.Same(t, want, got)

	_, ok = c.Get("trip-2")
	assert.False(t, ok)
}

func TestItineraryCache_Expiry(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewItineraryCache()
	c.now = func() time.Time { return now }

	c.Set("old", &response_models.ItineraryResponse{ID: "old"}, time.Minute)
	now = now.Add(2 * time.Minute)

	_, ok := c.Get("old")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestItineraryCache_SetSweepsExpired(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewItineraryCache()
	c.now = func() time.Time { return now }

	c.Set("a", &response_models.ItineraryResponse{ID: "a"}, time.Minute)
	c.Set("b", &response_models.ItineraryResponse{ID: "b"}, time.Hour)
	now = now.Add(10 * time.Minute)
	c.Set("c", &response_models.ItineraryResponse{ID: "c"}, time.Hour)

	assert.Equal(t, 2, c.Len())
}

func TestItineraryCache_Concurrent(t *testing.T) {
	c := NewItineraryCache()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("trip-%d", i)
			c.Set(id, &response_models.ItineraryResponse{ID: id}, time.Hour)
			got, ok := c.Get(id)
			assert.True(t, ok)
			assert.Equal(t, id, got.ID)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 32, c.Len())
}
