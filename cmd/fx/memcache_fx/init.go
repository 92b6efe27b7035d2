package memcache_fx

import (
	"go.uber.org/fx"

	mem "wanderly/pkg/memcache"
)

var Module = fx.Provide(provideItineraryCache)

func provideItineraryCache() mem.ItineraryStore {
	return mem.NewItineraryCache()
}
