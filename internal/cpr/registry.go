package cpr

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Registry is a caller-owned, time-evicting map of per-ICAO-24 Trackers.
// The library itself imposes no eviction policy on a Tracker's position
// state; Registry is the documented default client-layer policy (a
// bounded-lifetime cache keyed by address), not a requirement placed on
// every embedder.
type Registry struct {
	trackers *cache.Cache
}

// NewRegistry returns a Registry whose entries expire after ttl of
// inactivity, swept every cleanupInterval. A ttl of 1-5 minutes matches
// the window typical ADS-B receivers use to consider an aircraft's
// tracked state stale.
func NewRegistry(ttl, cleanupInterval time.Duration) *Registry {
	return &Registry{trackers: cache.New(ttl, cleanupInterval)}
}

// Tracker returns the Tracker for icao, creating one in the Empty state
// on first use, and refreshes its expiry.
func (r *Registry) Tracker(icao uint32) *Tracker {
	key := trackerKey(icao)
	if v, found := r.trackers.Get(key); found {
		t := v.(*Tracker)
		r.trackers.SetDefault(key, t)
		return t
	}
	t := NewTracker()
	r.trackers.SetDefault(key, t)
	return t
}

// Len returns the number of aircraft currently tracked.
func (r *Registry) Len() int {
	return r.trackers.ItemCount()
}

// Forget evicts icao's tracker immediately, for callers that know an
// aircraft has left coverage (e.g. an explicit "all-call lost" event)
// rather than waiting out the TTL.
func (r *Registry) Forget(icao uint32) {
	r.trackers.Delete(trackerKey(icao))
}

func trackerKey(icao uint32) string {
	const hex = "0123456789ABCDEF"
	b := [6]byte{}
	for i := 5; i >= 0; i-- {
		b[i] = hex[icao&0xf]
		icao >>= 4
	}
	return string(b[:])
}
