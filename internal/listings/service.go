// Package listings turns the raw AutoTrader feed into display-ready vehicle
// listings: cache-or-fetch, normalize, sort.
package listings

import (
	"context"
	"log"
	"sort"

	"motorhub/internal/cache"
	"motorhub/internal/upstream"
	"motorhub/pkg/models"
)

// Service produces the ready-to-render listing set. Each call runs the full
// pipeline: fresh cache, else live fetch (persisting on success), else stale
// cache, else empty. Requests racing on the cache file is fine: writes are
// atomic whole-file overwrites and staleness tolerance is coarse.
type Service struct {
	Cache    *cache.Store
	Upstream *upstream.Client
}

func NewService(store *cache.Store, client *upstream.Client) *Service {
	return &Service{Cache: store, Upstream: client}
}

// GetListings returns all listings normalized and sorted newest-first.
// It never fails: every error boundary degrades toward an empty list.
func (s *Service) GetListings(ctx context.Context) []models.Listing {
	raw := s.rawListings(ctx)

	out := make([]models.Listing, 0, len(raw))
	for _, item := range raw {
		out = append(out, Normalize(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedTimestamp > out[j].CreatedTimestamp
	})

	log.Printf("[listings] processed %d listings", len(out))
	return out
}

func (s *Service) rawListings(ctx context.Context) []models.RawListing {
	raw, err := s.Cache.Read()
	if err == nil {
		log.Printf("[listings] using cached feed (%d items)", len(raw))
		return raw
	}
	log.Printf("[listings] %v, fetching fresh data", err)

	fetched, err := s.Upstream.FetchListings(ctx)
	if err == nil {
		if werr := s.Cache.Write(fetched); werr != nil {
			log.Printf("[listings] cache write failed: %v", werr)
		}
		return fetched
	}
	log.Printf("[listings] upstream fetch failed: %v", err)

	// expired snapshots still beat an empty showroom
	stale, serr := s.Cache.ReadStale()
	if serr == nil {
		log.Printf("[listings] serving %d listings from stale cache", len(stale))
		return stale
	}

	log.Printf("[listings] no cache available, serving empty list")
	return nil
}

// FilterArmoured keeps listings matching mode: "yes" for armoured only,
// "no" for unarmoured only, anything else for all.
func FilterArmoured(list []models.Listing, mode string) []models.Listing {
	switch mode {
	case "yes", "no":
		want := mode == "yes"
		out := make([]models.Listing, 0, len(list))
		for _, l := range list {
			if l.IsArmoured == want {
				out = append(out, l)
			}
		}
		return out
	}
	return list
}

// SortBy reorders in place: "price_high", "price_low", or "newest" (the
// service's order, so a no-op). Ties keep their relative order.
func SortBy(list []models.Listing, mode string) {
	switch mode {
	case "price_high":
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceValue > list[j].PriceValue
		})
	case "price_low":
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceValue < list[j].PriceValue
		})
	}
}
