// refresh-cache fetches the listing feed once and rewrites the local cache
// snapshot. Handy for warming the cache before a deploy or debugging feed
// issues without going through the web server.
package main

import (
	"context"
	"log"
	"time"

	"motorhub/internal/cache"
	"motorhub/internal/upstream"
	"motorhub/pkg/utils"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := utils.LoadConfig()

	client := upstream.NewClient(cfg.APIURL, cfg.APIUsername, cfg.APIPassword)
	listings, err := client.FetchListings(ctx)
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}
	log.Printf("fetched %d listings", len(listings))

	store := cache.NewStore(cfg.CachePath, cfg.CacheTimeout)
	if err := store.Write(listings); err != nil {
		log.Fatalf("cache write failed: %v", err)
	}
	log.Printf("cache written to %s", cfg.CachePath)
}
