// Package cache persists the last-known-good raw listing set as a single
// timestamped JSON file, so page loads within the freshness window skip the
// upstream API entirely.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"motorhub/pkg/models"
)

// DefaultTTL is the freshness window for a snapshot.
const DefaultTTL = 30 * time.Minute

// ErrCacheMiss is returned when no usable snapshot exists. Missing, corrupt
// and expired snapshots all look the same to callers.
var ErrCacheMiss = errors.New("listings cache miss")

// Snapshot is the on-disk format: the fetch time plus the raw listing set.
type Snapshot struct {
	Timestamp float64             `json:"timestamp"`
	Data      []models.RawListing `json:"data"`
}

// snapshotFile mirrors Snapshot with pointer fields so a file missing either
// key is rejected as corrupt rather than silently defaulted.
type snapshotFile struct {
	Timestamp *float64             `json:"timestamp"`
	Data      *[]models.RawListing `json:"data"`
}

type Store struct {
	Path string
	TTL  time.Duration

	now func() time.Time
}

func NewStore(path string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{Path: path, TTL: ttl, now: time.Now}
}

// Read returns the snapshot's raw listings if the backing file exists, parses,
// and is younger than the TTL. Anything else is ErrCacheMiss.
func (s *Store) Read() ([]models.RawListing, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	age := s.now().Unix() - int64(snap.Timestamp)
	if age >= int64(s.TTL.Seconds()) {
		return nil, fmt.Errorf("%w: snapshot is %ds old", ErrCacheMiss, age)
	}
	return snap.Data, nil
}

// ReadStale returns the snapshot's raw listings regardless of age. Used as a
// last resort when the live fetch fails; missing or corrupt files still miss.
func (s *Store) ReadStale() ([]models.RawListing, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	return snap.Data, nil
}

// Write replaces the snapshot with the given raw listings, stamped now.
// The write goes through a temp file and rename so readers never observe a
// partially written snapshot.
func (s *Store) Write(data []models.RawListing) error {
	if data == nil {
		data = []models.RawListing{}
	}
	snap := Snapshot{Timestamp: float64(s.now().Unix()), Data: data}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *Store) load() (*Snapshot, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no snapshot file", ErrCacheMiss)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrCacheMiss, s.Path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("%w: corrupt snapshot: %v", ErrCacheMiss, err)
	}
	if file.Timestamp == nil || file.Data == nil {
		return nil, fmt.Errorf("%w: snapshot missing timestamp or data", ErrCacheMiss)
	}
	return &Snapshot{Timestamp: *file.Timestamp, Data: *file.Data}, nil
}
