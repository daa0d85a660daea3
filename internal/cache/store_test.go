package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"motorhub/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "cache_listings.json"), 30*time.Minute)
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	base := time.Now()
	s.now = func() time.Time { return base }

	data := []models.RawListing{
		{"id": "1", "make": "BMW", "price": "450,00"},
		{"id": "2", "make": "Audi"},
	}
	if err := s.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// within the freshness window
	s.now = func() time.Time { return base.Add(10 * time.Minute) }
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Read returned %d listings; want 2", len(got))
	}
	if got[0]["id"] != "1" || got[0]["make"] != "BMW" || got[0]["price"] != "450,00" {
		t.Errorf("round-trip mutated data: %v", got[0])
	}

	// past the freshness window
	s.now = func() time.Time { return base.Add(31 * time.Minute) }
	if _, err := s.Read(); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Read after expiry: err = %v; want ErrCacheMiss", err)
	}

	// stale read ignores the window
	stale, err := s.ReadStale()
	if err != nil {
		t.Fatalf("ReadStale: %v", err)
	}
	if len(stale) != 2 {
		t.Errorf("ReadStale returned %d listings; want 2", len(stale))
	}
}

func TestStoreMissingFile(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Read(); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Read with no file: err = %v; want ErrCacheMiss", err)
	}
	if _, err := s.ReadStale(); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("ReadStale with no file: err = %v; want ErrCacheMiss", err)
	}
}

func TestStoreCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Read(); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Read with corrupt file: err = %v; want ErrCacheMiss", err)
	}
}

func TestStoreMissingKeys(t *testing.T) {
	s := newTestStore(t)
	for _, body := range []string{`{}`, `{"timestamp": 100}`, `{"data": []}`} {
		if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Read(); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("Read(%s): err = %v; want ErrCacheMiss", body, err)
		}
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write([]models.RawListing{{"id": "old"}}); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := s.Write([]models.RawListing{{"id": "new"}}); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "new" {
		t.Errorf("Read = %v; want the second snapshot only", got)
	}

	// no temp file left behind
	if _, err := os.Stat(s.Path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after Write")
	}
}
