package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// CacheEntry maps a normalized query to a resolved absolute path.
type CacheEntry struct {
	Key        string    `json:"key"`
	Path       string    `json:"path"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Expired reports whether the entry is at least ttl old at now.
func (e CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.RecordedAt) >= ttl
}

// CacheFile is the on-disk layout of the path cache.
type CacheFile struct {
	// Timestamp is the start of the current store generation.
	Timestamp string            `json:"timestamp"`
	Paths     map[string]string `json:"paths"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// FormatCacheTimestamp renders a generation time for CacheFile.Timestamp.
func FormatCacheTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseCacheTimestamp accepts RFC 3339 and naive ISO-8601 timestamps.
// Naive timestamps are read in local time.
func ParseCacheTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, zerr.With(zerr.Wrap(ErrCacheTimestampInvalid, ""), "timestamp", s)
}
