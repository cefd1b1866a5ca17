// Package loopbreaker detects event echo loops between Adobe Commerce and
// an integration: when the app's own writes come back as Commerce events,
// processing them again would trigger another write and loop forever.
//
// The breaker fingerprints the relevant fields of each incoming event and
// remembers fingerprints for a bounded window, so the event produced by the
// app's own update is recognized and dropped.
package loopbreaker

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Breaker tracks recently seen event fingerprints. It is safe for
// concurrent use.
type Breaker struct {
	cache  *gocache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithLogger configures the breaker with a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Breaker) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a Breaker remembering fingerprints for ttl. A non-positive
// ttl falls back to DefaultExpiration.
func New(ttl time.Duration, opts ...Option) *Breaker {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	b := &Breaker{
		cache:  gocache.New(ttl, DefaultCleanupInterval),
		ttl:    ttl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Fingerprint computes a stable digest over the selected keys of an event
// payload. With an empty key list the whole payload is fingerprinted. Keys
// are processed in sorted order so field order never changes the digest.
func Fingerprint(event map[string]any, keys []string) (string, error) {
	selected := event
	if len(keys) > 0 {
		selected = make(map[string]any, len(keys))
		for _, key := range keys {
			if value, ok := event[key]; ok {
				selected[key] = value
			}
		}
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	digest := sha256.New()
	for _, name := range names {
		value, err := json.Marshal(selected[name])
		if err != nil {
			return "", fmt.Errorf("loopbreaker: fingerprint field %q: %w", name, err)
		}
		fmt.Fprintf(digest, "%s=%s;", name, value)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// SeenBefore reports whether the fingerprint was recorded within the TTL
// window, recording it either way. Check and record are one call.
func (b *Breaker) SeenBefore(fingerprint string) bool {
	_, seen := b.cache.Get(fingerprint)
	b.cache.Set(fingerprint, struct{}{}, b.ttl)
	if seen {
		b.logger.Debug("duplicate event fingerprint", "fingerprint", fingerprint)
	}
	return seen
}

// Forget drops a fingerprint before its TTL expires.
func (b *Breaker) Forget(fingerprint string) {
	b.cache.Delete(fingerprint)
}
