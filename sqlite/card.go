package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fwojciec/edhgrab"
)

// Compile-time interface verification.
var _ edhgrab.CardService = (*CardCacheService)(nil)

// DefaultCardMaxAge is how long a cached card record stays fresh.
// Prices drift, so records are refetched after a week.
const DefaultCardMaxAge = 7 * 24 * time.Hour

// CardCacheService is a read-through cache over another CardService.
// Lookups are keyed by card name, case-insensitively; a stale record is
// refetched, and served as-is only when the upstream lookup fails.
type CardCacheService struct {
	db     *DB
	inner  edhgrab.CardService
	maxAge time.Duration
}

// CardCacheOption configures a CardCacheService.
type CardCacheOption func(*CardCacheService)

// WithMaxAge overrides the freshness window for cached records.
func WithMaxAge(d time.Duration) CardCacheOption {
	return func(s *CardCacheService) {
		s.maxAge = d
	}
}

// NewCardCacheService creates a cache over the inner service.
func NewCardCacheService(db *DB, inner edhgrab.CardService, opts ...CardCacheOption) *CardCacheService {
	s := &CardCacheService{
		db:     db,
		inner:  inner,
		maxAge: DefaultCardMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindCardByName returns cached details when fresh, otherwise consults
// the inner service and caches its answer.
func (s *CardCacheService) FindCardByName(ctx context.Context, name string) (*edhgrab.CardDetails, error) {
	if name == "" {
		return nil, edhgrab.Errorf(edhgrab.EINVALID, "card name required")
	}

	cached, cachedAt, err := s.findCached(ctx, name)
	if err != nil {
		return nil, err
	}
	if cached != nil && time.Since(cachedAt) <= s.maxAge {
		return cached, nil
	}

	details, innerErr := s.inner.FindCardByName(ctx, name)
	if innerErr != nil {
		// A stale record beats nothing when upstream merely failed;
		// a definitive not-found propagates.
		if cached != nil && edhgrab.ErrorCode(innerErr) != edhgrab.ENOTFOUND {
			return cached, nil
		}
		return nil, innerErr
	}

	// The lookup result is served even if persisting it fails.
	_ = s.save(ctx, details)

	return details, nil
}

// findCached returns the stored record and its age, or (nil, zero, nil)
// on a clean miss.
func (s *CardCacheService) findCached(ctx context.Context, name string) (*edhgrab.CardDetails, time.Time, error) {
	var raw string
	var cachedAtStr string

	err := s.db.QueryRowContext(ctx, `
		SELECT details, cached_at FROM cards WHERE name = ?
	`, name).Scan(&raw, &cachedAtStr)

	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var details edhgrab.CardDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		// A corrupt row is treated as a miss; the refetch overwrites it.
		return nil, time.Time{}, nil
	}

	cachedAt, err := parseRFC3339(cachedAtStr, "cached_at")
	if err != nil {
		return nil, time.Time{}, nil
	}

	return &details, cachedAt, nil
}

// save stores the record under its canonical name.
func (s *CardCacheService) save(ctx context.Context, details *edhgrab.CardDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cards (name, details, cached_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			details = excluded.details,
			cached_at = excluded.cached_at
	`, details.Name, string(raw), time.Now().UTC().Format(time.RFC3339))

	return err
}
