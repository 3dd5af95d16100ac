package pipeline

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
)

// ErrDuplicate is returned by DedupTransformer for a payload it has already
// normalized. The pipeline commits and skips such messages.
var ErrDuplicate = errors.New("duplicate payload")

// DedupTransformer wraps a Transformer and drops payloads whose exact bytes
// were recently normalized, e.g. after a consumer restart redelivers
// uncommitted messages.
type DedupTransformer struct {
	inner Transformer
	seen  *lru.Cache[[sha256.Size]byte, struct{}]
}

// NewDedupTransformer remembers the digests of the last size successful
// payloads.
func NewDedupTransformer(inner Transformer, size int) (*DedupTransformer, error) {
	cache, err := lru.New[[sha256.Size]byte, struct{}](size)
	if err != nil {
		return nil, fmt.Errorf("creating dedup cache: %w", err)
	}
	return &DedupTransformer{inner: inner, seen: cache}, nil
}

func (d *DedupTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.NormalizedStation, error) {
	key := sha256.Sum256(raw.Value)
	// Claim the digest before transforming so concurrent copies within a batch
	// see each other.
	if found, _ := d.seen.ContainsOrAdd(key, struct{}{}); found {
		return domain.NormalizedStation{}, ErrDuplicate
	}

	out, err := d.inner.Transform(ctx, raw)
	if err != nil {
		// Only successes are remembered.
		d.seen.Remove(key)
		return out, err
	}
	return out, nil
}
