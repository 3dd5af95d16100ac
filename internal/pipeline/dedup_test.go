package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/pipeline"
)

type countingTransformer struct {
	calls atomic.Int32
	err   error
}

func (c *countingTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.NormalizedStation, error) {
	c.calls.Add(1)
	if c.err != nil {
		return domain.NormalizedStation{}, c.err
	}
	return domain.NormalizedStation{StationKey: string(raw.Key)}, nil
}

func TestDedupTransformer(t *testing.T) {
	inner := &countingTransformer{}
	d, err := pipeline.NewDedupTransformer(inner, 2)
	require.NoError(t, err)
	ctx := context.Background()

	a := domain.RawEvent{Key: []byte("a"), Value: []byte(`{"name":"a"}`)}
	b := domain.RawEvent{Key: []byte("b"), Value: []byte(`{"name":"b"}`)}
	c := domain.RawEvent{Key: []byte("c"), Value: []byte(`{"name":"c"}`)}

	out, err := d.Transform(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "a", out.StationKey)

	_, err = d.Transform(ctx, a)
	assert.ErrorIs(t, err, pipeline.ErrDuplicate)
	assert.Equal(t, int32(1), inner.calls.Load())

	// Evicts a.
	_, err = d.Transform(ctx, b)
	require.NoError(t, err)
	_, err = d.Transform(ctx, c)
	require.NoError(t, err)

	_, err = d.Transform(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int32(4), inner.calls.Load())
}

func TestDedupTransformer_FailuresNotRemembered(t *testing.T) {
	inner := &countingTransformer{err: errors.New("bad data")}
	d, err := pipeline.NewDedupTransformer(inner, 8)
	require.NoError(t, err)

	raw := domain.RawEvent{Value: []byte(`{}`)}
	_, err = d.Transform(context.Background(), raw)
	require.Error(t, err)
	_, err = d.Transform(context.Background(), raw)
	require.Error(t, err)
	assert.NotErrorIs(t, err, pipeline.ErrDuplicate)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestDedupTransformer_ConcurrentCopies(t *testing.T) {
	inner := &countingTransformer{}
	d, err := pipeline.NewDedupTransformer(inner, 8)
	require.NoError(t, err)

	raw := domain.RawEvent{Key: []byte("101"), Value: []byte(`{"id":101}`)}
	var (
		wg        sync.WaitGroup
		ok, dupes atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Transform(context.Background(), raw)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, pipeline.ErrDuplicate):
				dupes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(15), dupes.Load())
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestNewDedupTransformer_InvalidSize(t *testing.T) {
	_, err := pipeline.NewDedupTransformer(&countingTransformer{}, 0)
	assert.Error(t, err)
}
