package pipeline_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/pipeline"
)

// Every fixture station reports the same canonical values per day, each in
// its own units.
type canonicalDay struct {
	tmin, tmax, rhmin, rhmax, ea, rs, ws float64
}

func expectedDay(d int) canonicalDay {
	f := float64(d)
	return canonicalDay{
		tmin:  8 + f,
		tmax:  24 + f,
		rhmin: 25 + 2*f,
		rhmax: 85 - 2*f,
		ea:    0.9 + 0.05*f,
		rs:    22 + f,
		ws:    2.5 + 0.25*f,
	}
}

func TestStationTransformer_WithMockJSONData(t *testing.T) {
	transformer := pipeline.NewTransformer(discardLogger())
	payloads := readMockPayloads(t)
	require.Len(t, payloads, 5)

	for _, raw := range payloads {
		var p domain.StationPayload
		require.NoError(t, json.Unmarshal(raw, &p))

		t.Run(p.Name, func(t *testing.T) {
			out, err := transformer.Transform(context.Background(), domain.RawEvent{Value: raw})
			require.NoError(t, err)
			require.Len(t, out.Records, len(p.Readings))

			for d, rec := range out.Records {
				want := expectedDay(d)
				assert.InDelta(t, want.tmin, rec.Tmin(), 1e-3)
				assert.InDelta(t, want.tmax, rec.Tmax(), 1e-3)
				assertOptional(t, want.rhmin, rec.RHMin)
				assertOptional(t, want.rhmax, rec.RHMax)
				assertOptional(t, want.ea, rec.VaporPressure)
				assertOptional(t, want.rs, rec.SolarRadiation)
				assertOptional(t, want.ws, rec.WindSpeed)
				assert.Equal(t, p.Elevation, rec.Elevation())
			}
		})
	}
}

func assertOptional(t *testing.T, want float64, get func() (float64, bool)) {
	t.Helper()
	got, ok := get()
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-3)
}

func readMockPayloads(t *testing.T) []json.RawMessage {
	t.Helper()

	path := filepath.Join("..", "..", "data", "mock", "stations.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payloads []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payloads))
	return payloads
}
