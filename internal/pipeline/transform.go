package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
)

// StationTransformer implements Transformer by parsing a station payload and
// normalizing every reading into canonical units.
type StationTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a StationTransformer.
func NewTransformer(logger *slog.Logger) *StationTransformer {
	return &StationTransformer{logger: logger}
}

func (t *StationTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.NormalizedStation, error) {
	station, err := domain.ParseStationPayload(raw)
	if err != nil {
		return domain.NormalizedStation{}, err
	}

	out, err := domain.NormalizeStation(station)
	if err != nil {
		return domain.NormalizedStation{}, err
	}

	t.logger.Debug("station normalized", "station", out.StationKey, "records", len(out.Records))
	return out, nil
}
