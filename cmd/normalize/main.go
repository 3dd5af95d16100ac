// Command normalize converts station payload files into canonical records
// offline, using the same domain code as the Kafka service.
//
// Usage:
//
//	normalize run data/mock/stations.json -o canonical.json
//	normalize check data/mock/stations.json
//	normalize units
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/observability"
	"github.com/couchcryptid/refet-weather-etl/internal/units"
)

// globals are bound into every subcommand's Run.
type globals struct {
	ctx    context.Context
	logger *slog.Logger
	stdout io.Writer
}

type cli struct {
	LogLevel  string `help:"Log level." default:"warn" env:"LOG_LEVEL"`
	LogFormat string `help:"Log format." default:"text" env:"LOG_FORMAT"`

	Run   runCmd   `cmd:"" help:"Normalize station payloads into canonical records."`
	Check checkCmd `cmd:"" help:"Validate station payloads and report every failing station."`
	Units unitsCmd `cmd:"" help:"List recognized unit abbreviations."`
}

type runCmd struct {
	Input    string `arg:"" type:"existingfile" help:"JSON array of station payloads."`
	Output   string `short:"o" type:"path" help:"Write canonical JSON here instead of stdout."`
	FailFast bool   `default:"true" negatable:"" help:"Abort on the first failing station."`
	Workers  int    `default:"4" help:"Stations normalized concurrently."`
}

type checkCmd struct {
	Input string `arg:"" type:"existingfile" help:"JSON array of station payloads."`
}

type unitsCmd struct{}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("normalize"),
		kong.Description("Normalize weather station readings into RefET canonical units."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := &globals{
		ctx:    ctx,
		logger: observability.NewLoggerTo(os.Stderr, c.LogLevel, c.LogFormat),
		stdout: os.Stdout,
	}
	kctx.FatalIfErrorf(kctx.Run(g))
}

func (r *runCmd) Run(g *globals) error {
	payloads, err := readPayloads(r.Input)
	if err != nil {
		return err
	}

	results := normalizeAll(g.ctx, payloads, r.Workers)

	out := make([]domain.NormalizedStation, 0, len(results))
	var failed int
	for i, res := range results {
		if res.err != nil {
			if r.FailFast {
				return fmt.Errorf("payload %d: %w", i, res.err)
			}
			failed++
			g.logger.Warn("station skipped", "index", i, "error", res.err)
			continue
		}
		out = append(out, res.station)
	}

	if err := writeOutput(g.stdout, r.Output, out); err != nil {
		return err
	}
	g.logger.Info("normalization complete", "stations", len(out), "skipped", failed)
	return nil
}

func (c *checkCmd) Run(g *globals) error {
	payloads, err := readPayloads(c.Input)
	if err != nil {
		return err
	}

	results := normalizeAll(g.ctx, payloads, 1)

	var failed int
	for i, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(g.stdout, "FAIL  #%d  %v\n", i, res.err)
			continue
		}
		fmt.Fprintf(g.stdout, "ok    #%d  %s (%d records)\n", i, res.station.StationKey, len(res.station.Records))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d stations failed", failed, len(results))
	}
	fmt.Fprintf(g.stdout, "all %d stations valid\n", len(results))
	return nil
}

func (unitsCmd) Run(g *globals) error {
	tw := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tNAME\tKIND\tACCEPTED")
	for _, u := range units.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%q\n", u.Abbreviation(), u, u.Kind(), units.Abbreviations(u))
	}
	return tw.Flush()
}

// writeOutput encodes stations as indented JSON to path, or to stdout when
// path is empty.
func writeOutput(stdout io.Writer, path string, stations []domain.NormalizedStation) (err error) {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", path, cerr)
			}
		}()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stations); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readPayloads(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payloads []json.RawMessage
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parse %s: expected a JSON array of station payloads: %w", path, err)
	}
	return payloads, nil
}

type result struct {
	station domain.NormalizedStation
	err     error
}

// normalizeAll normalizes each payload, at most workers at a time, keeping
// input order.
func normalizeAll(ctx context.Context, payloads []json.RawMessage, workers int) []result {
	results := make([]result, len(payloads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, p := range payloads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result{err: err}
				return nil
			}
			st, err := domain.ParseStationPayload(domain.RawEvent{Value: p})
			if err == nil {
				results[i].station, err = domain.NormalizeStation(st)
			}
			results[i].err = err
			return nil
		})
	}
	_ = g.Wait()
	return results
}
