package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"miller-projection-service/internal/config"
	"miller-projection-service/internal/domain"
	"miller-projection-service/internal/platform/obs"
	"miller-projection-service/internal/ports"
	"miller-projection-service/internal/services"

	"github.com/spf13/pflag"
)

// millerproj prints the Miller canvas position of one coordinate.
//
//	millerproj                       # projects the configured sample (121.2120, 31.2822)
//	millerproj --lon 2.35 --lat 48.85
//	millerproj --inverse X Y         # prints [lon lat]
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			slog.Error("millerproj failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("millerproj", pflag.ContinueOnError)
	fs.Float64("lon", 121.2120, "longitude in degrees")
	fs.Float64("lat", 31.2822, "latitude in degrees")
	fs.Float64("radius", services.EarthRadius, "sphere radius")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	inverse := fs.Bool("inverse", false, "treat the two positional arguments as canvas x y and print [lon lat]")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	projector, err := services.NewMillerProjector(cfg.Projection.Radius)
	if err != nil {
		return err
	}

	ctx := obs.WithRequestID(context.Background(), "cli")

	if *inverse {
		return unproject(ctx, logger, projector, fs.Args(), stdout)
	}
	return project(ctx, logger, projector, domain.NewGeoCoordinate(cfg.Sample.Lon, cfg.Sample.Lat), stdout)
}

func project(ctx context.Context, logger *slog.Logger, projector ports.Projector, c domain.GeoCoordinate, stdout io.Writer) (err error) {
	defer obs.Time(ctx, logger, "project")(&err)

	p, err := projector.Project(c)
	if err != nil {
		return err
	}
	printPair(stdout, p.X, p.Y)
	return nil
}

func unproject(ctx context.Context, logger *slog.Logger, projector ports.Projector, args []string, stdout io.Writer) (err error) {
	defer obs.Time(ctx, logger, "unproject")(&err)

	if len(args) != 2 {
		return fmt.Errorf("unproject: --inverse needs exactly two arguments (x y), got %d", len(args))
	}
	var x, y float64
	if x, err = strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("unproject: parse x: %w", err)
	}
	if y, err = strconv.ParseFloat(args[1], 64); err != nil {
		return fmt.Errorf("unproject: parse y: %w", err)
	}

	c, err := projector.Unproject(domain.NewPlanarPoint(x, y))
	if err != nil {
		return err
	}
	printPair(stdout, c.Lon, c.Lat)
	return nil
}

func printPair(w io.Writer, a, b float64) {
	fmt.Fprintf(w, "[%s %s]\n", strconv.FormatFloat(a, 'f', -1, 64), strconv.FormatFloat(b, 'f', -1, 64))
}
