package generator

import (
	"streaming-service.backend/internal/catalog"
	"streaming-service.backend/internal/domain/entities"
)

// DatasetOptions sizes a generation run. Zero per-user counts use the weighted draws.
type DatasetOptions struct {
	Users           int
	Movies          int
	PaymentsPerUser int
	DevicesPerUser  int
}

// Dataset runs users, payment methods, movies, devices and viewing history in dependency order.
// Only an empty catalog aborts the run; skipped catalog rows are reported as warnings.
func (g *Generator) Dataset(c *catalog.Catalog, opts DatasetOptions) (*entities.Dataset, SampleReport, error) {
	users := g.Users(opts.Users, make(map[string]struct{}, opts.Users))
	payments := g.PaymentMethods(users, opts.PaymentsPerUser)

	movies, report, err := g.SampleMovies(c, opts.Movies)
	if err != nil {
		return nil, report, err
	}

	devices := g.Devices(users, opts.DevicesPerUser)
	history := g.ViewingHistory(users, movies, devices)

	return &entities.Dataset{
		Seed:           g.seed,
		GeneratedAt:    g.now,
		Users:          users,
		PaymentMethods: payments,
		Movies:         movies,
		Devices:        devices,
		ViewingHistory: history,
		Warnings:       report.Warnings(),
		SkippedRows:    len(report.Skipped),
	}, report, nil
}
