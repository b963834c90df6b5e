package generator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
	"streaming-service.backend/internal/catalog"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
)

// SampleReport describes how a catalog sample went
type SampleReport struct {
	Requested int
	Available int
	Skipped   []*domainerrors.RecordParseError
}

// Shortfall reports whether fewer movies were available than requested
func (r SampleReport) Shortfall() bool {
	return r.Requested > r.Available
}

// Warnings renders the report as human-readable warnings
func (r SampleReport) Warnings() []string {
	var out []string
	if r.Shortfall() {
		out = append(out, fmt.Sprintf("requested %d movies, but only %d available; using all available movies", r.Requested, r.Available))
	}
	for _, s := range r.Skipped {
		out = append(out, "skipping movie: "+s.Error())
	}
	return out
}

// SampleMovies draws n distinct catalog records and normalizes them into movies.
// Rows that fail to parse are skipped without replacement, so fewer than n movies may be returned.
// Movie IDs run from 1 over the emitted rows.
func (g *Generator) SampleMovies(c *catalog.Catalog, n int) ([]entities.Movie, SampleReport, error) {
	report := SampleReport{Requested: n, Available: c.Len()}
	if c.Len() == 0 {
		return nil, report, domainerrors.ErrEmptyCatalog
	}
	if n > c.Len() {
		n = c.Len()
	}
	if n <= 0 {
		return nil, report, nil
	}

	order := g.rnd.Perm(c.Len())[:n]
	movies := make([]entities.Movie, 0, n)
	nextID := int64(1)
	for _, idx := range order {
		m, err := normalizeMovie(c, c.Records[idx])
		if err != nil {
			report.Skipped = append(report.Skipped, err)
			continue
		}
		m.ID = nextID
		nextID++
		movies = append(movies, m)
	}
	return movies, report, nil
}

func normalizeMovie(c *catalog.Catalog, rec catalog.Record) (entities.Movie, *domainerrors.RecordParseError) {
	title, _ := rec.Get(catalog.ColumnTitle)
	director, _ := rec.Get(catalog.ColumnDirector)
	m := entities.Movie{
		Title:    strings.TrimSpace(title),
		Director: strings.TrimSpace(director),
	}

	fail := func(field string, err error) *domainerrors.RecordParseError {
		return &domainerrors.RecordParseError{Row: rec.Row, Title: rec.Title(), Field: field, Err: err}
	}

	var err error
	if m.ReleaseYear, err = nullableInt(c, rec, catalog.ColumnReleaseYear); err != nil {
		return m, fail(catalog.ColumnReleaseYear, err)
	}
	if m.DurationMinutes, err = nullableInt(c, rec, catalog.ColumnDurationMinutes); err != nil {
		return m, fail(catalog.ColumnDurationMinutes, err)
	}
	if m.IMDbRating, err = nullableFloat(c, rec, catalog.ColumnIMDbRating); err != nil {
		return m, fail(catalog.ColumnIMDbRating, err)
	}
	if m.Genres, err = nullableGenres(c, rec); err != nil {
		return m, fail(catalog.ColumnGenres, err)
	}
	return m, nil
}

var errMissingColumn = errors.New("missing column")

func nullableInt(c *catalog.Catalog, rec catalog.Record, column string) (null.Int, error) {
	raw, ok := rec.Get(column)
	if !ok {
		return null.Int{}, errMissingColumn
	}
	if c.IsNull(raw) {
		return null.Int{}, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return null.Int{}, err
	}
	return null.IntFrom(v), nil
}

func nullableFloat(c *catalog.Catalog, rec catalog.Record, column string) (null.Float64, error) {
	raw, ok := rec.Get(column)
	if !ok {
		return null.Float64{}, errMissingColumn
	}
	if c.IsNull(raw) {
		return null.Float64{}, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return null.Float64{}, err
	}
	return null.Float64From(v), nil
}

// nullableGenres lowercases and trims each comma-separated genre and joins them with ", "
func nullableGenres(c *catalog.Catalog, rec catalog.Record) (null.String, error) {
	raw, ok := rec.Get(catalog.ColumnGenres)
	if !ok {
		return null.String{}, errMissingColumn
	}
	if c.IsNull(raw) {
		return null.String{}, nil
	}
	var genres []string
	for _, part := range strings.Split(raw, ",") {
		if g := strings.ToLower(strings.TrimSpace(part)); g != "" {
			genres = append(genres, g)
		}
	}
	return null.StringFrom(strings.Join(genres, ", ")), nil
}
