package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	domainerrors "streaming-service.backend/internal/domain/errors"
)

// DefaultNullToken marks an absent value in the reference catalog
const DefaultNullToken = `\N`

// Column names expected in the catalog header
const (
	ColumnTitle           = "title"
	ColumnDirector        = "director"
	ColumnReleaseYear     = "release_year"
	ColumnDurationMinutes = "duration_minutes"
	ColumnIMDbRating      = "imdb_rating"
	ColumnGenres          = "genres"
)

// Record is one catalog row keyed by header column
type Record struct {
	Row    int
	Fields map[string]string
}

// Get returns the raw value of a column and whether the column was present
func (r Record) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// Title returns the trimmed title or a placeholder for logging
func (r Record) Title() string {
	if v, ok := r.Fields[ColumnTitle]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return "Unknown"
}

// Catalog is an in-memory reference movie catalog
type Catalog struct {
	Records   []Record
	NullToken string
}

// Len returns the number of records
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// IsNull reports whether a raw value is the null sentinel
func (c *Catalog) IsNull(v string) bool {
	return v == c.nullToken()
}

func (c *Catalog) nullToken() string {
	if c == nil || c.NullToken == "" {
		return DefaultNullToken
	}
	return c.NullToken
}

var openFile = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Load reads a CSV catalog with a header row from path
func Load(path, nullToken string) (*Catalog, error) {
	f, err := openFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domainerrors.ErrMissingSource, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Read(f, nullToken)
}

// Read parses a CSV catalog with a header row.
// Rows shorter than the header keep only the columns they have.
func Read(r io.Reader, nullToken string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{NullToken: nullToken}, nil
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	c := &Catalog{NullToken: nullToken}
	row := 1
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", row+1, err)
		}
		row++

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(values) {
				fields[col] = values[i]
			}
		}
		c.Records = append(c.Records, Record{Row: row, Fields: fields})
	}
	return c, nil
}
