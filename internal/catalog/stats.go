package catalog

import (
	"context"
	"fmt"
)

// FormatCount pairs a DAW type with a record count.
type FormatCount struct {
	Format string
	Count  int
}

// Stats aggregates catalog state for the stats command.
type Stats struct {
	Discovered  int
	Curated     int
	Discarded   int
	Unprocessed int
	// CuratedByFormat breaks curated records down per DAW, ordered by
	// count descending.
	CuratedByFormat []FormatCount
	// CuratedSizeMB is the cumulative size of curated project files.
	CuratedSizeMB float64
}

// Stats returns counts across the three record sets.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(1) FROM discovered_projects`, &stats.Discovered},
		{`SELECT COUNT(1) FROM curated_projects`, &stats.Curated},
		{`SELECT COUNT(1) FROM discarded_projects`, &stats.Discarded},
		{`SELECT COUNT(1) FROM discovered_projects WHERE ` + unprocessedFilter, &stats.Unprocessed},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("catalog stats: %w", err)
		}
	}

	if err := s.db.QueryRowContext(
		ctx, `SELECT COALESCE(SUM(file_size_mb), 0) FROM curated_projects`,
	).Scan(&stats.CuratedSizeMB); err != nil {
		return Stats{}, fmt.Errorf("curated size: %w", err)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT daw_type, COUNT(1) FROM curated_projects GROUP BY daw_type ORDER BY COUNT(1) DESC, daw_type`,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("curated format breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fc FormatCount
		if err := rows.Scan(&fc.Format, &fc.Count); err != nil {
			return Stats{}, err
		}
		stats.CuratedByFormat = append(stats.CuratedByFormat, fc)
	}
	return stats, rows.Err()
}
