package catalog

import (
	"context"
	"fmt"
)

// Export is the read-only bulk view of all three record sets, consumed by
// the reporting module. Slices are ordered by record id ascending.
type Export struct {
	Discovered []*DiscoveredProject
	Curated    []*CuratedProject
	Discarded  []*DiscardedProject
}

// Export reads every record in the catalog. Unlike the List operations it
// applies no pagination, no format filter, and no unprocessed filter.
func (s *Store) Export(ctx context.Context) (*Export, error) {
	export := &Export{}

	rows, err := s.db.QueryContext(ctx, `SELECT `+discoveredColumns+` FROM discovered_projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("export discovered: %w", err)
	}
	for rows.Next() {
		project, err := scanDiscovered(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		export.Discovered = append(export.Discovered, project)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `SELECT `+curatedColumns+` FROM curated_projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("export curated: %w", err)
	}
	for rows.Next() {
		project, err := scanCurated(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		export.Curated = append(export.Curated, project)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.db.QueryContext(ctx, `SELECT `+discardedColumns+` FROM discarded_projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("export discarded: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		project, err := scanDiscarded(rows)
		if err != nil {
			return nil, err
		}
		export.Discarded = append(export.Discarded, project)
	}
	return export, rows.Err()
}
