package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"cratedig/internal/daw"
)

const discardedColumns = "id, discovered_id, reason, file_path, detected_title, daw_type, discarded_at"

// ListDiscarded returns discarded projects, most recently rejected first.
func (s *Store) ListDiscarded(ctx context.Context, opts ListOptions) ([]*DiscardedProject, error) {
	opts = opts.normalized()

	query := `SELECT ` + discardedColumns + ` FROM discarded_projects`
	args := []any{}
	if opts.Format != "" {
		query += ` WHERE daw_type LIKE ?`
		args = append(args, "%"+opts.Format+"%")
	}
	query += ` ORDER BY discarded_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list discarded projects: %w", err)
	}
	defer rows.Close()

	var projects []*DiscardedProject
	for rows.Next() {
		project, err := scanDiscarded(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func scanDiscarded(scanner interface{ Scan(dest ...any) error }) (*DiscardedProject, error) {
	var (
		id            int64
		discoveredID  sql.NullInt64
		reason        sql.NullString
		filePath      string
		detectedTitle sql.NullString
		dawType       sql.NullString
		discardedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&discoveredID,
		&reason,
		&filePath,
		&detectedTitle,
		&dawType,
		&discardedRaw,
	); err != nil {
		return nil, err
	}

	project := &DiscardedProject{
		ID:            id,
		DiscoveredID:  discoveredID.Int64,
		Reason:        reason.String,
		FilePath:      filePath,
		DetectedTitle: detectedTitle.String,
		Format:        daw.Type(dawType.String),
	}
	if discarded, err := parseTimeString(discardedRaw.String); err == nil {
		project.DiscardedAt = discarded
	}
	return project, nil
}
