package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cratedig/internal/daw"
)

const curatedColumns = "id, discovered_id, title, description, genre, bpm, key_signature, year, status, rating, tags, collaboration, file_path, folder_path, daw_type, file_size_mb, created_at, curated_at"

// GetCuratedByID fetches a curated record by identifier.
func (s *Store) GetCuratedByID(ctx context.Context, id int64) (*CuratedProject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+curatedColumns+` FROM curated_projects WHERE id = ?`, id)
	project, err := scanCurated(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: curated project %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get curated project: %w", err)
	}
	return project, nil
}

// FindCuratedByTitle returns the most recently curated record whose title
// contains the given fragment.
func (s *Store) FindCuratedByTitle(ctx context.Context, fragment string) (*CuratedProject, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+curatedColumns+` FROM curated_projects
         WHERE title LIKE ?
         ORDER BY curated_at DESC, id DESC LIMIT 1`,
		"%"+fragment+"%",
	)
	project, err := scanCurated(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: curated project matching %q", ErrNotFound, fragment)
	}
	if err != nil {
		return nil, fmt.Errorf("find curated by title: %w", err)
	}
	return project, nil
}

// ListCurated returns curated projects, most recently refined first.
func (s *Store) ListCurated(ctx context.Context, opts ListOptions) ([]*CuratedProject, error) {
	opts = opts.normalized()

	query := `SELECT ` + curatedColumns + ` FROM curated_projects`
	args := []any{}
	if opts.Format != "" {
		query += ` WHERE daw_type LIKE ?`
		args = append(args, "%"+opts.Format+"%")
	}
	query += ` ORDER BY curated_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list curated projects: %w", err)
	}
	defer rows.Close()

	var projects []*CuratedProject
	for rows.Next() {
		project, err := scanCurated(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func scanCurated(scanner interface{ Scan(dest ...any) error }) (*CuratedProject, error) {
	var (
		id            int64
		discoveredID  sql.NullInt64
		title         string
		description   sql.NullString
		genre         sql.NullString
		bpm           sql.NullInt64
		keySignature  sql.NullString
		year          sql.NullInt64
		status        sql.NullString
		rating        sql.NullInt64
		tags          sql.NullString
		collaboration sql.NullString
		filePath      string
		folderPath    sql.NullString
		dawType       string
		sizeMB        sql.NullFloat64
		createdRaw    sql.NullString
		curatedRaw    sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&discoveredID,
		&title,
		&description,
		&genre,
		&bpm,
		&keySignature,
		&year,
		&status,
		&rating,
		&tags,
		&collaboration,
		&filePath,
		&folderPath,
		&dawType,
		&sizeMB,
		&createdRaw,
		&curatedRaw,
	); err != nil {
		return nil, err
	}

	project := &CuratedProject{
		ID:            id,
		DiscoveredID:  discoveredID.Int64,
		Title:         title,
		Description:   description.String,
		Genre:         genre.String,
		BPM:           int(bpm.Int64),
		KeySignature:  keySignature.String,
		Year:          int(year.Int64),
		Status:        status.String,
		Rating:        int(rating.Int64),
		Tags:          unmarshalStrings(tags),
		Collaboration: collaboration.String,
		FilePath:      filePath,
		FolderPath:    folderPath.String,
		Format:        daw.Type(dawType),
		SizeMB:        sizeMB.Float64,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		project.CreatedAt = created
	}
	if curated, err := parseTimeString(curatedRaw.String); err == nil {
		project.CuratedAt = curated
	}
	return project, nil
}
