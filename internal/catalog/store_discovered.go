package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cratedig/internal/daw"
)

const discoveredColumns = "id, file_path, folder_path, daw_type, detected_title, file_size_mb, created_at, modified_at, discovered_at, extra_files, notes"

// unprocessedFilter keeps only discovered rows not yet referenced by a
// curated or discarded record.
const unprocessedFilter = `id NOT IN (SELECT discovered_id FROM curated_projects WHERE discovered_id IS NOT NULL)
  AND id NOT IN (SELECT discovered_id FROM discarded_projects WHERE discovered_id IS NOT NULL)`

// InsertDiscovered adds a discovery to the catalog, setting DiscoveredAt and
// the assigned ID on the passed record. Inserting a path that already exists
// returns ErrAlreadyExists; re-scanning a directory is expected to produce
// these and callers report them as informational.
func (s *Store) InsertDiscovered(ctx context.Context, project *DiscoveredProject) error {
	if project == nil {
		return errors.New("project is nil")
	}
	if strings.TrimSpace(project.FilePath) == "" {
		return fmt.Errorf("%w: file path is required", ErrValidation)
	}

	extraFiles, err := marshalStrings(project.ExtraFiles)
	if err != nil {
		return err
	}

	project.DiscoveredAt = time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO discovered_projects (
            file_path, folder_path, daw_type, detected_title, file_size_mb,
            created_at, modified_at, discovered_at, extra_files, notes
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.FilePath,
		nullableString(project.FolderPath),
		string(project.Format),
		project.DetectedTitle,
		project.SizeMB,
		formatTime(project.CreatedAt),
		formatTime(project.ModifiedAt),
		formatTime(project.DiscoveredAt),
		extraFiles,
		nullableString(project.Notes),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, project.FilePath)
		}
		return fmt.Errorf("insert discovered project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	project.ID = id
	return nil
}

// GetDiscoveredByID fetches a discovered record by identifier.
func (s *Store) GetDiscoveredByID(ctx context.Context, id int64) (*DiscoveredProject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+discoveredColumns+` FROM discovered_projects WHERE id = ?`, id)
	project, err := scanDiscovered(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: discovered project %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get discovered project: %w", err)
	}
	return project, nil
}

// FindDiscoveredByTitle returns the most recently discovered record whose
// detected title contains the given fragment.
func (s *Store) FindDiscoveredByTitle(ctx context.Context, fragment string) (*DiscoveredProject, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+discoveredColumns+` FROM discovered_projects
         WHERE detected_title LIKE ?
         ORDER BY discovered_at DESC, id DESC LIMIT 1`,
		"%"+fragment+"%",
	)
	project, err := scanDiscovered(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: discovered project matching %q", ErrNotFound, fragment)
	}
	if err != nil {
		return nil, fmt.Errorf("find discovered by title: %w", err)
	}
	return project, nil
}

// ListDiscovered returns unprocessed discovered projects, newest first.
// Records already promoted or discarded are excluded; the full set remains
// available through Export.
func (s *Store) ListDiscovered(ctx context.Context, opts ListOptions) ([]*DiscoveredProject, error) {
	opts = opts.normalized()

	query := `SELECT ` + discoveredColumns + ` FROM discovered_projects WHERE ` + unprocessedFilter
	args := []any{}
	if opts.Format != "" {
		query += ` AND daw_type LIKE ?`
		args = append(args, "%"+opts.Format+"%")
	}
	query += ` ORDER BY discovered_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list discovered projects: %w", err)
	}
	defer rows.Close()

	var projects []*DiscoveredProject
	for rows.Next() {
		project, err := scanDiscovered(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// FindProject resolves an identifier that is either a numeric id or a title
// fragment. Numeric ids try the discovered set first, then curated. Title
// fragments do the same; within each set the most recent match wins.
func (s *Store) FindProject(ctx context.Context, identifier string) (*ProjectDetails, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrNotFound)
	}

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		if project, err := s.GetDiscoveredByID(ctx, id); err == nil {
			return &ProjectDetails{Source: "discovered", Discovered: project}, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if project, err := s.GetCuratedByID(ctx, id); err == nil {
			return &ProjectDetails{Source: "curated", Curated: project}, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
	}

	if project, err := s.FindDiscoveredByTitle(ctx, identifier); err == nil {
		return &ProjectDetails{Source: "discovered", Discovered: project}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if project, err := s.FindCuratedByTitle(ctx, identifier); err == nil {
		return &ProjectDetails{Source: "curated", Curated: project}, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("%w: project matching %q", ErrNotFound, identifier)
}

func scanDiscovered(scanner interface{ Scan(dest ...any) error }) (*DiscoveredProject, error) {
	var (
		id            int64
		filePath      string
		folderPath    sql.NullString
		dawType       string
		detectedTitle string
		sizeMB        sql.NullFloat64
		createdRaw    sql.NullString
		modifiedRaw   sql.NullString
		discoveredRaw sql.NullString
		extraFiles    sql.NullString
		notes         sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&filePath,
		&folderPath,
		&dawType,
		&detectedTitle,
		&sizeMB,
		&createdRaw,
		&modifiedRaw,
		&discoveredRaw,
		&extraFiles,
		&notes,
	); err != nil {
		return nil, err
	}

	project := &DiscoveredProject{
		ID:            id,
		FilePath:      filePath,
		FolderPath:    folderPath.String,
		Format:        daw.Type(dawType),
		DetectedTitle: detectedTitle,
		SizeMB:        sizeMB.Float64,
		ExtraFiles:    unmarshalStrings(extraFiles),
		Notes:         notes.String,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		project.CreatedAt = created
	}
	if modified, err := parseTimeString(modifiedRaw.String); err == nil {
		project.ModifiedAt = modified
	}
	if discovered, err := parseTimeString(discoveredRaw.String); err == nil {
		project.DiscoveredAt = discovered
	}
	return project, nil
}
