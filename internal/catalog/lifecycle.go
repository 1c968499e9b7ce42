package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PromoteOptions carries the operator-supplied metadata for a promotion.
// Every recognized field is enumerated here; zero values mean "not supplied"
// and fall back to the documented defaults.
type PromoteOptions struct {
	Title         string
	Description   string
	Genre         string
	BPM           int
	KeySignature  string
	Year          int
	Status        string
	Rating        *int
	Tags          []string
	Collaboration string
}

func (o *PromoteOptions) validate() error {
	if o.Rating != nil && (*o.Rating < 1 || *o.Rating > 10) {
		return fmt.Errorf("%w: rating %d out of range [1,10]", ErrValidation, *o.Rating)
	}
	if o.BPM < 0 {
		return fmt.Errorf("%w: bpm must be positive", ErrValidation)
	}
	return nil
}

// Promote moves a discovered project into the curated collection.
//
// Preconditions: the discovered record must exist and must not already be
// referenced by a curated or discarded record; violating the latter returns
// ErrStateConflict. Both terminal states are final — there is no overwrite
// path. Metadata is normalized before insert: title defaults to the detected
// title, status to "complete", year to the creation date's year, and tags
// serialize to JSON.
func (s *Store) Promote(ctx context.Context, discoveredID int64, opts PromoteOptions) (*CuratedProject, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin promote tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	source, err := discoveredForUpdate(ctx, tx, discoveredID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = source.DetectedTitle
	}
	status := strings.TrimSpace(opts.Status)
	if status == "" {
		status = DefaultCuratedStatus
	}
	year := opts.Year
	if year == 0 && !source.CreatedAt.IsZero() {
		year = source.CreatedAt.Year()
	}
	tags, err := marshalStrings(opts.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO curated_projects (
            discovered_id, title, description, genre, bpm, key_signature, year,
            status, rating, tags, collaboration, file_path, folder_path,
            daw_type, file_size_mb, created_at, curated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		discoveredID,
		title,
		nullableString(opts.Description),
		nullableString(opts.Genre),
		nullableInt(opts.BPM),
		nullableString(opts.KeySignature),
		nullableInt(year),
		status,
		nullableRating(opts.Rating),
		tags,
		nullableString(opts.Collaboration),
		source.FilePath,
		nullableString(source.FolderPath),
		string(source.Format),
		source.SizeMB,
		formatTime(source.CreatedAt),
		formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: discovered project %d already processed", ErrStateConflict, discoveredID)
		}
		return nil, fmt.Errorf("insert curated project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit promote: %w", err)
	}

	return s.GetCuratedByID(ctx, id)
}

// Discard moves a discovered project into the rejected set. The same
// preconditions as Promote apply; an empty reason is replaced by
// DefaultDiscardReason.
func (s *Store) Discard(ctx context.Context, discoveredID int64, reason string) (*DiscardedProject, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultDiscardReason
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin discard tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	source, err := discoveredForUpdate(ctx, tx, discoveredID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO discarded_projects (
            discovered_id, reason, file_path, detected_title, daw_type, discarded_at
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		discoveredID,
		reason,
		source.FilePath,
		source.DetectedTitle,
		string(source.Format),
		formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: discovered project %d already processed", ErrStateConflict, discoveredID)
		}
		return nil, fmt.Errorf("insert discarded project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit discard: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+discardedColumns+` FROM discarded_projects WHERE id = ?`, id)
	discarded, err := scanDiscarded(row)
	if err != nil {
		return nil, fmt.Errorf("get discarded project: %w", err)
	}
	return discarded, nil
}

// discoveredForUpdate fetches the discovered record inside the transaction
// and verifies it has not been processed yet.
func discoveredForUpdate(ctx context.Context, tx *sql.Tx, id int64) (*DiscoveredProject, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+discoveredColumns+` FROM discovered_projects WHERE id = ?`, id)
	source, err := scanDiscovered(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: discovered project %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get discovered project: %w", err)
	}

	var processed int
	err = tx.QueryRowContext(
		ctx,
		`SELECT (SELECT COUNT(1) FROM curated_projects WHERE discovered_id = ?) +
                (SELECT COUNT(1) FROM discarded_projects WHERE discovered_id = ?)`,
		id, id,
	).Scan(&processed)
	if err != nil {
		return nil, fmt.Errorf("check lifecycle state: %w", err)
	}
	if processed > 0 {
		return nil, fmt.Errorf("%w: discovered project %d already processed", ErrStateConflict, id)
	}
	return source, nil
}
