package catalog

import (
	"time"

	"cratedig/internal/daw"
)

// DiscoveredProject is a raw project file found by the discovery walker.
// Records are immutable once inserted; the file path is unique across the
// discovered set.
type DiscoveredProject struct {
	ID            int64
	FilePath      string
	FolderPath    string // empty when the project file stands alone
	Format        daw.Type
	DetectedTitle string
	SizeMB        float64
	CreatedAt     time.Time
	ModifiedAt    time.Time
	DiscoveredAt  time.Time
	ExtraFiles    []string
	Notes         string
}

// CuratedProject is a project promoted into the refined collection by an
// operator decision. Path, folder, format, size, and creation date are
// copied verbatim from the source discovered record at promotion time.
type CuratedProject struct {
	ID            int64
	DiscoveredID  int64 // 0 when provenance is unknown
	Title         string
	Description   string
	Genre         string
	BPM           int // 0 when unset
	KeySignature  string
	Year          int
	Status        string
	Rating        int // 0 when unset, otherwise 1-10
	Tags          []string
	Collaboration string
	FilePath      string
	FolderPath    string
	Format        daw.Type
	SizeMB        float64
	CreatedAt     time.Time
	CuratedAt     time.Time
}

// DiscardedProject records an operator's decision to exclude a discovered
// project, with enough copied metadata to remain meaningful on its own.
type DiscardedProject struct {
	ID            int64
	DiscoveredID  int64
	Reason        string
	FilePath      string
	DetectedTitle string
	Format        daw.Type
	DiscardedAt   time.Time
}

// DefaultDiscardReason is used when a rejection carries no explicit reason.
const DefaultDiscardReason = "Not useful"

// DefaultCuratedStatus is the status assigned when promotion supplies none.
const DefaultCuratedStatus = "complete"

// ListOptions control pagination and filtering for list queries.
type ListOptions struct {
	Limit  int
	Offset int
	// Format filters by DAW type substring, case-insensitive. Empty means
	// no filter.
	Format string
}

func (o ListOptions) normalized() ListOptions {
	if o.Limit <= 0 {
		o.Limit = 20
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

// ProjectDetails is the result of resolving an id-or-title identifier. Source
// reports which record set matched; exactly one of Discovered/Curated is set.
type ProjectDetails struct {
	Source     string // "discovered" or "curated"
	Discovered *DiscoveredProject
	Curated    *CuratedProject
}

// Title returns the display title regardless of source.
func (d *ProjectDetails) Title() string {
	if d.Curated != nil {
		return d.Curated.Title
	}
	if d.Discovered != nil {
		return d.Discovered.DetectedTitle
	}
	return ""
}

// FilePath returns the project file path regardless of source.
func (d *ProjectDetails) FilePath() string {
	if d.Curated != nil {
		return d.Curated.FilePath
	}
	if d.Discovered != nil {
		return d.Discovered.FilePath
	}
	return ""
}
