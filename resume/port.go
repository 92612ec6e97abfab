package resume

import "context"

// Repository persists resume records.
type Repository interface {
	// Create stores a new record and fills in its ID and UploadedAt.
	Create(ctx context.Context, r *Resume) error
	// ListSummaries returns all records newest-first, projected for the
	// history view.
	ListSummaries(ctx context.Context) ([]Summary, error)
	// GetByID fetches a full record.
	GetByID(ctx context.Context, id int64) (*Resume, error)
	// Update replaces the analysis fields of an existing record.
	Update(ctx context.Context, id int64, a Analysis) error
	// Delete removes a record.
	Delete(ctx context.Context, id int64) error
}

// Analyzer produces structured analyses from resume text.
type Analyzer interface {
	// Analyze extracts the structured analysis from raw resume text.
	Analyze(ctx context.Context, text string) (*Analysis, error)
	// Improve generates a refined analysis from the stored one.
	Improve(ctx context.Context, current Analysis) (*Analysis, error)
}

// Extractor converts uploaded documents to plain text.
type Extractor interface {
	Extract(data []byte, fileName string) (string, error)
}
