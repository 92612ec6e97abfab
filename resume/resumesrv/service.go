// Package resumesrv orchestrates the resume operations over the extractor,
// analyzer and repository ports.
package resumesrv

import (
	"context"
	"errors"
	"time"

	"github.com/Sandeep-456/Deepkalrity-assignment/internal/docext"
	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/logx"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
)

type Service struct {
	repo      resume.Repository
	analyzer  resume.Analyzer
	extractor resume.Extractor
	aiTimeout time.Duration
}

func NewService(
	repo resume.Repository,
	analyzer resume.Analyzer,
	extractor resume.Extractor,
	aiTimeout time.Duration,
) *Service {
	return &Service{
		repo:      repo,
		analyzer:  analyzer,
		extractor: extractor,
		aiTimeout: aiTimeout,
	}
}

// UploadAndAnalyze extracts text from the document, analyzes it and stores
// the record. Nothing is persisted unless both extraction and analysis
// succeed.
func (s *Service) UploadAndAnalyze(ctx context.Context, data []byte, fileName string) (*resume.Resume, error) {
	text, err := s.extractor.Extract(data, fileName)
	if err != nil {
		switch {
		case errors.Is(err, docext.ErrUnsupportedType):
			return nil, resume.ErrInvalidFileType()
		case errors.Is(err, docext.ErrNoText):
			return nil, resume.ErrEmptyDocument()
		default:
			return nil, resume.ErrExtractionFailed(err).WithDetail("file_name", fileName)
		}
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	analysis, err := s.analyzer.Analyze(aiCtx, text)
	if err != nil {
		return nil, resume.ErrAnalysisFailed(err).WithDetail("file_name", fileName)
	}
	analysis.NormalizeLists()

	model := &resume.Resume{
		FileName: fileName,
		Analysis: *analysis,
	}
	if err := s.repo.Create(ctx, model); err != nil {
		return nil, err
	}

	logx.Infof("analyzed and stored resume %d (%s)", model.ID, model.FileName)
	return model, nil
}

// ListResumes returns the history view, newest upload first.
func (s *Service) ListResumes(ctx context.Context) ([]resume.Summary, error) {
	return s.repo.ListSummaries(ctx)
}

// GetResume fetches one full record.
func (s *Service) GetResume(ctx context.Context, id int64) (*resume.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

// ImproveResume asks the model for a refined analysis of a stored record,
// merges it with the current one field by field and persists the result.
func (s *Service) ImproveResume(ctx context.Context, id int64) (*resume.Resume, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	improved, err := s.analyzer.Improve(aiCtx, current.Analysis)
	if err != nil {
		return nil, resume.ErrImprovementFailed(err).WithDetail("resume_id", id)
	}

	merged := mergeAnalyses(*improved, current.Analysis)
	if err := s.repo.Update(ctx, id, merged); err != nil {
		return nil, err
	}

	logx.Infof("improved resume %d", id)
	current.Analysis = merged
	return current, nil
}

// DeleteResume removes a record.
func (s *Service) DeleteResume(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logx.Infof("deleted resume %d", id)
	return nil
}
