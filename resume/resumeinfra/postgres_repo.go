// Package resumeinfra provides the Postgres adapter for the resume store.
package resumeinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/logx"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
)

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

const resumeColumns = `
	id, file_name, uploaded_at,
	name, email, phone, linkedin_url, portfolio_url, summary,
	work_experience, education, technical_skills, soft_skills,
	projects, certifications, resume_rating, improvement_areas,
	upskill_suggestions`

// Create inserts a new record and fills in the generated ID and timestamp.
func (r *PostgresResumeRepository) Create(ctx context.Context, model *resume.Resume) error {
	query := `
		INSERT INTO resumes (
			file_name,
			name, email, phone, linkedin_url, portfolio_url, summary,
			work_experience, education, technical_skills, soft_skills,
			projects, certifications, resume_rating, improvement_areas,
			upskill_suggestions
		) VALUES (
			$1,
			$2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15,
			$16
		)
		RETURNING id, uploaded_at`

	cols, err := marshalAnalysis(model.Analysis)
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "marshal")
	}

	row := r.db.QueryRowxContext(ctx, query,
		model.FileName,
		model.Name, model.Email, model.Phone, model.LinkedinURL, model.PortfolioURL, model.Summary,
		cols.workExperience, cols.education, cols.technicalSkills, cols.softSkills,
		cols.projects, cols.certifications, model.ResumeRating, model.ImprovementAreas,
		cols.upskillSuggestions,
	)
	if err := row.Scan(&model.ID, &model.UploadedAt); err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "insert")
	}

	logx.Debugf("stored resume %d (%s)", model.ID, model.FileName)
	return nil
}

// ListSummaries returns the history projection, newest upload first.
func (r *PostgresResumeRepository) ListSummaries(ctx context.Context) ([]resume.Summary, error) {
	query := `
		SELECT id, file_name, uploaded_at, name, email, resume_rating
		FROM resumes
		ORDER BY uploaded_at DESC, id DESC`

	summaries := []resume.Summary{}
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, resume.ErrStoreFailed(err).WithDetail("operation", "list")
	}
	return summaries, nil
}

// GetByID fetches a full record.
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id int64) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	var row resumeRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
		}
		return nil, resume.ErrStoreFailed(err).WithDetail("operation", "get")
	}
	return row.ToDomain(), nil
}

// Update replaces all analysis fields of an existing record.
func (r *PostgresResumeRepository) Update(ctx context.Context, id int64, a resume.Analysis) error {
	query := `
		UPDATE resumes SET
			name = $2, email = $3, phone = $4, linkedin_url = $5,
			portfolio_url = $6, summary = $7,
			work_experience = $8, education = $9, technical_skills = $10,
			soft_skills = $11, projects = $12, certifications = $13,
			resume_rating = $14, improvement_areas = $15,
			upskill_suggestions = $16
		WHERE id = $1`

	cols, err := marshalAnalysis(a)
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "marshal")
	}

	result, err := r.db.ExecContext(ctx, query,
		id,
		a.Name, a.Email, a.Phone, a.LinkedinURL,
		a.PortfolioURL, a.Summary,
		cols.workExperience, cols.education, cols.technicalSkills,
		cols.softSkills, cols.projects, cols.certifications,
		a.ResumeRating, a.ImprovementAreas,
		cols.upskillSuggestions,
	)
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "update")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "update")
	}
	if affected == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	return nil
}

// Delete removes a record.
func (r *PostgresResumeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "delete")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return resume.ErrStoreFailed(err).WithDetail("operation", "delete")
	}
	if affected == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}

	logx.Debugf("deleted resume %d", id)
	return nil
}
