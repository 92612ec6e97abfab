package resumeinfra

import (
	"encoding/json"
	"time"

	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
)

// resumeRow represents a row from the resumes table
type resumeRow struct {
	ID                 int64     `db:"id"`
	FileName           string    `db:"file_name"`
	UploadedAt         time.Time `db:"uploaded_at"`
	Name               *string   `db:"name"`
	Email              *string   `db:"email"`
	Phone              *string   `db:"phone"`
	LinkedinURL        *string   `db:"linkedin_url"`
	PortfolioURL       *string   `db:"portfolio_url"`
	Summary            *string   `db:"summary"`
	WorkExperience     []byte    `db:"work_experience"`
	Education          []byte    `db:"education"`
	TechnicalSkills    []byte    `db:"technical_skills"`
	SoftSkills         []byte    `db:"soft_skills"`
	Projects           []byte    `db:"projects"`
	Certifications     []byte    `db:"certifications"`
	ResumeRating       *int      `db:"resume_rating"`
	ImprovementAreas   *string   `db:"improvement_areas"`
	UpskillSuggestions []byte    `db:"upskill_suggestions"`
}

// ToDomain converts a resumeRow to a resume.Resume domain model. JSONB list
// columns decode totally: a malformed or NULL column yields an empty slice,
// never an error, so one bad row cannot break reads.
func (r *resumeRow) ToDomain() *resume.Resume {
	model := &resume.Resume{
		ID:         r.ID,
		FileName:   r.FileName,
		UploadedAt: r.UploadedAt,
		Analysis: resume.Analysis{
			Name:               r.Name,
			Email:              r.Email,
			Phone:              r.Phone,
			LinkedinURL:        r.LinkedinURL,
			PortfolioURL:       r.PortfolioURL,
			Summary:            r.Summary,
			WorkExperience:     decodeList[resume.WorkExperience](r.WorkExperience),
			Education:          decodeList[resume.Education](r.Education),
			TechnicalSkills:    decodeList[string](r.TechnicalSkills),
			SoftSkills:         decodeList[string](r.SoftSkills),
			Projects:           decodeList[resume.Project](r.Projects),
			Certifications:     decodeList[string](r.Certifications),
			ResumeRating:       r.ResumeRating,
			ImprovementAreas:   r.ImprovementAreas,
			UpskillSuggestions: decodeList[string](r.UpskillSuggestions),
		},
	}
	return model
}

func decodeList[T any](data []byte) []T {
	out := []T{}
	if len(data) == 0 {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// analysisColumns marshals the JSONB list fields of an analysis for writes.
type analysisColumns struct {
	workExperience     []byte
	education          []byte
	technicalSkills    []byte
	softSkills         []byte
	projects           []byte
	certifications     []byte
	upskillSuggestions []byte
}

func marshalAnalysis(a resume.Analysis) (*analysisColumns, error) {
	a.NormalizeLists()

	cols := &analysisColumns{}
	var err error

	if cols.workExperience, err = json.Marshal(a.WorkExperience); err != nil {
		return nil, err
	}
	if cols.education, err = json.Marshal(a.Education); err != nil {
		return nil, err
	}
	if cols.technicalSkills, err = json.Marshal(a.TechnicalSkills); err != nil {
		return nil, err
	}
	if cols.softSkills, err = json.Marshal(a.SoftSkills); err != nil {
		return nil, err
	}
	if cols.projects, err = json.Marshal(a.Projects); err != nil {
		return nil, err
	}
	if cols.certifications, err = json.Marshal(a.Certifications); err != nil {
		return nil, err
	}
	if cols.upskillSuggestions, err = json.Marshal(a.UpskillSuggestions); err != nil {
		return nil, err
	}
	return cols, nil
}
