// Package resume holds the domain model for analyzed resumes: the stored
// record, the structured analysis the model produces, and the ports the
// service layer depends on.
package resume

import "time"

// MaxUploadSize caps the accepted document size.
const MaxUploadSize = 10 * 1024 * 1024

// MIME types accepted on upload.
const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Resume is a stored, analyzed resume record.
type Resume struct {
	ID         int64     `db:"id" json:"id"`
	FileName   string    `db:"file_name" json:"file_name"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`

	Analysis
}

// Analysis is the structured output of the model for one resume. Scalar
// fields are pointers so an absent value survives the round trip through
// the database and the merge policy can tell "missing" from "empty".
type Analysis struct {
	Name               *string          `json:"name"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	LinkedinURL        *string          `json:"linkedin_url"`
	PortfolioURL       *string          `json:"portfolio_url"`
	Summary            *string          `json:"summary"`
	WorkExperience     []WorkExperience `json:"work_experience"`
	Education          []Education      `json:"education"`
	TechnicalSkills    []string         `json:"technical_skills"`
	SoftSkills         []string         `json:"soft_skills"`
	Projects           []Project        `json:"projects"`
	Certifications     []string         `json:"certifications"`
	ResumeRating       *int             `json:"resume_rating"`
	ImprovementAreas   *string          `json:"improvement_areas"`
	UpskillSuggestions []string         `json:"upskill_suggestions"`
}

type WorkExperience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Summary is the list-view projection of a record.
type Summary struct {
	ID           int64     `db:"id" json:"id"`
	FileName     string    `db:"file_name" json:"file_name"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
	Name         *string   `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email"`
	ResumeRating *int      `db:"resume_rating" json:"resume_rating"`
}

// NormalizeLists replaces nil list fields with empty slices so encoded
// records always carry arrays, never null.
func (a *Analysis) NormalizeLists() {
	if a.WorkExperience == nil {
		a.WorkExperience = []WorkExperience{}
	}
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.TechnicalSkills == nil {
		a.TechnicalSkills = []string{}
	}
	if a.SoftSkills == nil {
		a.SoftSkills = []string{}
	}
	if a.Projects == nil {
		a.Projects = []Project{}
	}
	if a.Certifications == nil {
		a.Certifications = []string{}
	}
	if a.UpskillSuggestions == nil {
		a.UpskillSuggestions = []string{}
	}
}

// RatingValid reports whether the rating is present and within bounds.
func (a *Analysis) RatingValid() bool {
	return a.ResumeRating != nil && *a.ResumeRating >= 1 && *a.ResumeRating <= 10
}
