package resumesrv

import "github.com/Sandeep-456/Deepkalrity-assignment/resume"

// mergeAnalyses combines an improved analysis with the stored one. The
// improved value wins unless it is absent: a nil pointer, an empty string,
// an out-of-range rating or a nil slice falls back to the stored value. A
// non-nil empty slice counts as present and replaces the stored list.
// Neither input is mutated.
func mergeAnalyses(improved, current resume.Analysis) resume.Analysis {
	merged := resume.Analysis{
		Name:               mergeString(improved.Name, current.Name),
		Email:              mergeString(improved.Email, current.Email),
		Phone:              mergeString(improved.Phone, current.Phone),
		LinkedinURL:        mergeString(improved.LinkedinURL, current.LinkedinURL),
		PortfolioURL:       mergeString(improved.PortfolioURL, current.PortfolioURL),
		Summary:            mergeString(improved.Summary, current.Summary),
		WorkExperience:     mergeList(improved.WorkExperience, current.WorkExperience),
		Education:          mergeList(improved.Education, current.Education),
		TechnicalSkills:    mergeList(improved.TechnicalSkills, current.TechnicalSkills),
		SoftSkills:         mergeList(improved.SoftSkills, current.SoftSkills),
		Projects:           mergeList(improved.Projects, current.Projects),
		Certifications:     mergeList(improved.Certifications, current.Certifications),
		ResumeRating:       mergeRating(improved.ResumeRating, current.ResumeRating),
		ImprovementAreas:   mergeString(improved.ImprovementAreas, current.ImprovementAreas),
		UpskillSuggestions: mergeList(improved.UpskillSuggestions, current.UpskillSuggestions),
	}
	merged.NormalizeLists()
	return merged
}

func mergeString(improved, current *string) *string {
	if improved != nil && *improved != "" {
		return improved
	}
	return current
}

func mergeRating(improved, current *int) *int {
	if improved != nil && *improved >= 1 && *improved <= 10 {
		return improved
	}
	return current
}

func mergeList[T any](improved, current []T) []T {
	if improved != nil {
		return improved
	}
	return current
}
