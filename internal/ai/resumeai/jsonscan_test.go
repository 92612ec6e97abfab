package resumeai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"name":"Ada"}`,
			want:  `{"name":"Ada"}`,
		},
		{
			name:  "code fence wrapping",
			input: "```json\n{\"name\":\"Ada\"}\n```",
			want:  `{"name":"Ada"}`,
		},
		{
			name:  "leading and trailing prose",
			input: `Here is the analysis: {"name":"Ada"} Hope this helps!`,
			want:  `{"name":"Ada"}`,
		},
		{
			name:  "nested objects",
			input: `{"a":{"b":{"c":1}},"d":2}`,
			want:  `{"a":{"b":{"c":1}},"d":2}`,
		},
		{
			name:  "braces inside strings",
			input: `{"summary":"worked on {legacy} systems"}`,
			want:  `{"summary":"worked on {legacy} systems"}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"summary":"said \"use {braces}\" often"}`,
			want:  `{"summary":"said \"use {braces}\" often"}`,
		},
		{
			name:  "first of two objects",
			input: `{"a":1} {"b":2}`,
			want:  `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONObjectErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty reply", input: ""},
		{name: "no object at all", input: "I could not analyze this resume."},
		{name: "unbalanced object", input: `{"name":"Ada"`},
		{name: "only closing brace", input: `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractJSONObject(tt.input)
			assert.ErrorIs(t, err, ErrNoJSONObject)
		})
	}
}

func TestDecodeAnalysis(t *testing.T) {
	content := "```json\n" + `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"resume_rating": 8,
		"technical_skills": ["Go", "SQL"],
		"work_experience": [
			{"role": "Engineer", "company": "Analytical Engines", "duration": "2019-2023", "description": ["built things"]}
		]
	}` + "\n```"

	analysis, err := decodeAnalysis(content)
	require.NoError(t, err)

	require.NotNil(t, analysis.Name)
	assert.Equal(t, "Ada Lovelace", *analysis.Name)
	require.NotNil(t, analysis.ResumeRating)
	assert.Equal(t, 8, *analysis.ResumeRating)
	assert.Equal(t, []string{"Go", "SQL"}, analysis.TechnicalSkills)
	require.Len(t, analysis.WorkExperience, 1)
	assert.Equal(t, "Engineer", analysis.WorkExperience[0].Role)

	// Missing list fields come back as empty arrays, not nil.
	assert.NotNil(t, analysis.SoftSkills)
	assert.NotNil(t, analysis.Projects)
	assert.NotNil(t, analysis.Certifications)
	assert.NotNil(t, analysis.UpskillSuggestions)
	assert.NotNil(t, analysis.Education)
}

func TestDecodeAnalysisMalformed(t *testing.T) {
	_, err := decodeAnalysis(`{"resume_rating": "not a number"}`)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeAnalysisNoObject(t *testing.T) {
	_, err := decodeAnalysis("sorry, no dice")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}
