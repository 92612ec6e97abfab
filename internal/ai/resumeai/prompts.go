package resumeai

// jsonSchema is the structure both prompts instruct the model to emit.
const jsonSchema = `{
  "name": "string | null",
  "email": "string | null",
  "phone": "string | null",
  "linkedin_url": "string | null",
  "portfolio_url": "string | null",
  "summary": "string | null",
  "work_experience": [
    {
      "role": "string",
      "company": "string",
      "duration": "string",
      "description": ["string"]
    }
  ],
  "education": [
    {
      "degree": "string",
      "institution": "string",
      "graduation_year": "string"
    }
  ],
  "technical_skills": ["string"],
  "soft_skills": ["string"],
  "projects": [
    {
      "title": "string",
      "description": "string",
      "technologies": ["string"]
    }
  ],
  "certifications": ["string"],
  "resume_rating": "number (1-10)",
  "improvement_areas": "string",
  "upskill_suggestions": ["string"]
}`

const systemPrompt = `You are an expert technical recruiter and career coach.`

const analyzePromptTemplate = `Analyze the following resume text and extract the details into a valid JSON object.

Important Instructions:
- Only output the JSON object. Do not include any text, explanation, or markdown.
- Ensure all fields are included, even if they are null or empty arrays.
- Keep the JSON strictly valid (double quotes, no trailing commas).
- Summaries should be concise but meaningful.
- For skills, separate technical and soft skills clearly.
- Resume rating should be a number from 1 to 10.

Resume Text:
"""
%s
"""

JSON Schema:
%s`

const improvePromptTemplate = `Based on the current resume data and improvement suggestions, provide an improved version of the resume content.

Important Instructions:
- Only output the JSON object. Do not include any text, explanation, or markdown.
- Keep the JSON strictly valid (double quotes, no trailing commas).
- Improve the content based on the current improvement areas and upskill suggestions.
- Enhance descriptions, add missing skills, improve project descriptions.
- Increase the resume rating if improvements are made.
- Provide new improvement areas and upskill suggestions for the improved version.

Current Resume Data:
%s

JSON Schema (return improved version):
%s`
