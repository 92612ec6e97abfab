package resume

import (
	"net/http"

	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeResumeNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeNoFile            = ErrRegistry.Register("NO_FILE", errx.TypeValidation, http.StatusBadRequest, "No resume file uploaded")
	CodeInvalidFileType   = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Only PDF and DOCX files are supported")
	CodeFileTooLarge      = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Maximum file size is 10MB")
	CodeInvalidID         = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, http.StatusBadRequest, "Invalid resume ID")
	CodeExtractionFailed  = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from document")
	CodeEmptyDocument     = ErrRegistry.Register("EMPTY_DOCUMENT", errx.TypeInternal, http.StatusInternalServerError, "Document contains no extractable text")
	CodeAnalysisFailed    = ErrRegistry.Register("ANALYSIS_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to analyze resume")
	CodeImprovementFailed = ErrRegistry.Register("IMPROVEMENT_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to improve resume analysis")
	CodeStoreFailed       = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to access resume store")
)

// Helper functions
func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrNoFile() *errx.Error {
	return ErrRegistry.New(CodeNoFile)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrInvalidID() *errx.Error {
	return ErrRegistry.New(CodeInvalidID)
}

func ErrExtractionFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeExtractionFailed, cause)
}

func ErrEmptyDocument() *errx.Error {
	return ErrRegistry.New(CodeEmptyDocument)
}

func ErrAnalysisFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeAnalysisFailed, cause)
}

func ErrImprovementFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeImprovementFailed, cause)
}

func ErrStoreFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailed, cause)
}
