// Package resumeapi exposes the resume operations over HTTP.
package resumeapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume/resumesrv"
)

type ResumeHandlers struct {
	service *resumesrv.Service
}

func NewResumeHandlers(service *resumesrv.Service) *ResumeHandlers {
	return &ResumeHandlers{service: service}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App) {
	resumes := app.Group("/resumes")

	resumes.Post("/upload", h.UploadResume)      // Upload + analyze
	resumes.Get("/", h.ListResumes)              // History view
	resumes.Get("/:id", h.GetResume)             // Full record
	resumes.Put("/:id/improve", h.ImproveResume) // AI improvement
	resumes.Delete("/:id", h.DeleteResume)       // Delete
}

// UploadResume accepts a multipart document, analyzes it and stores the
// result.
// POST /resumes/upload
func (h *ResumeHandlers) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return resume.ErrNoFile()
	}

	if file.Size > resume.MaxUploadSize {
		return resume.ErrFileTooLarge().WithDetail("size", file.Size)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != resume.MIMEPDF && contentType != resume.MIMEDOCX {
		return resume.ErrInvalidFileType().WithDetail("content_type", contentType)
	}

	src, err := file.Open()
	if err != nil {
		return resume.ErrExtractionFailed(err).WithDetail("file_name", file.Filename)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return resume.ErrExtractionFailed(err).WithDetail("file_name", file.Filename)
	}

	stored, err := h.service.UploadAndAnalyze(c.Context(), data, file.Filename)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resume.ToUploadResponse(stored))
}

// ListResumes returns all stored records, newest first.
// GET /resumes
func (h *ResumeHandlers) ListResumes(c *fiber.Ctx) error {
	summaries, err := h.service.ListResumes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resume.ToListResponse(summaries))
}

// GetResume returns one full record.
// GET /resumes/:id
func (h *ResumeHandlers) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	record, err := h.service.GetResume(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resume.ToDetailResponse(record))
}

// ImproveResume runs the AI improvement flow and returns the merged
// analysis.
// PUT /resumes/:id/improve
func (h *ResumeHandlers) ImproveResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	record, err := h.service.ImproveResume(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(resume.ToImproveResponse(record.Analysis))
}

// DeleteResume removes a record.
// DELETE /resumes/:id
func (h *ResumeHandlers) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteResume(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(resume.ToDeleteResponse())
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, resume.ErrInvalidID().WithDetail("id", c.Params("id"))
	}
	return int64(id), nil
}
