package resumeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/errx"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
	"github.com/Sandeep-456/Deepkalrity-assignment/resume/resumesrv"
)

type stubRepo struct {
	records map[int64]*resume.Resume
	nextID  int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: map[int64]*resume.Resume{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, r *resume.Resume) error {
	r.ID = s.nextID
	r.UploadedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.records[r.ID] = r
	s.nextID++
	return nil
}

func (s *stubRepo) ListSummaries(context.Context) ([]resume.Summary, error) {
	summaries := []resume.Summary{}
	for _, r := range s.records {
		summaries = append(summaries, resume.Summary{
			ID:           r.ID,
			FileName:     r.FileName,
			UploadedAt:   r.UploadedAt,
			Name:         r.Name,
			Email:        r.Email,
			ResumeRating: r.ResumeRating,
		})
	}
	return summaries, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*resume.Resume, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, resume.ErrResumeNotFound()
	}
	return r, nil
}

func (s *stubRepo) Update(_ context.Context, id int64, a resume.Analysis) error {
	r, ok := s.records[id]
	if !ok {
		return resume.ErrResumeNotFound()
	}
	r.Analysis = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.records[id]; !ok {
		return resume.ErrResumeNotFound()
	}
	delete(s.records, id)
	return nil
}

type stubAnalyzer struct {
	analysis resume.Analysis
	err      error
}

func (s *stubAnalyzer) Analyze(context.Context, string) (*resume.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	copied := s.analysis
	return &copied, nil
}

func (s *stubAnalyzer) Improve(context.Context, resume.Analysis) (*resume.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	copied := s.analysis
	return &copied, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract([]byte, string) (string, error) {
	return s.text, s.err
}

func newTestApp(repo resume.Repository, analyzer resume.Analyzer, extractor resume.Extractor) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *errx.Error
			if errors.As(err, &appErr) {
				return c.Status(appErr.HTTPStatus).JSON(appErr.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	svc := resumesrv.NewService(repo, analyzer, extractor, time.Minute)
	NewResumeHandlers(svc).RegisterRoutes(app)
	return app
}

func multipartUpload(t *testing.T, field, fileName, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, into))
}

func TestUploadResume(t *testing.T) {
	name := "Ada Lovelace"
	rating := 8
	repo := newStubRepo()
	analyzer := &stubAnalyzer{analysis: resume.Analysis{Name: &name, ResumeRating: &rating}}

	app := newTestApp(repo, analyzer, &stubExtractor{text: "resume text"})

	req := multipartUpload(t, "resume", "ada.pdf", resume.MIMEPDF, []byte("%PDF-1.4"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body resume.UploadResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.ID)
	assert.Equal(t, "ada.pdf", body.Data.FileName)
	assert.Equal(t, "Ada Lovelace", *body.Data.Analysis.Name)
}

func TestUploadMissingFile(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "value"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errx.HTTPResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, errx.Code("RESUME_NO_FILE"), body.Code)
}

func TestUploadBadContentType(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	req := multipartUpload(t, "resume", "notes.txt", "text/plain", []byte("hello"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errx.HTTPResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, errx.Code("RESUME_INVALID_FILE_TYPE"), body.Code)
}

func TestUploadAnalysisFailure(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{err: errors.New("model down")}, &stubExtractor{text: "text"})

	req := multipartUpload(t, "resume", "ada.pdf", resume.MIMEPDF, []byte("%PDF-1.4"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body errx.HTTPResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, errx.Code("RESUME_ANALYSIS_FAILED"), body.Code)
}

func TestListResumes(t *testing.T) {
	name := "Ada"
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &resume.Resume{
		FileName: "ada.pdf",
		Analysis: resume.Analysis{Name: &name},
	})

	app := newTestApp(repo, &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resume.ListResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ada.pdf", body.Data[0].FileName)
}

func TestListResumesEmpty(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resume.ListResponse
	decodeBody(t, resp, &body)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestGetResume(t *testing.T) {
	name := "Ada"
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &resume.Resume{
		FileName: "ada.pdf",
		Analysis: resume.Analysis{Name: &name},
	})

	app := newTestApp(repo, &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resume.DetailResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Ada", *body.Data.Name)
}

func TestGetResumeNotFound(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/99", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetResumeInvalidID(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/resumes/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errx.HTTPResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, errx.Code("RESUME_INVALID_ID"), body.Code)
}

func TestImproveResume(t *testing.T) {
	oldSummary := "old"
	newSummary := "improved"
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &resume.Resume{
		FileName: "ada.pdf",
		Analysis: resume.Analysis{Summary: &oldSummary},
	})
	analyzer := &stubAnalyzer{analysis: resume.Analysis{Summary: &newSummary}}

	app := newTestApp(repo, analyzer, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/resumes/1/improve", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resume.ImproveResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "improved", *body.Data.Summary)
}

func TestImproveResumeNotFound(t *testing.T) {
	app := newTestApp(newStubRepo(), &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/resumes/5/improve", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteResume(t *testing.T) {
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &resume.Resume{FileName: "ada.pdf"})

	app := newTestApp(repo, &stubAnalyzer{}, &stubExtractor{})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/resumes/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body resume.DeleteResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)

	// A second delete is a 404.
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/resumes/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
