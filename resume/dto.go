package resume

import "time"

// ============================================================================
// Response DTOs
// ============================================================================

// UploadResponse - Returned after a successful upload and analysis
type UploadResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    UploadData `json:"data"`
}

type UploadData struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
	Analysis   Analysis  `json:"analysis"`
}

// ListResponse - History view payload
type ListResponse struct {
	Success bool      `json:"success"`
	Data    []Summary `json:"data"`
}

// DetailResponse - Full record payload
type DetailResponse struct {
	Success bool    `json:"success"`
	Data    *Resume `json:"data"`
}

// ImproveResponse - Merged analysis after improvement
type ImproveResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    Analysis `json:"data"`
}

// DeleteResponse - Confirmation after deletion
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Mapper Functions
// ============================================================================

// ToUploadResponse shapes a freshly stored record for the upload reply.
func ToUploadResponse(r *Resume) *UploadResponse {
	return &UploadResponse{
		Success: true,
		Message: "Resume uploaded and analyzed successfully",
		Data: UploadData{
			ID:         r.ID,
			FileName:   r.FileName,
			UploadedAt: r.UploadedAt,
			Analysis:   r.Analysis,
		},
	}
}

// ToListResponse wraps summaries for the history view. A nil slice encodes
// as an empty array.
func ToListResponse(summaries []Summary) *ListResponse {
	if summaries == nil {
		summaries = []Summary{}
	}
	return &ListResponse{Success: true, Data: summaries}
}

// ToDetailResponse wraps a full record.
func ToDetailResponse(r *Resume) *DetailResponse {
	return &DetailResponse{Success: true, Data: r}
}

// ToImproveResponse wraps the merged analysis.
func ToImproveResponse(a Analysis) *ImproveResponse {
	return &ImproveResponse{
		Success: true,
		Message: "Resume analysis improved successfully",
		Data:    a,
	}
}

// ToDeleteResponse confirms a deletion.
func ToDeleteResponse() *DeleteResponse {
	return &DeleteResponse{Success: true, Message: "Resume deleted successfully"}
}
