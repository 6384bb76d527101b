package resumes

// UploadResponse is the outward-facing result of a successful upload.
type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}
