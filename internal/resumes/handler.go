package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/llm"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"doc":  {},
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/resume/:documentId", h.fetch)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	fileName := strings.TrimSpace(fileHeader.Filename)
	if _, ok := allowedExtensions[util.FileExt(fileName)]; !ok {
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "Only PDF or DOCX files are supported.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	rec, err := h.Svc.Process(c.Request.Context(), fileName, data)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	c.Set("documentId", rec.DocumentID)
	respond.JSON(c, http.StatusOK, UploadResponse{
		DocumentID: rec.DocumentID,
		Status:     "success",
	})
}

// respondUploadError maps pipeline failures onto HTTP statuses: 400 for
// client-caused input problems, 500 for extraction, LLM, and storage
// failures. The caller must retry the whole upload; nothing was persisted.
func (h *Handler) respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "Only PDF or DOCX files are supported.", nil)
	case errors.Is(err, ErrEmptyDocument):
		respond.Error(c, http.StatusBadRequest, "empty_document", "The uploaded file contains no text.", nil)
	case errors.Is(err, ErrExtraction):
		respond.Error(c, http.StatusInternalServerError, "extraction_failed", "Failed to extract text from file.", nil)
	case errors.Is(err, llm.ErrUnavailable):
		respond.Error(c, http.StatusInternalServerError, "llm_unavailable", "Resume structuring is temporarily unavailable.", nil)
	case errors.Is(err, llm.ErrMalformedOutput):
		respond.Error(c, http.StatusInternalServerError, "llm_malformed_output", "Failed to process resume.", nil)
	case errors.Is(err, ErrSchemaValidation):
		respond.Error(c, http.StatusInternalServerError, "schema_validation_failed", "Failed to process resume.", nil)
	case errors.Is(err, ErrStorageWrite):
		respond.Error(c, http.StatusInternalServerError, "storage_write_failed", "Failed to store resume.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to process resume.", nil)
	}
}

func (h *Handler) fetch(c *gin.Context) {
	documentID := c.Param("documentId")
	c.Set("documentId", documentID)

	rec, err := h.Svc.Fetch(c.Request.Context(), documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		return
	}

	respond.OK(c, rec)
}
