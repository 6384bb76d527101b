package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"resume-parser/internal/extract"
	"resume-parser/internal/llm"
	"resume-parser/internal/shared/storage/object"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/shared/util"
)

// rawTextLimit caps the extracted text retained on the record to avoid
// bloating the metadata store.
const rawTextLimit = 5000

// Service runs the upload pipeline: extract text, structure it with the LLM,
// map onto the record schema, persist the raw file and the record. Each
// upload is one synchronous pass; nothing is persisted before validation
// succeeds.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	LLM   llm.Client
}

// Process handles one uploaded file and returns the stored record.
func (s *Service) Process(ctx context.Context, fileName string, data []byte) (Record, error) {
	ext := util.FileExt(fileName)

	text, err := extract.Text(data, ext)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrEmptyDocument
	}

	telemetry.Debug("pipeline.extracted", map[string]any{
		"file_name":  fileName,
		"text_bytes": len(text),
	})

	raw, err := s.LLM.ExtractResume(ctx, text)
	if err != nil {
		return Record{}, fmt.Errorf("structure resume: %w", err)
	}

	rec, err := RecordFromRaw(raw)
	if err != nil {
		return Record{}, err
	}

	rec.DocumentID = uuid.NewString()
	rec.RawText = truncate(text, rawTextLimit)

	if _, _, _, err := s.Store.Save(ctx, rec.DocumentID, fileName, bytes.NewReader(data)); err != nil {
		return Record{}, fmt.Errorf("%w: save upload: %v", ErrStorageWrite, err)
	}
	if err := s.Repo.Put(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("%w: put record: %v", ErrStorageWrite, err)
	}

	telemetry.Info("pipeline.complete", map[string]any{
		"document_id": rec.DocumentID,
		"file_name":   fileName,
	})
	return rec, nil
}

// Fetch returns the stored record for documentID.
func (s *Service) Fetch(ctx context.Context, documentID string) (Record, error) {
	return s.Repo.Get(ctx, documentID)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
