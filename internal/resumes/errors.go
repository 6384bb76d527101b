package resumes

import "errors"

var (
	ErrNotFound         = errors.New("resume not found")
	ErrEmptyDocument    = errors.New("the uploaded file contains no text")
	ErrSchemaValidation = errors.New("llm output is not a JSON object")
	ErrExtraction       = errors.New("text extraction failed")
	ErrStorageWrite     = errors.New("storage write failed")
)
