package resumes_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
	localstore "resume-parser/internal/shared/storage/object/local"
)

// stubLLM is a deterministic llm.Client substitute.
type stubLLM struct {
	raw json.RawMessage
	err error
}

func (s *stubLLM) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

// scenarioJSON is the structuring output used across the pipeline tests.
const scenarioJSON = `{"contact":{"name":"John Doe"},"skills":["Python","Go"],"education":[{"degree":"B.Sc. CS","period":"2020"}]}`

const scenarioText = "John Doe, Software Engineer, Python/Go, B.Sc. CS 2020"

func newTestApp(t *testing.T, client *stubLLM) (*gin.Engine, *resumes.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := resumes.NewMemoryRepo()
	svc := &resumes.Service{
		Store: localstore.New(t.TempDir()),
		Repo:  repo,
		LLM:   client,
	}
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"*"},
		Env:             "dev",
	}
	router := server.NewRouter(cfg, resumes.NewHandler(svc))
	return router, repo
}

// buildDocx assembles a minimal OOXML package with one paragraph per argument.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(fmt.Sprintf("<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p))
	}
	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s</w:body></w:document>`, body.String())

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": document,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
